package repository

import (
	"basecase_backend/internal/model"

	"gorm.io/gorm"
)

type MentorRepository struct {
	DB *gorm.DB
}

func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{DB: db}
}

func (r *MentorRepository) Create(exchange *model.MentorExchange) error {
	return r.DB.Create(exchange).Error
}

func (r *MentorRepository) FindByUser(userID uint, limit int) ([]model.MentorExchange, error) {
	var exchanges []model.MentorExchange
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&exchanges).Error
	return exchanges, err
}
