package repository

import (
	"basecase_backend/internal/model"

	"gorm.io/gorm"
)

type SheetRepository struct {
	DB *gorm.DB
}

func NewSheetRepository(db *gorm.DB) *SheetRepository {
	return &SheetRepository{DB: db}
}

func (r *SheetRepository) FindAll() ([]model.Sheet, error) {
	var sheets []model.Sheet
	err := r.DB.Order("id").Find(&sheets).Error
	return sheets, err
}

func (r *SheetRepository) FindBySlug(slug string) (*model.Sheet, error) {
	var sheet model.Sheet
	err := r.DB.Where("slug = ?", slug).
		Preload("Problems", func(db *gorm.DB) *gorm.DB {
			return db.Order("problems.\"order\"")
		}).
		First(&sheet).Error
	return &sheet, err
}

func (r *SheetRepository) FindByID(id uint) (*model.Sheet, error) {
	var sheet model.Sheet
	err := r.DB.First(&sheet, id).Error
	return &sheet, err
}

func (r *SheetRepository) Create(sheet *model.Sheet) error {
	return r.DB.Create(sheet).Error
}

func (r *SheetRepository) Update(sheet *model.Sheet) error {
	return r.DB.Save(sheet).Error
}

func (r *SheetRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Sheet{}, id).Error
}

func (r *SheetRepository) CountProblems(sheetID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Problem{}).Where("sheet_id = ?", sheetID).Count(&count).Error
	return count, err
}

func (r *SheetRepository) CountSolved(sheetID, userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProblem{}).
		Joins("JOIN problems ON problems.id = user_problems.problem_id").
		Where("problems.sheet_id = ? AND user_problems.user_id = ? AND user_problems.solved = ?", sheetID, userID, true).
		Count(&count).Error
	return count, err
}
