package repository

import (
	"basecase_backend/internal/model"

	"gorm.io/gorm"
)

type ProblemRepository struct {
	DB *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{DB: db}
}

type ProblemFilter struct {
	Difficulty string
	Pattern    string
	SheetID    uint
	Search     string
}

func (r *ProblemRepository) FindAll(filter ProblemFilter) ([]model.Problem, error) {
	q := r.DB.Model(&model.Problem{})
	if filter.Difficulty != "" {
		q = q.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Pattern != "" {
		q = q.Where("pattern = ?", filter.Pattern)
	}
	if filter.SheetID != 0 {
		q = q.Where("sheet_id = ?", filter.SheetID)
	}
	if filter.Search != "" {
		q = q.Where("title ILIKE ?", "%"+filter.Search+"%")
	}

	var problems []model.Problem
	err := q.Order("\"order\"").Find(&problems).Error
	return problems, err
}

func (r *ProblemRepository) FindBySlug(slug string) (*model.Problem, error) {
	var problem model.Problem
	err := r.DB.Where("slug = ?", slug).First(&problem).Error
	return &problem, err
}

func (r *ProblemRepository) FindByID(id uint) (*model.Problem, error) {
	var problem model.Problem
	err := r.DB.First(&problem, id).Error
	return &problem, err
}

func (r *ProblemRepository) Create(problem *model.Problem) error {
	return r.DB.Create(problem).Error
}

func (r *ProblemRepository) Update(problem *model.Problem) error {
	return r.DB.Save(problem).Error
}

func (r *ProblemRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Problem{}, id).Error
}

func (r *ProblemRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Problem{}).Count(&count).Error
	return count, err
}

// SearchByText is used by the mentor to pull catalog context for a question.
func (r *ProblemRepository) SearchByText(text string, limit int) ([]model.Problem, error) {
	var problems []model.Problem
	err := r.DB.Where("title ILIKE ? OR pattern ILIKE ?", "%"+text+"%", "%"+text+"%").
		Limit(limit).Find(&problems).Error
	return problems, err
}
