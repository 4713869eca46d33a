package repository

import (
	"basecase_backend/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndProblem(userID, problemID uint) (*model.UserProblem, error) {
	var record model.UserProblem
	err := r.DB.Where("user_id = ? AND problem_id = ?", userID, problemID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *ProgressRepository) FindByUserAndProblems(userID uint, problemIDs []uint) ([]model.UserProblem, error) {
	var records []model.UserProblem
	err := r.DB.Where("user_id = ? AND problem_id IN ?", userID, problemIDs).Find(&records).Error
	return records, err
}

// UpdateLocked runs apply against the caller's record for one problem under
// a row lock, creating the record on first touch. The SELECT ... FOR UPDATE
// serializes concurrent saves for the same (user, problem) pair, so the
// read-compute-write in apply can never double-apply an interval multiplier.
func (r *ProgressRepository) UpdateLocked(ctx context.Context, userID, problemID uint, apply func(record *model.UserProblem) error) (*model.UserProblem, error) {
	var result *model.UserProblem

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record model.UserProblem
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND problem_id = ?", userID, problemID).
			First(&record).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = model.UserProblem{UserID: userID, ProblemID: problemID}
		} else if err != nil {
			return err
		}

		if err := apply(&record); err != nil {
			return err
		}

		if err := tx.Save(&record).Error; err != nil {
			return err
		}
		result = &record
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

type SolvedByDifficulty struct {
	Difficulty model.Difficulty `json:"difficulty"`
	Count      int64            `json:"count"`
}

func (r *ProgressRepository) CountSolvedByDifficulty(userID uint) ([]SolvedByDifficulty, error) {
	var rows []SolvedByDifficulty
	err := r.DB.Model(&model.UserProblem{}).
		Select("problems.difficulty AS difficulty, COUNT(*) AS count").
		Joins("JOIN problems ON problems.id = user_problems.problem_id").
		Where("user_problems.user_id = ? AND user_problems.solved = ?", userID, true).
		Group("problems.difficulty").
		Scan(&rows).Error
	return rows, err
}

func (r *ProgressRepository) CountSolved(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProblem{}).
		Where("user_id = ? AND solved = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CountBookmarked(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProblem{}).
		Where("user_id = ? AND bookmark = ?", userID, true).
		Count(&count).Error
	return count, err
}

// FindDueForRevision lists solved problems whose next attempt date has
// passed, most overdue first.
func (r *ProgressRepository) FindDueForRevision(userID uint, now time.Time, limit int) ([]model.UserProblem, error) {
	var records []model.UserProblem
	err := r.DB.Where("user_id = ? AND solved = ? AND next_attempt IS NOT NULL AND next_attempt <= ?", userID, true, now).
		Order("next_attempt").
		Limit(limit).
		Preload("Problem").
		Find(&records).Error
	return records, err
}

func (r *ProgressRepository) FindRecentlySolved(userID uint, limit int) ([]model.UserProblem, error) {
	var records []model.UserProblem
	err := r.DB.Where("user_id = ? AND solved = ?", userID, true).
		Order("solved_at DESC").
		Limit(limit).
		Preload("Problem").
		Find(&records).Error
	return records, err
}
