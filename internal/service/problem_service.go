package service

import (
	"basecase_backend/internal/model"
	"basecase_backend/internal/repository"
	"basecase_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type ProblemService struct {
	ProblemRepo  *repository.ProblemRepository
	ProgressRepo *repository.ProgressRepository
}

func NewProblemService(problemRepo *repository.ProblemRepository, progressRepo *repository.ProgressRepository) *ProblemService {
	return &ProblemService{
		ProblemRepo:  problemRepo,
		ProgressRepo: progressRepo,
	}
}

// ProblemDetail bundles a problem with the caller's progress record.
// Progress is null when the user has never touched the problem.
type ProblemDetail struct {
	Problem  *model.Problem     `json:"problem"`
	Progress *model.UserProblem `json:"progress"`
}

func (s *ProblemService) ListProblems(filter repository.ProblemFilter) ([]model.Problem, error) {
	return s.ProblemRepo.FindAll(filter)
}

func (s *ProblemService) GetProblemWithProgress(userID uint, slug string) (*ProblemDetail, error) {
	problem, err := s.ProblemRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProblemNotFound
		}
		return nil, err
	}

	detail := &ProblemDetail{Problem: problem}

	record, err := s.ProgressRepo.FindByUserAndProblem(userID, problem.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		record.Problem = nil
		detail.Progress = record
	}

	return detail, nil
}

func (s *ProblemService) CreateProblem(problem *model.Problem) error {
	return s.ProblemRepo.Create(problem)
}

func (s *ProblemService) UpdateProblem(id uint, update *model.Problem) (*model.Problem, error) {
	problem, err := s.ProblemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProblemNotFound
		}
		return nil, err
	}

	problem.Title = update.Title
	problem.Difficulty = update.Difficulty
	problem.Pattern = update.Pattern
	problem.URL = update.URL
	problem.Order = update.Order
	if update.SheetID != 0 {
		problem.SheetID = update.SheetID
	}

	if err := s.ProblemRepo.Update(problem); err != nil {
		return nil, err
	}
	return problem, nil
}

func (s *ProblemService) DeleteProblem(id uint) error {
	return s.ProblemRepo.Delete(id)
}
