package service

import (
	"basecase_backend/internal/model"
	"basecase_backend/internal/repository"
	"basecase_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type SheetService struct {
	SheetRepo    *repository.SheetRepository
	ProgressRepo *repository.ProgressRepository
}

func NewSheetService(sheetRepo *repository.SheetRepository, progressRepo *repository.ProgressRepository) *SheetService {
	return &SheetService{
		SheetRepo:    sheetRepo,
		ProgressRepo: progressRepo,
	}
}

// SheetSummary is a sheet row plus the caller's completion counts.
type SheetSummary struct {
	model.Sheet
	TotalProblems int64 `json:"totalProblems"`
	SolvedCount   int64 `json:"solvedCount"`
}

// SheetDetail is a sheet with its problems and the caller's progress keyed
// by problem ID. Problems never attempted have no entry.
type SheetDetail struct {
	Sheet    *model.Sheet                `json:"sheet"`
	Progress map[uint]model.UserProblem `json:"progress"`
}

func (s *SheetService) ListSheets(userID uint) ([]SheetSummary, error) {
	sheets, err := s.SheetRepo.FindAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]SheetSummary, 0, len(sheets))
	for _, sheet := range sheets {
		total, err := s.SheetRepo.CountProblems(sheet.ID)
		if err != nil {
			return nil, err
		}
		solved, err := s.SheetRepo.CountSolved(sheet.ID, userID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, SheetSummary{
			Sheet:         sheet,
			TotalProblems: total,
			SolvedCount:   solved,
		})
	}
	return summaries, nil
}

func (s *SheetService) GetSheetWithProgress(userID uint, slug string) (*SheetDetail, error) {
	sheet, err := s.SheetRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSheetNotFound
		}
		return nil, err
	}

	detail := &SheetDetail{
		Sheet:    sheet,
		Progress: map[uint]model.UserProblem{},
	}

	if len(sheet.Problems) == 0 {
		return detail, nil
	}

	ids := make([]uint, 0, len(sheet.Problems))
	for _, p := range sheet.Problems {
		ids = append(ids, p.ID)
	}

	records, err := s.ProgressRepo.FindByUserAndProblems(userID, ids)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		record.Problem = nil
		detail.Progress[record.ProblemID] = record
	}

	return detail, nil
}

func (s *SheetService) CreateSheet(sheet *model.Sheet) error {
	return s.SheetRepo.Create(sheet)
}

func (s *SheetService) UpdateSheet(id uint, name, description string) (*model.Sheet, error) {
	sheet, err := s.SheetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSheetNotFound
		}
		return nil, err
	}

	if name != "" {
		sheet.Name = name
	}
	sheet.Description = description

	if err := s.SheetRepo.Update(sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}

func (s *SheetService) DeleteSheet(id uint) error {
	return s.SheetRepo.Delete(id)
}
