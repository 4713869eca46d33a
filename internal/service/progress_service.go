package service

import (
	"basecase_backend/internal/model"
	"basecase_backend/internal/util"
	"basecase_backend/pkg/srs"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ProgressPatch is the PATCH body for a progress save. All fields are
// optional; only non-nil fields are applied. Clients send the whole draft,
// so in practice every field is present, but the contract is a partial
// update.
type ProgressPatch struct {
	Bookmark        *bool           `json:"bookmark"`
	Solved          *bool           `json:"solved"`
	ConfidenceLevel *srs.Confidence `json:"confidenceLevel"`
	Notes           *string         `json:"notes"`
}

// ProgressStore is the slice of the progress repository the service needs.
// UpdateLocked must serialize concurrent calls for the same (user, problem)
// pair; the gorm implementation does this with SELECT ... FOR UPDATE.
type ProgressStore interface {
	UpdateLocked(ctx context.Context, userID, problemID uint, apply func(record *model.UserProblem) error) (*model.UserProblem, error)
	FindByUserAndProblem(userID, problemID uint) (*model.UserProblem, error)
}

// ProblemFinder resolves problem slugs.
type ProblemFinder interface {
	FindBySlug(slug string) (*model.Problem, error)
}

type ProgressService struct {
	problems ProblemFinder
	progress ProgressStore
	rdb      *redis.Client
	now      func() time.Time
}

func NewProgressService(problems ProblemFinder, progress ProgressStore, rdb *redis.Client) *ProgressService {
	return &ProgressService{
		problems: problems,
		progress: progress,
		rdb:      rdb,
		now:      time.Now,
	}
}

// UpdateProgress applies a progress patch for one user and one problem and
// returns the persisted record.
//
// Rules, in order:
//  1. unknown slug -> ErrProblemNotFound
//  2. solved=false on a solved record -> ErrCannotUnsolve, nothing persisted
//  3. solved=true on an unsolved record -> first-solve initialization
//     (interval 1, revision 0, next attempt tomorrow, solvedAt stamped)
//  4. a confidence level advances the schedule only when the record was
//     already solved before this request; on a first solve the
//     initialization wins and the confidence is merely recorded
//  5. bookmark and notes are copied whenever present, regardless of state
//
// SolvedAt is written exactly once, on the false->true transition, and is
// preserved across later confidence-only edits.
func (s *ProgressService) UpdateProgress(ctx context.Context, userID uint, slug string, patch ProgressPatch) (*model.UserProblem, error) {
	if patch.ConfidenceLevel != nil && !patch.ConfidenceLevel.Valid() {
		return nil, util.ErrInvalidConfidence
	}

	problem, err := s.problems.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProblemNotFound
		}
		return nil, err
	}

	record, err := s.progress.UpdateLocked(ctx, userID, problem.ID, func(record *model.UserProblem) error {
		wasSolved := record.Solved

		if patch.Solved != nil {
			if !*patch.Solved && record.Solved {
				return util.ErrCannotUnsolve
			}
			if *patch.Solved && !record.Solved {
				now := s.now()
				record.Solved = true
				record.SolvedAt = &now
				record.ApplySchedule(srs.Initialize(now))
			}
		}

		if patch.ConfidenceLevel != nil {
			record.Confidence = patch.ConfidenceLevel
			if wasSolved {
				record.ApplySchedule(srs.Advance(record.ScheduleState(), *patch.ConfidenceLevel, s.now()))
			}
		}

		if patch.Bookmark != nil {
			record.Bookmark = *patch.Bookmark
		}
		if patch.Notes != nil {
			record.Notes = *patch.Notes
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx, userID)

	record.Problem = problem
	return record, nil
}

// GetProgressBySlug returns the caller's record for a problem, or nil when
// the problem has never been touched.
func (s *ProgressService) GetProgressBySlug(userID uint, slug string) (*model.UserProblem, error) {
	problem, err := s.problems.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProblemNotFound
		}
		return nil, err
	}
	return s.GetProgress(userID, problem.ID)
}

func (s *ProgressService) GetProgress(userID uint, problemID uint) (*model.UserProblem, error) {
	record, err := s.progress.FindByUserAndProblem(userID, problemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

func (s *ProgressService) invalidateDashboard(ctx context.Context, userID uint) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(ctx, dashboardCacheKey(userID))
}

func dashboardCacheKey(userID uint) string {
	return fmt.Sprintf("dashboard:stats:%d", userID)
}
