package service

import (
	"basecase_backend/internal/model"
	"basecase_backend/internal/repository"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

type DashboardService struct {
	ProgressRepo *repository.ProgressRepository
	ProblemRepo  *repository.ProblemRepository
	rdb          *redis.Client
}

func NewDashboardService(progressRepo *repository.ProgressRepository, problemRepo *repository.ProblemRepository, rdb *redis.Client) *DashboardService {
	return &DashboardService{
		ProgressRepo: progressRepo,
		ProblemRepo:  problemRepo,
		rdb:          rdb,
	}
}

const (
	dashboardCacheTTL = time.Minute
	revisionLimit     = 20
	recentLimit       = 10
)

type Dashboard struct {
	Stats          DashboardStats      `json:"stats"`
	DueRevisions   []model.UserProblem `json:"dueRevisions"`
	RecentlySolved []model.UserProblem `json:"recentlySolved"`
}

type DashboardStats struct {
	TotalProblems int64                           `json:"totalProblems"`
	SolvedCount   int64                           `json:"solvedCount"`
	ByDifficulty  []repository.SolvedByDifficulty `json:"byDifficulty"`
	Bookmarked    int64                           `json:"bookmarked"`
	DueCount      int                             `json:"dueCount"`
}

// GetDashboard aggregates the caller's stats plus problems due for another
// look. Stats are cached in redis for a minute; any progress save
// invalidates the cache.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	due, err := s.ProgressRepo.FindDueForRevision(userID, time.Now(), revisionLimit)
	if err != nil {
		return nil, err
	}

	recent, err := s.ProgressRepo.FindRecentlySolved(userID, recentLimit)
	if err != nil {
		return nil, err
	}

	stats, err := s.getStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.DueCount = len(due)

	return &Dashboard{
		Stats:          *stats,
		DueRevisions:   due,
		RecentlySolved: recent,
	}, nil
}

// GetDueRevisions lists solved problems whose next-attempt date has passed.
func (s *DashboardService) GetDueRevisions(userID uint) ([]model.UserProblem, error) {
	return s.ProgressRepo.FindDueForRevision(userID, time.Now(), revisionLimit)
}

func (s *DashboardService) getStats(ctx context.Context, userID uint) (*DashboardStats, error) {
	key := dashboardCacheKey(userID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var stats DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	total, err := s.ProblemRepo.Count()
	if err != nil {
		return nil, err
	}
	solved, err := s.ProgressRepo.CountSolved(userID)
	if err != nil {
		return nil, err
	}
	byDifficulty, err := s.ProgressRepo.CountSolvedByDifficulty(userID)
	if err != nil {
		return nil, err
	}
	bookmarked, err := s.ProgressRepo.CountBookmarked(userID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalProblems: total,
		SolvedCount:   solved,
		ByDifficulty:  byDifficulty,
		Bookmarked:    bookmarked,
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(stats); err == nil {
			s.rdb.Set(ctx, key, payload, dashboardCacheTTL)
		}
	}

	return stats, nil
}
