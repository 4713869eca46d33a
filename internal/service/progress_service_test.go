package service

import (
	"basecase_backend/internal/model"
	"basecase_backend/internal/util"
	"basecase_backend/pkg/srs"
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

// fakeProblems resolves slugs from a fixed map.
type fakeProblems struct {
	problems map[string]*model.Problem
}

func (f *fakeProblems) FindBySlug(slug string) (*model.Problem, error) {
	p, ok := f.problems[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

// fakeStore mimics the repository's locked upsert in memory. The apply
// closure runs against a copy; an error discards the copy, matching the
// transaction rollback in the real store.
type fakeStore struct {
	records map[uint]*model.UserProblem
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[uint]*model.UserProblem)}
}

func (f *fakeStore) UpdateLocked(ctx context.Context, userID, problemID uint, apply func(record *model.UserProblem) error) (*model.UserProblem, error) {
	working := model.UserProblem{UserID: userID, ProblemID: problemID}
	if existing, ok := f.records[problemID]; ok {
		working = *existing
	}
	if err := apply(&working); err != nil {
		return nil, err
	}
	saved := working
	f.records[problemID] = &saved
	return &saved, nil
}

func (f *fakeStore) FindByUserAndProblem(userID, problemID uint) (*model.UserProblem, error) {
	record, ok := f.records[problemID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

// Serialization of concurrent saves for the same (user, problem) pair is
// the real store's job: UpdateLocked wraps a SELECT ... FOR UPDATE in a
// transaction, so these tests only exercise the rules inside the closure.

func newTestService(store *fakeStore, now time.Time) (*ProgressService, *fakeProblems) {
	problems := &fakeProblems{problems: map[string]*model.Problem{
		"two-sum": {BaseModel: model.BaseModel{ID: 7}, Slug: "two-sum", Title: "Two Sum"},
	}}
	svc := NewProgressService(problems, store, nil)
	svc.now = func() time.Time { return now }
	return svc, problems
}

func boolPtr(b bool) *bool                     { return &b }
func strPtr(s string) *string                  { return &s }
func confPtr(c srs.Confidence) *srs.Confidence { return &c }

func TestUpdateProgressUnknownSlug(t *testing.T) {
	svc, _ := newTestService(newFakeStore(), time.Now())

	_, err := svc.UpdateProgress(context.Background(), 1, "no-such-problem", ProgressPatch{Solved: boolPtr(true)})
	if !errors.Is(err, util.ErrProblemNotFound) {
		t.Fatalf("expected ErrProblemNotFound, got %v", err)
	}
}

func TestUpdateProgressInvalidConfidence(t *testing.T) {
	svc, _ := newTestService(newFakeStore(), time.Now())

	_, err := svc.UpdateProgress(context.Background(), 1, "two-sum", ProgressPatch{ConfidenceLevel: confPtr("SHAKY")})
	if !errors.Is(err, util.ErrInvalidConfidence) {
		t.Fatalf("expected ErrInvalidConfidence, got %v", err)
	}
}

func TestUpdateProgressFirstSolve(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc, _ := newTestService(store, now)

	record, err := svc.UpdateProgress(context.Background(), 1, "two-sum", ProgressPatch{
		Solved:          boolPtr(true),
		ConfidenceLevel: confPtr(srs.High),
		Notes:           strPtr("hash map"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !record.Solved {
		t.Fatal("record should be solved")
	}
	if record.SolvedAt == nil || !record.SolvedAt.Equal(now) {
		t.Fatalf("expected solvedAt %v, got %v", now, record.SolvedAt)
	}
	// A first solve initializes the schedule; the confidence that arrived
	// with it is recorded but does not advance anything.
	if record.Interval != 1 || record.Revision != 0 {
		t.Fatalf("expected interval 1 revision 0, got %d/%d", record.Interval, record.Revision)
	}
	if want := now.AddDate(0, 0, 1); record.NextAttempt == nil || !record.NextAttempt.Equal(want) {
		t.Fatalf("expected next attempt %v, got %v", want, record.NextAttempt)
	}
	if record.Confidence == nil || *record.Confidence != srs.High {
		t.Fatalf("expected confidence HIGH, got %v", record.Confidence)
	}
	if record.Notes != "hash map" {
		t.Fatalf("expected notes copied, got %q", record.Notes)
	}
	if record.Problem == nil || record.Problem.Slug != "two-sum" {
		t.Fatal("expected problem attached to the returned record")
	}
}

func TestUpdateProgressConfidenceAdvancesSchedule(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc, _ := newTestService(store, now)

	if _, err := svc.UpdateProgress(context.Background(), 1, "two-sum", ProgressPatch{
		Solved:          boolPtr(true),
		ConfidenceLevel: confPtr(srs.High),
	}); err != nil {
		t.Fatalf("first solve failed: %v", err)
	}

	record, err := svc.UpdateProgress(context.Background(), 1, "two-sum", ProgressPatch{
		Solved:          boolPtr(true),
		ConfidenceLevel: confPtr(srs.High),
	})
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if record.Interval != 2 || record.Revision != 1 {
		t.Fatalf("expected interval 2 revision 1, got %d/%d", record.Interval, record.Revision)
	}
	if record.SolvedAt == nil || !record.SolvedAt.Equal(now) {
		t.Fatal("solvedAt must be preserved across later edits")
	}
}

func TestUpdateProgressLowConfidenceResets(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc, _ := newTestService(store, now)

	ctx := context.Background()
	svc.UpdateProgress(ctx, 1, "two-sum", ProgressPatch{Solved: boolPtr(true)})
	svc.UpdateProgress(ctx, 1, "two-sum", ProgressPatch{ConfidenceLevel: confPtr(srs.High)})
	svc.UpdateProgress(ctx, 1, "two-sum", ProgressPatch{ConfidenceLevel: confPtr(srs.High)})

	record, err := svc.UpdateProgress(ctx, 1, "two-sum", ProgressPatch{ConfidenceLevel: confPtr(srs.Low)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Interval != 1 || record.Revision != 0 {
		t.Fatalf("expected LOW to reset the schedule, got %d/%d", record.Interval, record.Revision)
	}
}

func TestUpdateProgressRejectsUnsolve(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc, _ := newTestService(store, now)

	ctx := context.Background()
	if _, err := svc.UpdateProgress(ctx, 1, "two-sum", ProgressPatch{Solved: boolPtr(true)}); err != nil {
		t.Fatalf("first solve failed: %v", err)
	}
	before := *store.records[7]

	_, err := svc.UpdateProgress(ctx, 1, "two-sum", ProgressPatch{
		Solved: boolPtr(false),
		Notes:  strPtr("should not stick"),
	})
	if !errors.Is(err, util.ErrCannotUnsolve) {
		t.Fatalf("expected ErrCannotUnsolve, got %v", err)
	}

	// The rejected save must not persist anything, including the notes.
	after := *store.records[7]
	if !after.Solved || after.Notes != before.Notes {
		t.Fatalf("rejected save leaked changes: %+v", after)
	}
}

func TestUpdateProgressUnsolvedFalseIsNoop(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store, time.Now())

	record, err := svc.UpdateProgress(context.Background(), 1, "two-sum", ProgressPatch{
		Solved:   boolPtr(false),
		Bookmark: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Solved {
		t.Fatal("record should stay unsolved")
	}
	if !record.Bookmark {
		t.Fatal("bookmark should apply even without a solve")
	}
	if record.NextAttempt != nil {
		t.Fatal("no schedule should exist for an unsolved record")
	}
}

func TestUpdateProgressBookmarkOnly(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store, time.Now())

	record, err := svc.UpdateProgress(context.Background(), 1, "two-sum", ProgressPatch{Bookmark: boolPtr(true)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !record.Bookmark || record.Solved || record.SolvedAt != nil {
		t.Fatalf("bookmark-only save touched other fields: %+v", record)
	}
}

func TestGetProgressUntouched(t *testing.T) {
	svc, _ := newTestService(newFakeStore(), time.Now())

	record, err := svc.GetProgressBySlug(1, "two-sum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil record for untouched problem, got %+v", record)
	}

	if _, err := svc.GetProgressBySlug(1, "no-such-problem"); !errors.Is(err, util.ErrProblemNotFound) {
		t.Fatalf("expected ErrProblemNotFound, got %v", err)
	}
}
