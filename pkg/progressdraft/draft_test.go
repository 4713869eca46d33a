package progressdraft

import (
	"basecase_backend/pkg/srs"
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeSaver records payloads and returns a scripted result.
type fakeSaver struct {
	mu       sync.Mutex
	calls    int
	payloads []Payload
	result   Record
	err      error
	block    chan struct{}
}

func (f *fakeSaver) Save(ctx context.Context, payload Payload) (Record, error) {
	f.mu.Lock()
	f.calls++
	f.payloads = append(f.payloads, payload)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.err != nil {
		return Record{}, f.err
	}
	return f.result, nil
}

func (f *fakeSaver) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func confidence(c srs.Confidence) *srs.Confidence { return &c }

func TestDraftEditsAreLocalUntilSave(t *testing.T) {
	d := NewDraft(Record{}, &fakeSaver{})

	d.SetSolved()
	d.SetNotes("two pointers")
	d.SetBookmark(true)

	if !d.IsDirty() {
		t.Fatal("draft with local edits must be dirty")
	}
	if d.Saved().Solved {
		t.Fatal("saved state must not change before a save")
	}
	draft := d.Draft()
	if !draft.Solved || draft.Notes != "two pointers" || !draft.Bookmark {
		t.Fatalf("draft missing local edits: %+v", draft)
	}
	if draft.SolvedAt == nil {
		t.Fatal("SetSolved must stamp a provisional solvedAt")
	}
}

func TestSaveAdoptsServerEcho(t *testing.T) {
	serverTime := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	next := serverTime.AddDate(0, 0, 1)
	saver := &fakeSaver{result: Record{
		Solved:      true,
		SolvedAt:    &serverTime,
		Confidence:  confidence(srs.High),
		Interval:    1,
		Revision:    0,
		NextAttempt: &next,
	}}

	d := NewDraft(Record{}, saver)
	d.SetSolved()
	d.SetConfidence(srs.High)

	result, err := d.Save(context.Background())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// The full draft travels, solved and confidence included.
	if got := saver.payloads[0]; !got.Solved || got.ConfidenceLevel == nil || *got.ConfidenceLevel != srs.High {
		t.Fatalf("unexpected payload: %+v", got)
	}

	// Server echo wins over the provisional timestamp.
	if result.SolvedAt == nil || !result.SolvedAt.Equal(serverTime) {
		t.Fatalf("expected server solvedAt, got %v", result.SolvedAt)
	}
	if !d.Draft().Equal(result) || !d.Saved().Equal(result) {
		t.Fatal("draft and saved must both equal the server echo")
	}
	if d.IsDirty() {
		t.Fatal("draft must be clean after a successful save")
	}
}

func TestSaveCleanIsNoop(t *testing.T) {
	solvedAt := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	saved := Record{Solved: true, SolvedAt: &solvedAt, Notes: "unchanged", Interval: 2}
	saver := &fakeSaver{}

	d := NewDraft(saved, saver)

	result, err := d.Save(context.Background())
	if err != nil {
		t.Fatalf("clean save failed: %v", err)
	}
	if saver.callCount() != 0 {
		t.Fatalf("clean save must make no network call, got %d", saver.callCount())
	}
	if !result.Equal(saved) {
		t.Fatalf("clean save must return the saved record, got %+v", result)
	}

	// An edit that is then reverted leaves the draft clean again.
	d.SetNotes("edited")
	d.SetNotes("unchanged")
	if _, err := d.Save(context.Background()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saver.callCount() != 0 {
		t.Fatalf("reverted draft must not hit the network, got %d calls", saver.callCount())
	}
}

func TestSaveFailureRollsBack(t *testing.T) {
	solvedAt := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	saved := Record{Solved: true, SolvedAt: &solvedAt, Notes: "original", Interval: 2, Revision: 1}
	saver := &fakeSaver{err: errors.New("backend down")}

	d := NewDraft(saved, saver)
	d.SetNotes("edited")
	d.SetBookmark(true)

	if _, err := d.Save(context.Background()); err == nil {
		t.Fatal("expected save error")
	}

	if !d.Draft().Equal(saved) {
		t.Fatalf("failed save must roll the draft back, got %+v", d.Draft())
	}
	if d.IsDirty() {
		t.Fatal("draft must be clean after rollback")
	}
}

func TestSaveSingleFlight(t *testing.T) {
	saver := &fakeSaver{block: make(chan struct{})}
	d := NewDraft(Record{}, saver)
	d.SetBookmark(true)

	firstDone := make(chan error, 1)
	go func() {
		_, err := d.Save(context.Background())
		firstDone <- err
	}()

	// Wait for the first save to reach the saver.
	for saver.callCount() == 0 {
		time.Sleep(time.Millisecond)
	}

	// A second save while the first is in flight is refused, not queued.
	if _, err := d.Save(context.Background()); !errors.Is(err, ErrSaveInFlight) {
		t.Fatalf("expected ErrSaveInFlight, got %v", err)
	}

	close(saver.block)
	if err := <-firstDone; err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	if saver.callCount() != 1 {
		t.Fatalf("expected exactly one network call, got %d", saver.callCount())
	}

	// After the first save settles a new save goes through.
	d.SetNotes("retry")
	if _, err := d.Save(context.Background()); err != nil {
		t.Fatalf("follow-up save failed: %v", err)
	}
	if saver.callCount() != 2 {
		t.Fatalf("expected two calls total, got %d", saver.callCount())
	}
}

func TestRecordEqual(t *testing.T) {
	ts := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	a := Record{Solved: true, SolvedAt: &ts, Confidence: confidence(srs.Medium), Interval: 2}
	b := a

	if !a.Equal(b) {
		t.Fatal("identical records must compare equal")
	}

	later := ts.Add(time.Hour)
	b.SolvedAt = &later
	if a.Equal(b) {
		t.Fatal("records with different solvedAt must differ")
	}

	b = a
	b.Confidence = nil
	if a.Equal(b) {
		t.Fatal("records with different confidence must differ")
	}
}
