// Package progressdraft keeps an editable copy of a problem's progress
// alongside the last server-confirmed state, so edits render immediately
// and roll back cleanly when a save fails.
package progressdraft

import (
	"basecase_backend/pkg/srs"
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSaveInFlight is returned when Save is called while a previous save
// has not finished. Callers retry after the running save settles; saves
// are never queued.
var ErrSaveInFlight = errors.New("a save is already in flight")

// Record is the client view of one problem's progress.
type Record struct {
	Solved      bool            `json:"solved"`
	SolvedAt    *time.Time      `json:"solvedAt"`
	Confidence  *srs.Confidence `json:"confidence"`
	Notes       string          `json:"notes"`
	Bookmark    bool            `json:"bookmark"`
	Interval    int             `json:"interval"`
	Revision    int             `json:"revision"`
	NextAttempt *time.Time      `json:"nextAttempt"`
}

// Equal compares the user-editable fields and the schedule. Two records
// with different SolvedAt timestamps but identical content still differ.
func (r Record) Equal(other Record) bool {
	if r.Solved != other.Solved ||
		r.Notes != other.Notes ||
		r.Bookmark != other.Bookmark ||
		r.Interval != other.Interval ||
		r.Revision != other.Revision {
		return false
	}
	if !equalConfidence(r.Confidence, other.Confidence) {
		return false
	}
	return equalTime(r.SolvedAt, other.SolvedAt) && equalTime(r.NextAttempt, other.NextAttempt)
}

func equalConfidence(a, b *srs.Confidence) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Payload is the full progress patch sent on every save. The server owns
// the schedule, so interval and revision never travel client to server.
type Payload struct {
	Bookmark        bool            `json:"bookmark"`
	Solved          bool            `json:"solved"`
	ConfidenceLevel *srs.Confidence `json:"confidenceLevel"`
	Notes           string          `json:"notes"`
}

// Saver persists a payload and returns the server's resulting record.
type Saver interface {
	Save(ctx context.Context, payload Payload) (Record, error)
}

// Draft tracks a draft record against the last saved one.
type Draft struct {
	mu       sync.Mutex
	draft    Record
	saved    Record
	inFlight bool
	saver    Saver
	now      func() time.Time
}

// NewDraft starts from the server-provided record. A zero Record is the
// correct seed for a problem the user has never touched.
func NewDraft(saved Record, saver Saver) *Draft {
	return &Draft{
		draft: saved,
		saved: saved,
		saver: saver,
		now:   time.Now,
	}
}

// SetSolved marks the draft solved and stamps a provisional SolvedAt for
// immediate display. The server's timestamp replaces it on save.
func (d *Draft) SetSolved() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.draft.Solved {
		return
	}
	d.draft.Solved = true
	now := d.now()
	d.draft.SolvedAt = &now
}

func (d *Draft) SetConfidence(c srs.Confidence) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft.Confidence = &c
}

func (d *Draft) SetNotes(notes string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft.Notes = notes
}

func (d *Draft) SetBookmark(bookmark bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft.Bookmark = bookmark
}

// Draft returns the current editable state.
func (d *Draft) Draft() Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft
}

// Saved returns the last server-confirmed state.
func (d *Draft) Saved() Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saved
}

// IsDirty reports whether the draft has diverged from the saved record.
func (d *Draft) IsDirty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.draft.Equal(d.saved)
}

// Save sends the full draft payload. A clean draft is a no-op: nothing
// travels and the saved record comes straight back. On success both
// draft and saved become the server's echo, picking up the
// authoritative schedule and timestamps. On failure the draft rolls
// back to the saved record. At most one save runs at a time; a second
// call returns ErrSaveInFlight.
func (d *Draft) Save(ctx context.Context) (Record, error) {
	d.mu.Lock()
	if d.inFlight {
		d.mu.Unlock()
		return Record{}, ErrSaveInFlight
	}
	if d.draft.Equal(d.saved) {
		saved := d.saved
		d.mu.Unlock()
		return saved, nil
	}
	d.inFlight = true
	payload := Payload{
		Bookmark:        d.draft.Bookmark,
		Solved:          d.draft.Solved,
		ConfidenceLevel: d.draft.Confidence,
		Notes:           d.draft.Notes,
	}
	d.mu.Unlock()

	result, err := d.saver.Save(ctx, payload)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight = false

	if err != nil {
		d.draft = d.saved
		return Record{}, err
	}

	d.draft = result
	d.saved = result
	return result, nil
}
