package srs

import (
	"testing"
	"time"
)

var base = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestInitialize(t *testing.T) {
	s := Initialize(base)

	if s.Interval != 1 {
		t.Fatalf("expected interval 1, got %d", s.Interval)
	}
	if s.Revision != 0 {
		t.Fatalf("expected revision 0, got %d", s.Revision)
	}
	if want := base.AddDate(0, 0, 1); !s.NextAttempt.Equal(want) {
		t.Fatalf("expected next attempt %v, got %v", want, s.NextAttempt)
	}
}

func TestAdvanceTable(t *testing.T) {
	prev := State{Interval: 4, Revision: 2}

	tests := []struct {
		name         string
		confidence   Confidence
		wantInterval int
		wantRevision int
	}{
		{"high doubles", High, 8, 3},
		{"medium stretches by half", Medium, 6, 3},
		{"low resets", Low, 1, 0},
		{"unknown value resets", Confidence("SHAKY"), 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Advance(prev, tt.confidence, base)
			if s.Interval != tt.wantInterval {
				t.Fatalf("expected interval %d, got %d", tt.wantInterval, s.Interval)
			}
			if s.Revision != tt.wantRevision {
				t.Fatalf("expected revision %d, got %d", tt.wantRevision, s.Revision)
			}
			if want := base.AddDate(0, 0, tt.wantInterval); !s.NextAttempt.Equal(want) {
				t.Fatalf("expected next attempt %v, got %v", want, s.NextAttempt)
			}
		})
	}
}

func TestAdvanceMediumRounding(t *testing.T) {
	// 1 * 1.5 rounds up to 2, 3 * 1.5 rounds up to 5.
	if s := Advance(State{Interval: 1}, Medium, base); s.Interval != 2 {
		t.Fatalf("expected interval 2, got %d", s.Interval)
	}
	if s := Advance(State{Interval: 3}, Medium, base); s.Interval != 5 {
		t.Fatalf("expected interval 5, got %d", s.Interval)
	}
}

func TestAdvanceCompounds(t *testing.T) {
	s := Initialize(base)
	s = Advance(s, High, base)
	s = Advance(s, High, base)

	if s.Interval != 4 {
		t.Fatalf("expected two HIGH reports to quadruple the interval, got %d", s.Interval)
	}
	if s.Revision != 2 {
		t.Fatalf("expected revision 2, got %d", s.Revision)
	}
}

func TestAdvanceFloorsInterval(t *testing.T) {
	s := Advance(State{Interval: 0}, High, base)
	if s.Interval < 1 {
		t.Fatalf("interval must never drop below 1, got %d", s.Interval)
	}
}

func TestConfidenceValid(t *testing.T) {
	for _, c := range []Confidence{Low, Medium, High} {
		if !c.Valid() {
			t.Fatalf("%s should be valid", c)
		}
	}
	if Confidence("").Valid() || Confidence("high").Valid() {
		t.Fatal("unknown confidence values must be invalid")
	}
}
