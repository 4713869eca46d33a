package model

import (
	"time"

	"basecase_backend/pkg/srs"
)

// UserProblem is the per-user, per-problem progress record. Exactly one row
// exists per (user, problem) pair; it is created lazily on the first save and
// never deleted.
//
// Interval, Revision and NextAttempt form the revision schedule and are only
// written together, and only while Solved is true.
//
// swagger:model UserProblem
type UserProblem struct {
	BaseModel
	UserID      uint            `gorm:"uniqueIndex:idx_user_problem;not null" json:"userId"`
	ProblemID   uint            `gorm:"uniqueIndex:idx_user_problem;not null" json:"problemId"`
	Solved      bool            `gorm:"default:false" json:"solved"`
	SolvedAt    *time.Time      `json:"solvedAt"`
	Confidence  *srs.Confidence `gorm:"size:10" json:"confidence"`
	Notes       string          `gorm:"type:text" json:"notes"`
	Bookmark    bool            `gorm:"default:false" json:"bookmark"`
	Interval    int             `gorm:"default:0" json:"interval"`
	Revision    int             `gorm:"default:0" json:"revision"`
	NextAttempt *time.Time      `json:"nextAttempt"`

	Problem *Problem `gorm:"foreignKey:ProblemID" json:"problem,omitempty"`
}

func (UserProblem) TableName() string {
	return "user_problems"
}

// ScheduleState extracts the revision-schedule slice for the srs engine.
func (p *UserProblem) ScheduleState() srs.State {
	s := srs.State{Interval: p.Interval, Revision: p.Revision}
	if p.NextAttempt != nil {
		s.NextAttempt = *p.NextAttempt
	}
	return s
}

// ApplySchedule writes a recomputed schedule back onto the record.
func (p *UserProblem) ApplySchedule(s srs.State) {
	p.Interval = s.Interval
	p.Revision = s.Revision
	next := s.NextAttempt
	p.NextAttempt = &next
}
