package models

import (
	"time"

	"github.com/lib/pq"
)

// TestSession is the persisted form of one questionnaire run, so a
// half-finished test survives reloads and re-logins. One active row per
// user; a completed row stays until the user restarts.
type TestSession struct {
	ID           uint          `gorm:"primaryKey"`
	UserID       uint          `gorm:"index"`
	User         User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Answers      pq.Int64Array `gorm:"type:integer[]"`
	CurrentIndex int
	IsComplete   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AnswerSlice converts the stored integer[] column into the []int the
// scoring and flow packages work with.
func (s *TestSession) AnswerSlice() []int {
	answers := make([]int, len(s.Answers))
	for i, v := range s.Answers {
		answers[i] = int(v)
	}
	return answers
}

// SetAnswers stores an answer vector back into the array column.
func (s *TestSession) SetAnswers(answers []int) {
	arr := make(pq.Int64Array, len(answers))
	for i, v := range answers {
		arr[i] = int64(v)
	}
	s.Answers = arr
}
