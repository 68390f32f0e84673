package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TestRecord is one finished test: the score, its classification and
// the raw answers serialized as a {"q1":0,...,"q10":4} JSON object.
// Records are never updated, only created and deleted.
type TestRecord struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index"`
	User        User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TotalScore  int    `gorm:"not null"`
	StressLevel string `gorm:"not null"`
	Answer      string
	CreatedAt   time.Time
}

// EncodeAnswers serializes an answer vector into the stored JSON form,
// keyed "q1" through "q10".
func EncodeAnswers(answers []int) (string, error) {
	m := make(map[string]int, len(answers))
	for i, v := range answers {
		m[fmt.Sprintf("q%d", i+1)] = v
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeAnswers parses the stored JSON back into a question->value map.
// Malformed data yields an empty map instead of an error so one bad row
// never breaks the whole history view.
func DecodeAnswers(raw string) map[string]int {
	answers := map[string]int{}
	if raw == "" {
		return answers
	}
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return map[string]int{}
	}
	return answers
}
