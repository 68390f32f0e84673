package repository

import (
	"context"
	"time"

	"stress-checker/internal/database"
)

type ScorePoint struct {
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
}

// GetScoreTimeline returns the user's total scores in chronological
// order for the score-over-time chart.
func GetScoreTimeline(ctx context.Context, userID uint) ([]ScorePoint, error) {
	var points []ScorePoint
	err := database.DB.WithContext(ctx).
		Raw(`SELECT created_at AS date, total_score AS score
		     FROM test_records
		     WHERE user_id = ?
		     ORDER BY created_at`, userID).
		Scan(&points).Error
	return points, err
}
