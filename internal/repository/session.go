package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stress-checker/internal/database"
	"stress-checker/internal/flow"
	"stress-checker/internal/models"
)

// GetOrCreateTestSession returns the user's current questionnaire run,
// creating a fresh one if none exists yet. A completed run is returned
// as-is; starting over goes through ResetTestSession.
func GetOrCreateTestSession(ctx context.Context, userID uint) (*models.TestSession, error) {
	var session models.TestSession
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&session).Error

	if err == nil {
		return &session, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	session = models.TestSession{UserID: userID}
	session.SetAnswers(flow.New().Answers)
	if err := database.DB.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// SaveTestSession writes the flow state back onto the persisted row.
func SaveTestSession(ctx context.Context, session *models.TestSession, state *flow.State) error {
	session.SetAnswers(state.Answers)
	session.CurrentIndex = state.Index
	session.IsComplete = state.Complete
	return database.DB.WithContext(ctx).Save(session).Error
}

// ResetTestSession puts the run back on the first question with a
// sentinel-filled vector.
func ResetTestSession(ctx context.Context, session *models.TestSession) error {
	state := flow.New()
	return SaveTestSession(ctx, session, state)
}
