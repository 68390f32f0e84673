package repository

import (
	"context"
	"time"

	"stress-checker/internal/database"
	"stress-checker/internal/models"
)

// CreateTestRecord stores one finished test. Records are append-only;
// there is no update path.
func CreateTestRecord(ctx context.Context, record *models.TestRecord) error {
	return database.DB.WithContext(ctx).Create(record).Error
}

// ListTestRecords returns the user's history, newest first.
func ListTestRecords(ctx context.Context, userID uint) ([]models.TestRecord, error) {
	var records []models.TestRecord
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

// GetLatestTestRecord returns the user's most recent result.
func GetLatestTestRecord(ctx context.Context, userID uint) (*models.TestRecord, error) {
	var record models.TestRecord
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&record).Error
	return &record, err
}

// DeleteTestRecord removes one record, scoped to its owner so a user
// can never delete someone else's result.
func DeleteTestRecord(ctx context.Context, userID, recordID uint) (int64, error) {
	result := database.DB.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, recordID).
		Delete(&models.TestRecord{})
	return result.RowsAffected, result.Error
}

// DeleteAllTestRecords wipes the user's whole history and reports how
// many records went.
func DeleteAllTestRecords(ctx context.Context, userID uint) (int64, error) {
	result := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.TestRecord{})
	return result.RowsAffected, result.Error
}

// HasCompletedTestToday checks if a user finished a test on the current day.
func HasCompletedTestToday(userID uint) (bool, error) {
	var count int64
	today := time.Now().UTC().Truncate(24 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	err := database.DB.Model(&models.TestRecord{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, today, tomorrow).
		Count(&count).Error

	return count > 0, err
}
