package repository

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"stress-checker/internal/database"
	"stress-checker/internal/models"
)

func CreateUser(email, password, displayName string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:       email,
		Password:    string(hashedPassword),
		DisplayName: displayName,
	}
	result := database.DB.Create(user)
	return user, result.Error
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "email = ?", email)
	return &user, result.Error
}

func GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, id)
	return &user, result.Error
}

func UpdateUserPassword(ctx context.Context, userID uint, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("password", string(hashedPassword)).Error
}

func DeleteUser(ctx context.Context, userID uint) error {
	return database.DB.WithContext(ctx).Delete(&models.User{}, userID).Error
}

// UpdateNotificationPreferences updates a user's reminder settings.
func UpdateNotificationPreferences(userID uint, enabled bool, reminderTime, timezone string) error {
	return database.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"notifications_enabled": enabled,
		"reminder_time":         reminderTime,
		"time_zone":             timezone,
	}).Error
}

// GetUsersForReminder finds users who have reminders enabled for a specific UTC time.
func GetUsersForReminder(reminderTime string) ([]models.User, error) {
	var users []models.User
	err := database.DB.Where("notifications_enabled = ? AND reminder_time = ?", true, reminderTime).Find(&users).Error
	return users, err
}
