package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID          uint   `gorm:"primaryKey"`
	Email       string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"`
	DisplayName string

	// Daily reminder settings.
	NotificationsEnabled bool
	ReminderTime         string // "15:04", stored in UTC
	TimeZone             string
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
