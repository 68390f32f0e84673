package services

import (
	"fmt"

	"go.uber.org/zap"

	"stress-checker/internal/models"
)

// EmailService is a placeholder for a real email sending service.
type EmailService struct {
	log *zap.Logger
}

func NewEmailService(log *zap.Logger) *EmailService {
	return &EmailService{log: log}
}

// SendReminderEmail simulates sending a reminder email.
func (s *EmailService) SendReminderEmail(user models.User) {
	s.log.Info("Sending reminder email",
		zap.String("to", user.Email),
		zap.String("name", user.DisplayName),
	)
	// A real deployment would plug an SMTP client in here.
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Pengingat tes stres harian\nHai %s,\nJangan lupa mengisi tes tingkat stres Anda hari ini.\n\n", user.Email, user.DisplayName)
}
