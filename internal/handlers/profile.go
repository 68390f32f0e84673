package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stress-checker/internal/models"
	"stress-checker/internal/repository"
	"stress-checker/internal/utils"
)

type ProfileHandler struct {
	log *zap.Logger
}

func NewProfileHandler(log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{log: log}
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

func (h *ProfileHandler) UpdatePassword(c *gin.Context) {
	user := currentUser(c)

	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Semua kolom kata sandi diperlukan")})
		return
	}
	if !user.CheckPassword(req.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": models.Error("Kata sandi saat ini salah")})
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Kata sandi baru tidak cocok")})
		return
	}
	if !utils.IsValidPassword(req.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Kata sandi minimal harus 6 karakter")})
		return
	}

	if err := repository.UpdateUserPassword(c.Request.Context(), user.ID, req.NewPassword); err != nil {
		h.log.Error("Failed to update password", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error("Gagal memperbarui kata sandi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": models.Success("Kata sandi diperbarui")})
}

type notificationRequest struct {
	Enabled      bool   `json:"enabled"`
	ReminderTime string `json:"reminderTime"`
	TimeZone     string `json:"timeZone"`
}

// UpdateNotifications stores the daily reminder settings. The local
// time is converted to UTC for storage so the scheduler compares one
// clock.
func (h *ProfileHandler) UpdateNotifications(c *gin.Context) {
	user := currentUser(c)

	var req notificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Pengaturan notifikasi tidak valid")})
		return
	}
	if req.TimeZone == "" {
		req.TimeZone = "UTC"
	}

	loc, err := time.LoadLocation(req.TimeZone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Zona waktu tidak valid")})
		return
	}

	// Anchor on today's date so DST resolves correctly.
	now := time.Now()
	parsed, err := time.ParseInLocation("2006-01-02 15:04",
		fmt.Sprintf("%s %s", now.Format("2006-01-02"), req.ReminderTime), loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Format waktu tidak valid. Gunakan HH:MM")})
		return
	}

	utcReminder := parsed.UTC().Format("15:04")
	if err := repository.UpdateNotificationPreferences(user.ID, req.Enabled, utcReminder, req.TimeZone); err != nil {
		h.log.Error("Failed to update notification preferences", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error("Gagal menyimpan pengaturan notifikasi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": models.Success("Pengaturan notifikasi disimpan")})
}

type deleteAccountRequest struct {
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation" binding:"required"`
}

func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	user := currentUser(c)

	var req deleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Confirmation != "DELETE" {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Ketik DELETE untuk konfirmasi")})
		return
	}
	if !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": models.Error("Kata sandi salah")})
		return
	}

	if err := repository.DeleteUser(c.Request.Context(), user.ID); err != nil {
		h.log.Error("Failed to delete account", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error("Gagal menghapus akun")})
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	session.Save()

	c.JSON(http.StatusOK, gin.H{"message": models.Success("Akun Anda telah dihapus")})
}
