package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stress-checker/internal/models"
	"stress-checker/internal/repository"
	"stress-checker/internal/utils"
)

type AuthHandler struct {
	log *zap.Logger
}

func NewAuthHandler(log *zap.Logger) *AuthHandler {
	return &AuthHandler{log: log}
}

type registerRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Email dan kata sandi diperlukan")})
		return
	}

	if !utils.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Format email tidak valid")})
		return
	}
	if !utils.IsValidPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Kata sandi minimal harus 6 karakter")})
		return
	}

	if _, err := repository.CreateUser(req.Email, req.Password, req.DisplayName); err != nil {
		kind := classifyAuthError(err)
		status := http.StatusInternalServerError
		if kind == KindDuplicateAccount {
			status = http.StatusConflict
		} else {
			h.log.Error("Failed to create user", zap.Error(err))
		}
		c.JSON(status, gin.H{"kind": kind, "message": models.Error(kind.Message())})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": models.Success("Terima kasih sudah mendaftar! Silakan masuk dengan akun Anda")})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.Error("Email dan kata sandi diperlukan")})
		return
	}

	user, err := repository.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		kind := KindInvalidCredentials
		c.JSON(http.StatusUnauthorized, gin.H{"kind": kind, "message": models.Error(kind.Message())})
		return
	}

	session := sessions.Default(c)
	session.Set("userID", user.ID)
	if err := session.Save(); err != nil {
		h.log.Error("Failed to save session on login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"kind": KindUnknown, "message": models.Error(KindUnknown.Message())})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"displayName": user.DisplayName,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		h.log.Error("Failed to clear session on logout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error(KindUnknown.Message())})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": models.Success("Anda telah keluar")})
}

// Me returns the current session's user, the API's session-retrieval
// contract. The user loader middleware already resolved it.
func (h *AuthHandler) Me(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
		return
	}
	u := user.(*models.User)
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          u.ID,
			"email":       u.Email,
			"displayName": u.DisplayName,
		},
	})
}
