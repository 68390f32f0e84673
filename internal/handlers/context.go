package handlers

import (
	"github.com/gin-gonic/gin"

	"stress-checker/internal/models"
)

// currentUser pulls the user the loader middleware resolved for this
// request. Only called behind AuthRequired, so the value is present.
func currentUser(c *gin.Context) *models.User {
	user, _ := c.Get("user")
	return user.(*models.User)
}
