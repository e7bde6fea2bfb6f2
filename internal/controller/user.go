package controller

import (
	"net/http"

	userService "github.com/dajor/bewirtungsbeleg-sub002/internal/service/user"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/auth"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Me returns the profile of the authenticated user
func (ctrl *controller) Me(c *gin.Context) {
	userID, ok := c.Get(auth.ContextUserID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := ctrl.userService.GetUserByID(id)
	if err != nil {
		if err == userService.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": msgGenericError})
			return
		}
		logger.Error(err, "failed to load user profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenericError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.ToProfile()})
}
