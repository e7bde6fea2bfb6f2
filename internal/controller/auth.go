package controller

import (
	"net/http"

	authService "github.com/dajor/bewirtungsbeleg-sub002/internal/service/auth"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"

	"github.com/gin-gonic/gin"
)

// Login handles email/password authentication
func (ctrl *controller) Login(c *gin.Context) {
	var req model.LoginRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind login request")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	resp, err := ctrl.authService.Login(&req)
	if err != nil {
		if err == authService.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgInvalidCredentials})
			return
		}
		logger.Error(err, "login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenericError})
		return
	}

	logger.Infof("user %s logged in", resp.User.Email)
	c.JSON(http.StatusOK, gin.H{
		"access_token":  resp.AccessToken,
		"refresh_token": resp.RefreshToken,
		"user":          resp.User.ToProfile(),
	})
}

// Logout invalidates the presented refresh token
func (ctrl *controller) Logout(c *gin.Context) {
	var req model.LogoutRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind logout request")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	err = ctrl.authService.Logout(req.RefreshToken)
	if err != nil {
		logger.Error(err, "logout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenericError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
