package controller

import (
	"fmt"
	"net/http"
	"net/url"

	tokenService "github.com/dajor/bewirtungsbeleg-sub002/internal/service/token"
	userService "github.com/dajor/bewirtungsbeleg-sub002/internal/service/user"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/email"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"

	"github.com/gin-gonic/gin"
)

// SendVerification starts the registration flow: the profile data travels
// inside the token record, so nothing is persisted until the email is proven.
func (ctrl *controller) SendVerification(c *gin.Context) {
	var req model.SendVerificationRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind verification request")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	exists, err := ctrl.userService.EmailExists(req.Email)
	if err != nil {
		logger.Error(err, "failed to check email existence")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenericError})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": msgAccountExists})
		return
	}

	profile := &model.RegistrationProfile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	rec, err := ctrl.tokenService.Issue(c.Request.Context(), model.PurposeEmailVerify, req.Email, profile)
	if err != nil {
		logger.Error(err, "failed to issue verification token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenericError})
		return
	}

	verifyURL := fmt.Sprintf("%s%s?token=%s", ctrl.config.BaseURL, verifyEmailPath, url.QueryEscape(rec.Token))

	err = ctrl.emailSender.SendTemplateEmail(c.Request.Context(), []string{rec.Email}, email.TemplateEmailVerification, email.VerificationTemplateData{
		FirstName:   req.FirstName,
		VerifyURL:   verifyURL,
		ExpiryHours: int(tokenService.TTLFor(model.PurposeEmailVerify).Hours()),
	})
	if err != nil {
		logger.Error(err, "failed to send verification email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgEmailSendFailed})
		return
	}

	logger.Infof("verification email sent to %s", rec.Email)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgVerificationSent,
	})
}

// VerifyEmail checks a verification token without consuming it; the token
// stays valid so the password-setup step can redeem it. Accepts the token
// either as a query parameter (mail link) or in a JSON body.
func (ctrl *controller) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		var req model.VerifyEmailRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.Token
		}
	}

	rec, err := ctrl.tokenService.Validate(c.Request.Context(), token, model.PurposeEmailVerify)
	if err != nil {
		logger.Errorf(err, "email verification failed (%s)", tokenService.ErrorCode(err))
		c.JSON(tokenErrorStatus(err), gin.H{"error": tokenErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"email":   rec.Email,
		"message": msgEmailVerified,
	})
}

// SetupPassword finishes the registration flow: it consumes the verification
// token and creates the account from the profile carried in the record
func (ctrl *controller) SetupPassword(c *gin.Context) {
	var req model.SetupPasswordRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind setup password request")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	rec, err := ctrl.tokenService.Consume(c.Request.Context(), req.Token, model.PurposeEmailVerify)
	if err != nil {
		logger.Errorf(err, "setup password token consume failed (%s)", tokenService.ErrorCode(err))
		c.JSON(tokenErrorStatus(err), gin.H{"error": tokenErrorMessage(err)})
		return
	}

	if rec.Profile == nil || rec.Profile.FirstName == "" {
		// the token was issued without registration data; the user has to
		// restart the flow since the record is consumed at this point
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidTokenData})
		return
	}

	user, err := ctrl.userService.Register(rec.Email, req.Password, rec.Profile, model.RoleUser)
	if err != nil {
		if err == userService.ErrUserAlreadyExists {
			c.JSON(http.StatusConflict, gin.H{"error": msgAccountExists})
			return
		}
		logger.Error(err, "failed to create account")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenericError})
		return
	}

	logger.Infof("account created for %s", user.Email)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"email":   user.Email,
		"message": msgAccountCreated,
	})
}
