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

// ForgotPassword issues a password-reset token and mails the link. The
// response is the same whether or not an account exists for the address.
func (ctrl *controller) ForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind forgot password request")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidEmail})
		return
	}

	rec, err := ctrl.tokenService.Issue(c.Request.Context(), model.PurposePasswordReset, req.Email, nil)
	if err != nil {
		logger.Error(err, "failed to issue password reset token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenericError})
		return
	}

	resetURL := fmt.Sprintf("%s%s?token=%s", ctrl.config.BaseURL, resetPasswordPath, url.QueryEscape(rec.Token))

	err = ctrl.emailSender.SendTemplateEmail(c.Request.Context(), []string{rec.Email}, email.TemplatePasswordReset, email.PasswordResetTemplateData{
		ResetURL:      resetURL,
		ExpiryMinutes: int(tokenService.TTLFor(model.PurposePasswordReset).Minutes()),
	})
	if err != nil {
		logger.Error(err, "failed to send password reset email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgEmailSendFailed})
		return
	}

	logger.Infof("password reset email sent to %s", rec.Email)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgResetEmailSent,
	})
}

// VerifyResetToken checks a reset token without consuming it, so the
// front-end can decide whether to show the new-password form
func (ctrl *controller) VerifyResetToken(c *gin.Context) {
	token := c.Query("token")

	rec, err := ctrl.tokenService.Validate(c.Request.Context(), token, model.PurposePasswordReset)
	if err != nil {
		logger.Errorf(err, "reset token verification failed (%s)", tokenService.ErrorCode(err))
		c.JSON(tokenErrorStatus(err), gin.H{"error": tokenErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"email": rec.Email,
	})
}

// ResetPassword consumes the reset token and sets the new password. The
// token is single-use: consumption happens before the password write, so a
// second submit with the same token fails as invalid.
func (ctrl *controller) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind reset password request")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	rec, err := ctrl.tokenService.Consume(c.Request.Context(), req.Token, model.PurposePasswordReset)
	if err != nil {
		logger.Errorf(err, "reset password token consume failed (%s)", tokenService.ErrorCode(err))
		c.JSON(tokenErrorStatus(err), gin.H{"error": tokenErrorMessage(err)})
		return
	}

	err = ctrl.userService.UpdatePassword(rec.Email, req.Password)
	if err != nil {
		if err == userService.ErrUserNotFound {
			// the reset mail goes out regardless of account existence, so
			// a token can resolve to no account; don't reveal which case
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidToken})
			return
		}
		logger.Error(err, "failed to update password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenericError})
		return
	}

	// confirmation email is best-effort; the password is already changed
	err = ctrl.emailSender.SendTemplateEmail(c.Request.Context(), []string{rec.Email}, email.TemplatePasswordChanged, email.PasswordChangedTemplateData{
		Email: rec.Email,
	})
	if err != nil {
		logger.Error(err, "failed to send password changed email")
	}

	logger.Infof("password reset completed for %s", rec.Email)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"email":   rec.Email,
		"message": msgPasswordChanged,
	})
}
