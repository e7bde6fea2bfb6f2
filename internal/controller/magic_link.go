package controller

import (
	"fmt"
	"net/http"
	"net/url"

	tokenService "github.com/dajor/bewirtungsbeleg-sub002/internal/service/token"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/email"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"

	"github.com/gin-gonic/gin"
)

// SendMagicLink issues a passwordless login token and mails the link
func (ctrl *controller) SendMagicLink(c *gin.Context) {
	var req model.SendMagicLinkRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind magic link request")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidEmail})
		return
	}

	rec, err := ctrl.tokenService.Issue(c.Request.Context(), model.PurposeMagicLink, req.Email, nil)
	if err != nil {
		logger.Error(err, "failed to issue magic link token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenericError})
		return
	}

	magicLinkURL := fmt.Sprintf("%s/api/v1/auth/magic-link/verify?token=%s", ctrl.config.BaseURL, url.QueryEscape(rec.Token))

	err = ctrl.emailSender.SendTemplateEmail(c.Request.Context(), []string{rec.Email}, email.TemplateMagicLink, email.MagicLinkTemplateData{
		MagicLinkURL:  magicLinkURL,
		ExpiryMinutes: int(tokenService.TTLFor(model.PurposeMagicLink).Minutes()),
	})
	if err != nil {
		logger.Error(err, "failed to send magic link email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgEmailSendFailed})
		return
	}

	logger.Infof("magic link sent to %s", rec.Email)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgMagicLinkSent,
	})
}

// VerifyMagicLink redeems a magic-link token: validation is the redemption,
// so the token is gone after this call whatever the outcome. Responds with a
// redirect either way so the flow works from a mail client link.
func (ctrl *controller) VerifyMagicLink(c *gin.Context) {
	token := c.Query("token")

	rec, err := ctrl.tokenService.Redeem(c.Request.Context(), token)
	if err != nil {
		code := tokenService.ErrorCode(err)
		logger.Errorf(err, "magic link verification failed (%s)", code)
		ctrl.redirectWithError(c, code)
		return
	}

	logger.Infof("magic link redeemed for %s", rec.Email)

	// the front-end callback creates the session from the verified email
	target := fmt.Sprintf("%s%s?email=%s", ctrl.config.BaseURL, magicLinkCallbackPath, url.QueryEscape(rec.Email))
	c.Redirect(http.StatusTemporaryRedirect, target)
}

// redirectWithError sends the browser back to the sign-in page with a
// symbolic error code; the raw token or email is never part of the URL
func (ctrl *controller) redirectWithError(c *gin.Context, code string) {
	target := fmt.Sprintf("%s%s?error=%s", ctrl.config.BaseURL, signInPath, code)
	c.Redirect(http.StatusTemporaryRedirect, target)
}
