package controller

import (
	"errors"
	"net/http"

	authService "github.com/dajor/bewirtungsbeleg-sub002/internal/service/auth"
	tokenService "github.com/dajor/bewirtungsbeleg-sub002/internal/service/token"
	userService "github.com/dajor/bewirtungsbeleg-sub002/internal/service/user"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/config"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/email"

	"github.com/gin-gonic/gin"
)

// front-end paths the redeeming endpoints redirect to
const (
	signInPath            = "/auth/anmelden"
	magicLinkCallbackPath = "/auth/callback/magic-link"
	resetPasswordPath     = "/auth/reset-password"
	verifyEmailPath       = "/auth/verify-email"
)

// user-facing messages (the front-end is German)
const (
	msgInvalidEmail       = "Ungültige E-Mail-Adresse"
	msgInvalidRequest     = "Ungültige Anfrage"
	msgInvalidCredentials = "Ungültige E-Mail-Adresse oder Passwort"
	msgGenericError       = "Ein Fehler ist aufgetreten. Bitte versuchen Sie es erneut."
	msgEmailSendFailed    = "E-Mail konnte nicht gesendet werden. Bitte versuchen Sie es erneut."
	msgTokenRequired      = "Token ist erforderlich"
	msgInvalidToken       = "Ungültiger oder abgelaufener Token"
	msgTokenExpired       = "Token ist abgelaufen"
	msgWrongTokenType     = "Falscher Token-Typ"
	msgInvalidTokenData   = "Ungültige Token-Daten. Bitte registrieren Sie sich erneut."
	msgAccountExists      = "Ein Konto mit dieser E-Mail existiert bereits. Bitte melden Sie sich an."
	msgMagicLinkSent      = "Ein Anmelde-Link wurde an Ihre E-Mail-Adresse gesendet."
	msgResetEmailSent     = "Wenn ein Konto mit dieser E-Mail-Adresse existiert, wurde eine E-Mail zum Zurücksetzen des Passworts gesendet."
	msgVerificationSent   = "Eine Bestätigungs-E-Mail wurde an Ihre E-Mail-Adresse gesendet."
	msgEmailVerified      = "E-Mail-Adresse erfolgreich bestätigt"
	msgPasswordChanged    = "Passwort erfolgreich geändert"
	msgAccountCreated     = "Konto erfolgreich erstellt! Sie können sich jetzt anmelden."
)

// ControllerProvider defines the controller interface
type ControllerProvider interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
	SendMagicLink(c *gin.Context)
	VerifyMagicLink(c *gin.Context)
	ForgotPassword(c *gin.Context)
	VerifyResetToken(c *gin.Context)
	ResetPassword(c *gin.Context)
	SendVerification(c *gin.Context)
	VerifyEmail(c *gin.Context)
	SetupPassword(c *gin.Context)
}

// controller implements the controller interface
type controller struct {
	config       *config.Config
	authService  authService.Service
	userService  userService.Service
	tokenService tokenService.Service
	emailSender  email.Provider
}

// NewController creates a new controller instance
func NewController(
	cfg *config.Config,
	authService authService.Service,
	userService userService.Service,
	tokenService tokenService.Service,
	emailSender email.Provider,
) ControllerProvider {
	return &controller{
		config:       cfg,
		authService:  authService,
		userService:  userService,
		tokenService: tokenService,
		emailSender:  emailSender,
	}
}

// tokenErrorMessage maps a token validation error to its user-facing message
func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, tokenService.ErrMissingToken):
		return msgTokenRequired
	case errors.Is(err, tokenService.ErrWrongTokenType):
		return msgWrongTokenType
	case errors.Is(err, tokenService.ErrTokenExpired):
		return msgTokenExpired
	case errors.Is(err, tokenService.ErrInvalidToken):
		return msgInvalidToken
	default:
		return msgGenericError
	}
}

// tokenErrorStatus maps a token validation error to an HTTP status: the
// recognized failure modes are client errors, only backend failures are 500s
func tokenErrorStatus(err error) int {
	if tokenService.ErrorCode(err) == tokenService.CodeVerificationFailed {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
