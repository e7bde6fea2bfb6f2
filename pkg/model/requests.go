package model

// SendMagicLinkRequest is the payload for requesting a passwordless login link.
type SendMagicLinkRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordRequest is the payload for requesting a password reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest sets a new password using a password-reset token.
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// SendVerificationRequest starts a registration by mailing a verification link.
type SendVerificationRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// VerifyEmailRequest is the POST body variant of the email verification check.
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// SetupPasswordRequest finalizes a registration: consumes the verification
// token and creates the account with the chosen password.
type SetupPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LogoutRequest invalidates a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
