package email

import (
	"context"
)

// Provider defines the interface for email providers
type Provider interface {
	// SendEmail sends an email with the specified content
	SendEmail(ctx context.Context, to []string, subject string, body EmailBody) error

	// SendTemplateEmail sends an email using a template
	SendTemplateEmail(ctx context.Context, to []string, templateName string, data interface{}) error

	// ValidateProvider validates the provider configuration
	ValidateProvider(ctx context.Context) error
}

// EmailBody represents the email content
type EmailBody struct {
	HTML string // HTML content
	Text string // Plain text content
}

// MagicLinkTemplateData represents data for passwordless login emails
type MagicLinkTemplateData struct {
	MagicLinkURL  string
	ExpiryMinutes int
}

// PasswordResetTemplateData represents data for password reset emails
type PasswordResetTemplateData struct {
	ResetURL      string
	ExpiryMinutes int
}

// PasswordChangedTemplateData represents data for the confirmation mail sent
// after a successful password change
type PasswordChangedTemplateData struct {
	Email string
}

// VerificationTemplateData represents data for registration verification emails
type VerificationTemplateData struct {
	FirstName   string
	VerifyURL   string
	ExpiryHours int
}
