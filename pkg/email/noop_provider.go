package email

import (
	"context"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
)

// NoOpProvider implements the Provider interface but does absolutely nothing
// Useful for local development or when emails should be completely disabled
type NoOpProvider struct {
	mode string
}

// NewNoOpProvider creates a new no-op email provider
func NewNoOpProvider(mode string) *NoOpProvider {
	return &NoOpProvider{
		mode: mode,
	}
}

// SendEmail does nothing gracefully
func (n *NoOpProvider) SendEmail(ctx context.Context, to []string, subject string, body EmailBody) error {
	return nil
}

// SendTemplateEmail does nothing gracefully
func (n *NoOpProvider) SendTemplateEmail(ctx context.Context, to []string, templateName string, data interface{}) error {
	return nil
}

// ValidateProvider always succeeds
func (n *NoOpProvider) ValidateProvider(ctx context.Context) error {
	if n.mode != "silent" {
		logger.Infof("email provider disabled (mode: %s) - emails will be silently ignored", n.mode)
	}
	return nil
}
