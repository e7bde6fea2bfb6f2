package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// template names
const (
	TemplateMagicLink         = "magic_link"
	TemplatePasswordReset     = "password_reset"
	TemplatePasswordChanged   = "password_changed"
	TemplateEmailVerification = "email_verification"
)

// renderTemplate renders an email template with the given data
func renderTemplate(templateName string, data interface{}) (EmailBody, error) {
	switch templateName {
	case TemplateMagicLink:
		if d, ok := data.(MagicLinkTemplateData); ok {
			return renderBody(magicLinkTemplateHTML, magicLinkTemplateText, d)
		}
		return EmailBody{}, fmt.Errorf("invalid template data type for %s", templateName)
	case TemplatePasswordReset:
		if d, ok := data.(PasswordResetTemplateData); ok {
			return renderBody(passwordResetTemplateHTML, passwordResetTemplateText, d)
		}
		return EmailBody{}, fmt.Errorf("invalid template data type for %s", templateName)
	case TemplatePasswordChanged:
		if d, ok := data.(PasswordChangedTemplateData); ok {
			return renderBody(passwordChangedTemplateHTML, passwordChangedTemplateText, d)
		}
		return EmailBody{}, fmt.Errorf("invalid template data type for %s", templateName)
	case TemplateEmailVerification:
		if d, ok := data.(VerificationTemplateData); ok {
			return renderBody(verificationTemplateHTML, verificationTemplateText, d)
		}
		return EmailBody{}, fmt.Errorf("invalid template data type for %s", templateName)
	default:
		return EmailBody{}, fmt.Errorf("unknown template: %s", templateName)
	}
}

// getTemplateSubject returns the subject for a given template
func getTemplateSubject(templateName string) string {
	switch templateName {
	case TemplateMagicLink:
		return "Ihr Anmelde-Link - DocBits Bewirtungsbeleg"
	case TemplatePasswordReset:
		return "Passwort zurücksetzen - DocBits Bewirtungsbeleg"
	case TemplatePasswordChanged:
		return "Passwort erfolgreich geändert - DocBits Bewirtungsbeleg"
	case TemplateEmailVerification:
		return "Bestätigen Sie Ihre E-Mail-Adresse - DocBits Bewirtungsbeleg"
	default:
		return "DocBits Bewirtungsbeleg"
	}
}

// renderBody renders the HTML and text variants of a template
func renderBody(htmlSrc, textSrc string, data interface{}) (EmailBody, error) {
	htmlTmpl, err := template.New("html").Parse(htmlSrc)
	if err != nil {
		return EmailBody{}, fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var htmlBuf bytes.Buffer
	err = htmlTmpl.Execute(&htmlBuf, data)
	if err != nil {
		return EmailBody{}, fmt.Errorf("failed to execute HTML template: %w", err)
	}

	textTmpl, err := template.New("text").Parse(textSrc)
	if err != nil {
		return EmailBody{}, fmt.Errorf("failed to parse text template: %w", err)
	}

	var textBuf bytes.Buffer
	err = textTmpl.Execute(&textBuf, data)
	if err != nil {
		return EmailBody{}, fmt.Errorf("failed to execute text template: %w", err)
	}

	return EmailBody{
		HTML: strings.TrimSpace(htmlBuf.String()),
		Text: strings.TrimSpace(textBuf.String()),
	}, nil
}
