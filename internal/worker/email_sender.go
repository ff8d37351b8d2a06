package worker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pharmahub/backend/internal/config"
	emailProvider "github.com/pharmahub/backend/pkg/email"
	"github.com/pharmahub/backend/pkg/logger"
)

const (
	verificationSubject  = "Confirm your PharmaHub email"
	passwordResetSubject = "Reset your PharmaHub password"
)

type emailSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender: sender,
		config: config,
	}
}

type verificationEmailInput struct {
	FullName         string
	VerificationCode string
}

type passwordResetEmailInput struct {
	FullName  string
	ResetLink string
}

func (s *emailSender) SendVerificationEmail(ctx context.Context, email string, fullName string, verificationCode string) error {
	return s.send(email, verificationSubject, s.config.Templates.Verification, verificationEmailInput{
		FullName:         fullName,
		VerificationCode: verificationCode,
	})
}

func (s *emailSender) SendPasswordResetEmail(ctx context.Context, email string, fullName string, resetLink string) error {
	return s.send(email, passwordResetSubject, s.config.Templates.PasswordReset, passwordResetEmailInput{
		FullName:  fullName,
		ResetLink: resetLink,
	})
}

func (s *emailSender) send(to string, subject string, template string, data interface{}) error {
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: to}

	if err := sendInput.GenerateBodyFromHTML(s.config.TemplatesDir, template, data); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	// Local setups run without SMTP.
	if !s.config.Enabled {
		logger.Info("email delivery disabled, skipping send", zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
