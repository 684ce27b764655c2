package services

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/binit-singh7/shanti-yuwa-club/internal/config"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// Mailer is the outbound notification channel. The plain-text body is
// the required fallback; htmlBody may be empty.
type Mailer interface {
	Send(ctx context.Context, to, subject, plainText, htmlBody string) error
}

type sendgridMailer struct {
	client *sendgrid.Client
	cfg    *config.Config
}

func NewSendGridMailer(cfg *config.Config) Mailer {
	return &sendgridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		cfg:    cfg,
	}
}

func (m *sendgridMailer) Send(ctx context.Context, to, subject, plainText, htmlBody string) error {
	from := mail.NewEmail(m.cfg.OrganizationName, m.cfg.SendGridFromEmail)
	recipient := mail.NewEmail("", to)
	if htmlBody == "" {
		htmlBody = plainText
	}
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlBody)

	if m.cfg.SendGridSandboxMode {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	resp, err := m.client.Send(message)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send email to %s via SendGrid", to)
		return err
	}
	if resp.StatusCode >= 400 {
		utils.Logger.Errorf("SendGrid rejected email to %s: status %d", to, resp.StatusCode)
		return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
	}
	return nil
}
