package services

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/google/uuid"

	"github.com/binit-singh7/shanti-yuwa-club/internal/config"
	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
	"github.com/binit-singh7/shanti-yuwa-club/internal/repositories"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

type ContactService interface {
	// Submit stores the message and notifies the club inbox. A failed
	// notification is logged but does not fail the submission.
	Submit(ctx context.Context, name, email, subject, message string) (*models.ContactMessage, error)
}

type contactService struct {
	contactRepo repositories.ContactRepository
	mailer      Mailer
	cfg         *config.Config
}

func NewContactService(contactRepo repositories.ContactRepository, mailer Mailer, cfg *config.Config) ContactService {
	return &contactService{contactRepo: contactRepo, mailer: mailer, cfg: cfg}
}

func (s *contactService) Submit(ctx context.Context, name, email, subject, message string) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: saving contact message: %v", utils.ErrPersistFailed, err)
	}

	notifSubject := fmt.Sprintf("New contact message: %s", subject)
	plain := fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s\n", name, email, subject, message)
	// Sender-controlled fields are escaped before they land in the
	// HTML body of the inbox notification.
	htmlBody := fmt.Sprintf(contactNotificationHTML,
		html.EscapeString(name), html.EscapeString(email),
		html.EscapeString(subject), html.EscapeString(message),
		time.Now().Year())

	if err := s.mailer.Send(ctx, s.cfg.ContactInboxEmail, notifSubject, plain, htmlBody); err != nil {
		utils.Logger.WithError(err).Error("Failed to dispatch contact notification email")
	}
	return msg, nil
}
