package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binit-singh7/shanti-yuwa-club/internal/config"
)

func newTestContactService() (ContactService, *fakeContactRepo, *fakeMailer) {
	repo := newFakeContactRepo()
	mailer := &fakeMailer{}
	cfg := &config.Config{ContactInboxEmail: "inbox@shantiyuwa.club"}
	return NewContactService(repo, mailer, cfg), repo, mailer
}

func TestSubmitStoresAndNotifiesInbox(t *testing.T) {
	svc, repo, mailer := newTestContactService()

	msg, err := svc.Submit(context.Background(),
		"Asha", "asha@example.com", "Volunteering", "Count me in for the cleanup drive.")
	require.NoError(t, err)
	require.NotNil(t, repo.messages[msg.ID])
	require.Len(t, mailer.sent, 1)
	require.Equal(t, "inbox@shantiyuwa.club|New contact message: Volunteering", mailer.sent[0])
}

func TestSubmitEscapesHTMLInNotification(t *testing.T) {
	svc, _, mailer := newTestContactService()

	_, err := svc.Submit(context.Background(),
		"<script>alert(1)</script>", "asha@example.com",
		"<b>Hi</b>", "a & b <img src=x>")
	require.NoError(t, err)

	require.NotContains(t, mailer.lastHTML, "<script>")
	require.NotContains(t, mailer.lastHTML, "<b>Hi</b>")
	require.NotContains(t, mailer.lastHTML, "<img")
	require.Contains(t, mailer.lastHTML, "&lt;script&gt;alert(1)&lt;/script&gt;")
	require.Contains(t, mailer.lastHTML, "a &amp; b &lt;img src=x&gt;")
}

func TestSubmitSurvivesNotificationFailure(t *testing.T) {
	svc, repo, mailer := newTestContactService()
	mailer.failing = true

	msg, err := svc.Submit(context.Background(),
		"Asha", "asha@example.com", "Hello", "Just saying hi.")
	require.NoError(t, err)
	require.NotNil(t, repo.messages[msg.ID])
}
