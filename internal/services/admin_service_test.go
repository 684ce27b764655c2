package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

type fakeGalleryRepo struct {
	categories []*models.GalleryCategory
	images     []*models.GalleryImage
}

func (f *fakeGalleryRepo) CreateCategory(_ context.Context, c *models.GalleryCategory) error {
	cp := *c
	f.categories = append(f.categories, &cp)
	return nil
}

func (f *fakeGalleryRepo) ListCategories(_ context.Context) ([]*models.GalleryCategory, error) {
	return f.categories, nil
}

func (f *fakeGalleryRepo) CreateImage(_ context.Context, img *models.GalleryImage) error {
	cp := *img
	f.images = append(f.images, &cp)
	return nil
}

func (f *fakeGalleryRepo) ListImages(_ context.Context, _ string, _ int) ([]*models.GalleryImage, error) {
	return f.images, nil
}

type fakeContactRepo struct {
	messages map[uuid.UUID]*models.ContactMessage
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{messages: make(map[uuid.UUID]*models.ContactMessage)}
}

func (f *fakeContactRepo) Create(_ context.Context, m *models.ContactMessage) error {
	cp := *m
	f.messages[m.ID] = &cp
	return nil
}

func (f *fakeContactRepo) ListUnread(_ context.Context) ([]*models.ContactMessage, error) {
	var out []*models.ContactMessage
	for _, m := range f.messages {
		if !m.IsRead {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	if m, ok := f.messages[id]; ok {
		m.IsRead = true
	}
	return nil
}

type fakeEventRepo struct {
	events []*models.Event
}

func (f *fakeEventRepo) Create(_ context.Context, e *models.Event) error {
	cp := *e
	f.events = append(f.events, &cp)
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) ListUpcoming(_ context.Context, limit int) ([]*models.Event, error) {
	if limit > 0 && len(f.events) > limit {
		return f.events[:limit], nil
	}
	return f.events, nil
}

type fakeTeamRepo struct {
	members []*models.TeamMember
}

func (f *fakeTeamRepo) Create(_ context.Context, m *models.TeamMember) error {
	cp := *m
	f.members = append(f.members, &cp)
	return nil
}

func (f *fakeTeamRepo) ListActive(_ context.Context, _ int) ([]*models.TeamMember, error) {
	return f.members, nil
}

func newTestAdminService() (AdminService, *fakeGalleryRepo, *fakeContactRepo, *fakeEventRepo) {
	programRepo := newFakeProgramRepo()
	galleryRepo := &fakeGalleryRepo{}
	teamRepo := &fakeTeamRepo{}
	eventRepo := &fakeEventRepo{}
	contactRepo := newFakeContactRepo()

	contentService := NewContentService(programRepo, galleryRepo, teamRepo, eventRepo)
	svc := NewAdminService(contentService, galleryRepo, teamRepo, eventRepo, contactRepo)
	return svc, galleryRepo, contactRepo, eventRepo
}

func TestCreateEventDefaultsActive(t *testing.T) {
	svc, _, _, eventRepo := newTestAdminService()

	event, err := svc.CreateEvent(context.Background(),
		"Annual Picnic", time.Now().Add(72*time.Hour), "City Park", "Family day out", "")
	require.NoError(t, err)
	require.True(t, event.IsActive)
	require.NotEqual(t, uuid.Nil, event.ID)
	require.Len(t, eventRepo.events, 1)
}

func TestCreateGalleryImageInCategory(t *testing.T) {
	svc, galleryRepo, _, _ := newTestAdminService()
	ctx := context.Background()

	category, err := svc.CreateGalleryCategory(ctx, "Festivals")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, category.ID)

	img, err := svc.CreateGalleryImage(ctx, "Dashain 2025", category.ID, "https://cdn.example.com/d.jpg", "")
	require.NoError(t, err)
	require.Equal(t, category.ID, img.CategoryID)
	require.Len(t, galleryRepo.images, 1)
}

func TestMarkMessageReadRemovesFromUnread(t *testing.T) {
	svc, _, contactRepo, _ := newTestAdminService()
	ctx := context.Background()

	msg := &models.ContactMessage{
		ID:      uuid.New(),
		Name:    "Asha",
		Email:   "asha@example.com",
		Subject: "Volunteering",
		Message: "How do I join the cleanup drive?",
	}
	require.NoError(t, contactRepo.Create(ctx, msg))

	unread, err := svc.ListUnreadMessages(ctx)
	require.NoError(t, err)
	require.Len(t, unread, 1)

	require.NoError(t, svc.MarkMessageRead(ctx, msg.ID))

	unread, err = svc.ListUnreadMessages(ctx)
	require.NoError(t, err)
	require.Empty(t, unread)
}
