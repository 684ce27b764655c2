package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
	"github.com/binit-singh7/shanti-yuwa-club/internal/repositories"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// AdminService backs the content management endpoints: creating site
// content and working the contact inbox.
type AdminService interface {
	CreateProgram(ctx context.Context, title, shortDescription, content, imageURL string) (*models.Program, error)
	CreateEvent(ctx context.Context, title string, date time.Time, location, description, imageURL string) (*models.Event, error)
	CreateTeamMember(ctx context.Context, m *models.TeamMember) error
	CreateGalleryCategory(ctx context.Context, name string) (*models.GalleryCategory, error)
	CreateGalleryImage(ctx context.Context, title string, categoryID uuid.UUID, imageURL, description string) (*models.GalleryImage, error)

	ListUnreadMessages(ctx context.Context) ([]*models.ContactMessage, error)
	MarkMessageRead(ctx context.Context, id uuid.UUID) error
}

type adminService struct {
	contentService ContentService
	galleryRepo    repositories.GalleryRepository
	teamRepo       repositories.TeamRepository
	eventRepo      repositories.EventRepository
	contactRepo    repositories.ContactRepository
}

func NewAdminService(
	contentService ContentService,
	galleryRepo repositories.GalleryRepository,
	teamRepo repositories.TeamRepository,
	eventRepo repositories.EventRepository,
	contactRepo repositories.ContactRepository,
) AdminService {
	return &adminService{
		contentService: contentService,
		galleryRepo:    galleryRepo,
		teamRepo:       teamRepo,
		eventRepo:      eventRepo,
		contactRepo:    contactRepo,
	}
}

func (s *adminService) CreateProgram(ctx context.Context, title, shortDescription, content, imageURL string) (*models.Program, error) {
	// Slug uniqueness is handled by the content service.
	return s.contentService.CreateProgram(ctx, title, shortDescription, content, imageURL)
}

func (s *adminService) CreateEvent(ctx context.Context, title string, date time.Time, location, description, imageURL string) (*models.Event, error) {
	e := &models.Event{
		ID:          uuid.New(),
		Title:       title,
		Date:        date,
		Location:    location,
		Description: description,
		ImageURL:    imageURL,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	utils.Logger.Infof("Created event %q on %s", title, date.Format(time.RFC3339))
	return e, nil
}

func (s *adminService) CreateTeamMember(ctx context.Context, m *models.TeamMember) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.IsActive = true
	return s.teamRepo.Create(ctx, m)
}

func (s *adminService) CreateGalleryCategory(ctx context.Context, name string) (*models.GalleryCategory, error) {
	c := &models.GalleryCategory{ID: uuid.New(), Name: name}
	if err := s.galleryRepo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *adminService) CreateGalleryImage(ctx context.Context, title string, categoryID uuid.UUID, imageURL, description string) (*models.GalleryImage, error) {
	img := &models.GalleryImage{
		ID:          uuid.New(),
		Title:       title,
		CategoryID:  categoryID,
		ImageURL:    imageURL,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.galleryRepo.CreateImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *adminService) ListUnreadMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.contactRepo.ListUnread(ctx)
}

func (s *adminService) MarkMessageRead(ctx context.Context, id uuid.UUID) error {
	return s.contactRepo.MarkRead(ctx, id)
}
