package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
	"github.com/binit-singh7/shanti-yuwa-club/internal/repositories"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// HomePage aggregates everything the landing page renders in one call.
type HomePage struct {
	Programs       []*models.Program      `json:"programs"`
	GalleryImages  []*models.GalleryImage `json:"gallery_images"`
	TeamMembers    []*models.TeamMember   `json:"team_members"`
	UpcomingEvents []*models.Event        `json:"upcoming_events"`
}

// ProgramDetail pairs a program with related suggestions.
type ProgramDetail struct {
	Program *models.Program   `json:"program"`
	Related []*models.Program `json:"related"`
}

// ---------------------------------------------------------------------
// ContentService interface
// ---------------------------------------------------------------------
type ContentService interface {
	GetHomePage(ctx context.Context) (*HomePage, error)

	ListPrograms(ctx context.Context) ([]*models.Program, error)
	GetProgramBySlug(ctx context.Context, slug string) (*ProgramDetail, error)
	// CreateProgram slugifies the title and appends a numeric suffix
	// until the slug is unique.
	CreateProgram(ctx context.Context, title, shortDescription, content, imageURL string) (*models.Program, error)

	ListGalleryImages(ctx context.Context, category string, limit int) ([]*models.GalleryImage, error)
	ListGalleryCategories(ctx context.Context) ([]*models.GalleryCategory, error)

	ListTeamMembers(ctx context.Context) ([]*models.TeamMember, error)
	ListUpcomingEvents(ctx context.Context, limit int) ([]*models.Event, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------
type contentService struct {
	programRepo repositories.ProgramRepository
	galleryRepo repositories.GalleryRepository
	teamRepo    repositories.TeamRepository
	eventRepo   repositories.EventRepository
}

func NewContentService(
	programRepo repositories.ProgramRepository,
	galleryRepo repositories.GalleryRepository,
	teamRepo repositories.TeamRepository,
	eventRepo repositories.EventRepository,
) ContentService {
	return &contentService{
		programRepo: programRepo,
		galleryRepo: galleryRepo,
		teamRepo:    teamRepo,
		eventRepo:   eventRepo,
	}
}

func (s *contentService) GetHomePage(ctx context.Context) (*HomePage, error) {
	programs, err := s.programRepo.ListActive(ctx, 6)
	if err != nil {
		return nil, err
	}
	images, err := s.galleryRepo.ListImages(ctx, "", 8)
	if err != nil {
		return nil, err
	}
	team, err := s.teamRepo.ListActive(ctx, 4)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListUpcoming(ctx, 3)
	if err != nil {
		return nil, err
	}
	return &HomePage{
		Programs:       programs,
		GalleryImages:  images,
		TeamMembers:    team,
		UpcomingEvents: events,
	}, nil
}

func (s *contentService) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	return s.programRepo.ListActive(ctx, 0)
}

func (s *contentService) GetProgramBySlug(ctx context.Context, slug string) (*ProgramDetail, error) {
	program, err := s.programRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if program == nil || !program.IsActive {
		return nil, &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Program not found"}
	}

	related, err := s.programRepo.ListRelated(ctx, program.ID, 3)
	if err != nil {
		return nil, err
	}
	return &ProgramDetail{Program: program, Related: related}, nil
}

func (s *contentService) CreateProgram(ctx context.Context, title, shortDescription, content, imageURL string) (*models.Program, error) {
	slug, err := s.uniqueSlug(ctx, title)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &models.Program{
		ID:               uuid.New(),
		Title:            title,
		Slug:             slug,
		ShortDescription: shortDescription,
		Content:          content,
		ImageURL:         imageURL,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.programRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	utils.Logger.Infof("Created program %q with slug %q", title, slug)
	return p, nil
}

// uniqueSlug tries "title", then "title-1", "title-2", ...
func (s *contentService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := utils.Slugify(title)
	slug := base
	for counter := 1; ; counter++ {
		exists, err := s.programRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (s *contentService) ListGalleryImages(ctx context.Context, category string, limit int) ([]*models.GalleryImage, error) {
	return s.galleryRepo.ListImages(ctx, category, limit)
}

func (s *contentService) ListGalleryCategories(ctx context.Context) ([]*models.GalleryCategory, error) {
	return s.galleryRepo.ListCategories(ctx)
}

func (s *contentService) ListTeamMembers(ctx context.Context) ([]*models.TeamMember, error) {
	return s.teamRepo.ListActive(ctx, 0)
}

func (s *contentService) ListUpcomingEvents(ctx context.Context, limit int) ([]*models.Event, error) {
	return s.eventRepo.ListUpcoming(ctx, limit)
}
