package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

type fakeProgramRepo struct {
	programs map[string]*models.Program // keyed by slug
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{programs: make(map[string]*models.Program)}
}

func (f *fakeProgramRepo) Create(_ context.Context, p *models.Program) error {
	cp := *p
	f.programs[p.Slug] = &cp
	return nil
}

func (f *fakeProgramRepo) GetBySlug(_ context.Context, slug string) (*models.Program, error) {
	p, ok := f.programs[slug]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProgramRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Program, error) {
	for _, p := range f.programs {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProgramRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	_, ok := f.programs[slug]
	return ok, nil
}

func (f *fakeProgramRepo) ListActive(_ context.Context, limit int) ([]*models.Program, error) {
	var out []*models.Program
	for _, p := range f.programs {
		if p.IsActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProgramRepo) ListRelated(_ context.Context, excludeID uuid.UUID, limit int) ([]*models.Program, error) {
	var out []*models.Program
	for _, p := range f.programs {
		if p.IsActive && p.ID != excludeID {
			cp := *p
			out = append(out, &cp)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestCreateProgramGeneratesUniqueSlugs(t *testing.T) {
	repo := newFakeProgramRepo()
	svc := NewContentService(repo, nil, nil, nil).(*contentService)
	ctx := context.Background()

	first, err := svc.CreateProgram(ctx, "Yoga & Meditation", "Weekly sessions", "...", "")
	require.NoError(t, err)
	require.Equal(t, "yoga-meditation", first.Slug)

	second, err := svc.CreateProgram(ctx, "Yoga & Meditation", "Another run", "...", "")
	require.NoError(t, err)
	require.Equal(t, "yoga-meditation-1", second.Slug)

	third, err := svc.CreateProgram(ctx, "Yoga & Meditation", "Yet another", "...", "")
	require.NoError(t, err)
	require.Equal(t, "yoga-meditation-2", third.Slug)
}

func TestGetProgramBySlugReturnsRelated(t *testing.T) {
	repo := newFakeProgramRepo()
	svc := NewContentService(repo, nil, nil, nil).(*contentService)
	ctx := context.Background()

	main, err := svc.CreateProgram(ctx, "Community Cleanup", "Monthly drive", "...", "")
	require.NoError(t, err)
	_, err = svc.CreateProgram(ctx, "Blood Donation", "Quarterly camp", "...", "")
	require.NoError(t, err)

	detail, err := svc.GetProgramBySlug(ctx, main.Slug)
	require.NoError(t, err)
	require.Equal(t, main.ID, detail.Program.ID)
	require.Len(t, detail.Related, 1)
	require.Equal(t, "blood-donation", detail.Related[0].Slug)
}

func TestGetProgramBySlugUnknown(t *testing.T) {
	svc := NewContentService(newFakeProgramRepo(), nil, nil, nil).(*contentService)

	_, err := svc.GetProgramBySlug(context.Background(), "no-such-program")
	require.Error(t, err)
}
