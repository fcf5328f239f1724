package repository

import (
	"context"
	"sort"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/store"
)

type ExperienceRepository struct {
	store store.Store
	now   func() time.Time
}

func NewExperienceRepository(s store.Store) *ExperienceRepository {
	return &ExperienceRepository{store: s, now: time.Now}
}

// WithClock replaces the clock used to stamp createdAt.
func (r *ExperienceRepository) WithClock(now func() time.Time) *ExperienceRepository {
	r.now = now
	return r
}

// List returns experiences newest first by createdAt. Entries without a
// parseable createdAt follow the dated ones in store order.
func (r *ExperienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	docs, err := r.store.List(ctx, domain.CollectionExperiences)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Experience, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.ExperienceFromDocument(d))
	}
	SortExperiences(out)
	return out, nil
}

func (r *ExperienceRepository) Get(ctx context.Context, id string) (*domain.Experience, error) {
	doc, err := r.store.Get(ctx, domain.CollectionExperiences, id)
	if err != nil {
		return nil, err
	}
	e := domain.ExperienceFromDocument(*doc)
	return &e, nil
}

// Create stamps createdAt and persists e.
func (r *ExperienceRepository) Create(ctx context.Context, e domain.Experience) (string, error) {
	e.CreatedAt = r.now().UTC().Format(time.RFC3339)
	return r.store.Create(ctx, domain.CollectionExperiences, domain.ExperienceFields(e))
}

// Update overwrites e.ID. A createdAt already on e is kept; an experience
// that never had one is stamped now.
func (r *ExperienceRepository) Update(ctx context.Context, e domain.Experience) error {
	if e.CreatedAt == "" {
		e.CreatedAt = r.now().UTC().Format(time.RFC3339)
	}
	return r.store.Update(ctx, domain.CollectionExperiences, e.ID, domain.ExperienceFields(e))
}

func (r *ExperienceRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, domain.CollectionExperiences, id)
}

// SortExperiences orders items by createdAt descending, stable for ties
// and for undated entries.
func SortExperiences(items []domain.Experience) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, okI := createdAt(items[i])
		tj, okJ := createdAt(items[j])
		switch {
		case okI && okJ:
			return ti.After(tj)
		case okI:
			return true
		default:
			return false
		}
	})
}

func createdAt(e domain.Experience) (time.Time, bool) {
	if e.CreatedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, e.CreatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
