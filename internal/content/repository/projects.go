package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/store"
)

type ProjectRepository struct {
	store store.Store
}

func NewProjectRepository(s store.Store) *ProjectRepository {
	return &ProjectRepository{store: s}
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	docs, err := r.store.List(ctx, domain.CollectionProjects)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.ProjectFromDocument(d))
	}
	return out, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	doc, err := r.store.Get(ctx, domain.CollectionProjects, id)
	if err != nil {
		return nil, err
	}
	p := domain.ProjectFromDocument(*doc)
	return &p, nil
}

// Create persists p without its id and returns the id the store assigned.
func (r *ProjectRepository) Create(ctx context.Context, p domain.Project) (string, error) {
	return r.store.Create(ctx, domain.CollectionProjects, domain.ProjectFields(p))
}

// Update overwrites the stored project p.ID.
func (r *ProjectRepository) Update(ctx context.Context, p domain.Project) error {
	return r.store.Update(ctx, domain.CollectionProjects, p.ID, domain.ProjectFields(p))
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, domain.CollectionProjects, id)
}
