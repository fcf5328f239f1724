package views

import (
	"context"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
)

var (
	ProjectMessages = Messages{
		Noun:         "project",
		Empty:        "No projects found.",
		FetchFailure: "Failed to fetch projects.",
	}
	ExperienceMessages = Messages{
		Noun:         "experience",
		Empty:        "No experiences found.",
		FetchFailure: "Failed to fetch experiences.",
	}
)

type ProjectSource = ListSource[domain.Project]
type ExperienceSource = ListSource[domain.Experience]

func projectID(p domain.Project) string       { return p.ID }
func experienceID(e domain.Experience) string { return e.ID }

func NewPublicProjects(src ProjectSource, log *zap.Logger) *List[domain.Project] {
	return NewList[domain.Project](src, projectID, ProjectMessages, false, log)
}

func NewAdminProjects(src ProjectSource, log *zap.Logger) *List[domain.Project] {
	return NewList[domain.Project](src, projectID, ProjectMessages, true, log)
}

func NewPublicExperiences(src ExperienceSource, log *zap.Logger) *List[domain.Experience] {
	return NewList[domain.Experience](src, experienceID, ExperienceMessages, false, log)
}

func NewAdminExperiences(src ExperienceSource, log *zap.Logger) *List[domain.Experience] {
	return NewList[domain.Experience](src, experienceID, ExperienceMessages, true, log)
}

// Stats are the dashboard counters.
type Stats struct {
	TotalProjects int `json:"totalProjects"`
	Categories    int `json:"categories"`
	Technologies  int `json:"technologies"`
}

// ComputeStats counts projects, distinct categories and distinct
// tech-stack entries.
func ComputeStats(projects []domain.Project) Stats {
	categories := make(map[string]struct{})
	tech := make(map[string]struct{})
	for _, p := range projects {
		categories[p.Category] = struct{}{}
		for _, t := range p.TechStack {
			tech[t] = struct{}{}
		}
	}
	return Stats{
		TotalProjects: len(projects),
		Categories:    len(categories),
		Technologies:  len(tech),
	}
}

// Dashboard is the admin project list plus its counters.
type Dashboard struct {
	Projects *List[domain.Project]
}

func NewDashboard(src ProjectSource, log *zap.Logger) *Dashboard {
	return &Dashboard{Projects: NewAdminProjects(src, log)}
}

func (d *Dashboard) Load(ctx context.Context) Stats {
	d.Projects.Load(ctx)
	return ComputeStats(d.Projects.Items())
}
