package forms

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/assets"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
)

// ProjectRepository is what the project form persists through.
type ProjectRepository interface {
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p domain.Project) (string, error)
	Update(ctx context.Context, p domain.Project) error
}

// ProjectInput holds the editable fields as typed. keyFeatures is
// newline-delimited and techStack comma-delimited until submit.
type ProjectInput struct {
	Title       string `json:"title" form:"title" yaml:"title" validate:"required"`
	Category    string `json:"category" form:"category" yaml:"category" validate:"required,category"`
	Description string `json:"description" form:"description" yaml:"description" validate:"required"`
	Overview    string `json:"overview" form:"overview" yaml:"overview"`
	KeyFeatures string `json:"keyFeatures" form:"keyFeatures" yaml:"keyFeatures"`
	TechStack   string `json:"techStack" form:"techStack" yaml:"techStack"`
	Image       string `json:"image" form:"image" yaml:"image"`
	GithubLink  string `json:"githubLink" form:"githubLink" yaml:"githubLink"`
	LiveLink    string `json:"liveLink" form:"liveLink" yaml:"liveLink"`
}

// ProjectInputFrom renders a stored project back into editable text.
func ProjectInputFrom(p domain.Project) ProjectInput {
	return ProjectInput{
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		Overview:    p.Overview,
		KeyFeatures: domain.JoinDelimited(p.KeyFeatures, domain.NewlineDelimiter),
		TechStack:   domain.JoinDelimited(p.TechStack, domain.CommaDelimiter),
		Image:       p.Image,
		GithubLink:  p.GithubLink,
		LiveLink:    p.LiveLink,
	}
}

// Project normalizes the input into a persistable project.
func (in ProjectInput) Project(id string) domain.Project {
	return domain.Project{
		ID:          id,
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Overview:    in.Overview,
		KeyFeatures: domain.SplitLines(in.KeyFeatures),
		TechStack:   domain.SplitComma(in.TechStack),
		Image:       in.Image,
		GithubLink:  in.GithubLink,
		LiveLink:    in.LiveLink,
	}
}

// ProjectForm drives one create or edit of a project.
type ProjectForm struct {
	repo     ProjectRepository
	uploader assets.Uploader
	log      *zap.Logger

	state State
	id    string
	input ProjectInput
	image *assets.File
	err   error
}

func NewProjectForm(repo ProjectRepository, uploader assets.Uploader, log *zap.Logger) *ProjectForm {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProjectForm{repo: repo, uploader: uploader, log: log, state: StateEditing}
}

// Load starts the form empty when id is "" and from the stored project
// otherwise.
func (f *ProjectForm) Load(ctx context.Context, id string) error {
	f.state = StateEditing
	f.id = ""
	f.input = ProjectInput{}
	f.image = nil
	f.err = nil
	if id == "" {
		return nil
	}

	p, err := f.repo.Get(ctx, id)
	if err != nil {
		f.err = err
		return err
	}
	f.id = p.ID
	f.input = ProjectInputFrom(*p)
	return nil
}

func (f *ProjectForm) Set(in ProjectInput) { f.input = in }

// AttachImage queues a file to upload on submit. Its URL replaces image.
func (f *ProjectForm) AttachImage(file *assets.File) { f.image = file }

func (f *ProjectForm) Input() ProjectInput { return f.input }
func (f *ProjectForm) ID() string          { return f.id }
func (f *ProjectForm) State() State        { return f.state }
func (f *ProjectForm) Err() error          { return f.err }

// Submit creates when the form was loaded without an id and overwrites
// the loaded project otherwise.
func (f *ProjectForm) Submit(ctx context.Context) (*Result, error) {
	if f.state != StateEditing {
		return nil, ErrNotEditing
	}

	var extra []string
	if f.input.Image == "" && f.image == nil {
		extra = append(extra, "image")
	}
	if err := checkRequired(f.input, extra...); err != nil {
		f.err = err
		return nil, err
	}

	f.state = StateSubmitting
	res, err := f.submit(ctx)
	if err != nil {
		f.state = StateEditing
		f.err = err
		f.log.Error("project save failed", zap.String("id", f.id), zap.Error(err))
		return nil, err
	}
	f.state = StateNavigatedAway
	f.err = nil
	return res, nil
}

func (f *ProjectForm) submit(ctx context.Context) (*Result, error) {
	if f.image != nil {
		if f.uploader == nil {
			return nil, fmt.Errorf("image upload is not configured")
		}
		url, err := f.uploader.Upload(ctx, *f.image)
		if err != nil {
			return nil, err
		}
		f.input.Image = url
		f.image = nil
	}

	p := f.input.Project(f.id)
	if f.id != "" {
		if err := f.repo.Update(ctx, p); err != nil {
			return nil, err
		}
		return &Result{ID: f.id, Redirect: RouteProjects, Notice: "Project updated successfully!"}, nil
	}

	id, err := f.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	f.id = id
	return &Result{ID: id, Created: true, Redirect: RouteProjects, Notice: "Project added successfully!"}, nil
}

// ProjectSaveErrorNotice is the text shown when a project submit fails.
func ProjectSaveErrorNotice(err error) string {
	return "Failed to save project. Error: " + err.Error()
}
