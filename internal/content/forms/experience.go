package forms

import (
	"context"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
)

type ExperienceRepository interface {
	Get(ctx context.Context, id string) (*domain.Experience, error)
	Create(ctx context.Context, e domain.Experience) (string, error)
	Update(ctx context.Context, e domain.Experience) error
}

// ExperienceInput holds the editable fields; technologies stays
// comma-delimited until submit.
type ExperienceInput struct {
	Role         string `json:"role" form:"role" yaml:"role" validate:"required"`
	Company      string `json:"company" form:"company" yaml:"company" validate:"required"`
	Website      string `json:"website" form:"website" yaml:"website"`
	Period       string `json:"period" form:"period" yaml:"period" validate:"required"`
	Description  string `json:"description" form:"description" yaml:"description" validate:"required"`
	Technologies string `json:"technologies" form:"technologies" yaml:"technologies"`
}

func ExperienceInputFrom(e domain.Experience) ExperienceInput {
	return ExperienceInput{
		Role:         e.Role,
		Company:      e.Company,
		Website:      e.Website,
		Period:       e.Period,
		Description:  e.Description,
		Technologies: domain.JoinDelimited(e.Technologies, domain.CommaDelimiter),
	}
}

func (in ExperienceInput) Experience(id, createdAt string) domain.Experience {
	return domain.Experience{
		ID:           id,
		Role:         in.Role,
		Company:      in.Company,
		Website:      in.Website,
		Period:       in.Period,
		Description:  in.Description,
		Technologies: domain.SplitComma(in.Technologies),
		CreatedAt:    createdAt,
	}
}

// ExperienceForm drives one create or edit of an experience.
type ExperienceForm struct {
	repo ExperienceRepository
	log  *zap.Logger

	state     State
	id        string
	createdAt string
	input     ExperienceInput
	err       error
}

func NewExperienceForm(repo ExperienceRepository, log *zap.Logger) *ExperienceForm {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExperienceForm{repo: repo, log: log, state: StateEditing}
}

func (f *ExperienceForm) Load(ctx context.Context, id string) error {
	f.state = StateEditing
	f.id = ""
	f.createdAt = ""
	f.input = ExperienceInput{}
	f.err = nil
	if id == "" {
		return nil
	}

	e, err := f.repo.Get(ctx, id)
	if err != nil {
		f.err = err
		return err
	}
	f.id = e.ID
	f.createdAt = e.CreatedAt
	f.input = ExperienceInputFrom(*e)
	return nil
}

func (f *ExperienceForm) Set(in ExperienceInput) { f.input = in }

func (f *ExperienceForm) Input() ExperienceInput { return f.input }
func (f *ExperienceForm) ID() string             { return f.id }
func (f *ExperienceForm) State() State           { return f.state }
func (f *ExperienceForm) Err() error             { return f.err }

func (f *ExperienceForm) Submit(ctx context.Context) (*Result, error) {
	if f.state != StateEditing {
		return nil, ErrNotEditing
	}
	if err := checkRequired(f.input); err != nil {
		f.err = err
		return nil, err
	}

	f.state = StateSubmitting
	res, err := f.submit(ctx)
	if err != nil {
		f.state = StateEditing
		f.err = err
		f.log.Error("experience save failed", zap.String("id", f.id), zap.Error(err))
		return nil, err
	}
	f.state = StateNavigatedAway
	f.err = nil
	return res, nil
}

func (f *ExperienceForm) submit(ctx context.Context) (*Result, error) {
	e := f.input.Experience(f.id, f.createdAt)
	if f.id != "" {
		if err := f.repo.Update(ctx, e); err != nil {
			return nil, err
		}
		return &Result{ID: f.id, Redirect: RouteExperiences, Notice: "Experience updated successfully!"}, nil
	}

	id, err := f.repo.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	f.id = id
	return &Result{ID: id, Created: true, Redirect: RouteExperiences, Notice: "Experience added successfully!"}, nil
}

// ExperienceSaveErrorNotice is the text shown when an experience submit fails.
func ExperienceSaveErrorNotice(err error) string {
	return "Error saving experience: " + err.Error()
}
