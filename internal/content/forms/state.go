package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
)

// State of a form instance.
type State string

const (
	StateEditing       State = "editing"
	StateSubmitting    State = "submitting"
	StateNavigatedAway State = "navigated-away"
)

// Routes the admin is sent to after a successful submit.
const (
	RouteProjects    = "/admin/dashboard"
	RouteExperiences = "/admin/experiences"
)

var ErrNotEditing = errors.New("form is not in editing state")

// ValidationError lists the inputs that were left empty or hold a value
// outside their allowed set.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Result is what a successful submit tells the caller.
type Result struct {
	ID       string `json:"id"`
	Created  bool   `json:"created"`
	Redirect string `json:"redirect"`
	Notice   string `json:"notice"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.IsCategory(fl.Field().String())
	})
	return v
}

// checkRequired validates in and merges extraMissing into the reported
// fields.
func checkRequired(in interface{}, extraMissing ...string) error {
	missing := append([]string(nil), extraMissing...)
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &ValidationError{Fields: missing}
}
