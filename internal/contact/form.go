package contact

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// StatusHold is how long success and error outcomes stay visible.
const StatusHold = 5 * time.Second

type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Services lists the accepted values of Message.Service.
var Services = []string{"devops", "cloud", "consulting", "other"}

// Message is a visitor's contact request.
type Message struct {
	Name    string `json:"user_name" form:"user_name" validate:"required"`
	Email   string `json:"user_email" form:"user_email" validate:"required,email"`
	Service string `json:"service" form:"service" validate:"omitempty,oneof=devops cloud consulting other"`
	Message string `json:"message" form:"message" validate:"required"`
}

// InvalidMessageError names the fields that failed validation.
type InvalidMessageError struct {
	Fields []string
}

func (e *InvalidMessageError) Error() string {
	return fmt.Sprintf("invalid contact fields: %s", strings.Join(e.Fields, ", "))
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}()

// Validate checks the required fields and the email format.
func (m Message) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	sort.Strings(fields)
	return &InvalidMessageError{Fields: fields}
}

// Form tracks one contact form: its input and the transient outcome of
// the last send. The outcome reverts to idle StatusHold after it settled.
type Form struct {
	sender Sender
	now    func() time.Time
	hold   time.Duration
	log    *zap.Logger

	mu        sync.Mutex
	input     Message
	status    Status
	settledAt time.Time
	lastErr   error
}

func NewForm(sender Sender, log *zap.Logger) *Form {
	if log == nil {
		log = zap.NewNop()
	}
	return &Form{sender: sender, now: time.Now, hold: StatusHold, log: log, status: StatusIdle}
}

// WithClock replaces the clock used for the status hold.
func (f *Form) WithClock(now func() time.Time) *Form {
	f.now = now
	return f
}

func (f *Form) Set(m Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input = m
}

func (f *Form) Input() Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// Submit validates and sends the current input. Success clears the input;
// failure keeps it for another attempt.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.currentStatus() == StatusSending {
		f.mu.Unlock()
		return errors.New("a message is already being sent")
	}
	m := f.input
	if err := m.Validate(); err != nil {
		f.mu.Unlock()
		return err
	}
	f.status = StatusSending
	f.mu.Unlock()

	err := f.sender.Send(ctx, m)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.settledAt = f.now()
	f.lastErr = err
	if err != nil {
		f.status = StatusError
		f.log.Error("contact message failed", zap.String("email", m.Email), zap.Error(err))
		return err
	}
	f.status = StatusSuccess
	f.input = Message{}
	f.log.Info("contact message sent", zap.String("service", m.Service))
	return nil
}

// Status is the outcome to display right now.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentStatus()
}

// ResetAt is when a settled outcome returns to idle; zero while idle or
// sending.
func (f *Form) ResetAt() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.currentStatus() {
	case StatusSuccess, StatusError:
		return f.settledAt.Add(f.hold)
	default:
		return time.Time{}
	}
}

// Label is the submit button text for the current status.
func (f *Form) Label() string {
	switch f.Status() {
	case StatusSending:
		return "Sending..."
	case StatusSuccess:
		return "Message Sent!"
	case StatusError:
		return "Failed to Send"
	default:
		return "Send Message"
	}
}

// caller holds f.mu
func (f *Form) currentStatus() Status {
	switch f.status {
	case StatusSuccess, StatusError:
		if !f.now().Before(f.settledAt.Add(f.hold)) {
			return StatusIdle
		}
	}
	return f.status
}
