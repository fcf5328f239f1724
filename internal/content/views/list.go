package views

import (
	"context"

	"go.uber.org/zap"
)

// Status of a list view.
type Status string

const (
	StatusLoading   Status = "loading"
	StatusPopulated Status = "populated"
	StatusEmpty     Status = "empty"
	StatusError     Status = "error"
)

// NoticeLevel classifies a Notice.
type NoticeLevel string

const (
	NoticeSuccess   NoticeLevel = "success"
	NoticeError     NoticeLevel = "error"
	NoticeCancelled NoticeLevel = "cancelled"
)

// Notice replaces the confirm/alert dialogs of a list.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
	Err     error       `json:"-"`
}

// ListSource supplies and removes the items of a list.
type ListSource[T any] interface {
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id string) error
}

// Messages are the user-facing texts of one list.
type Messages struct {
	Noun         string // "project"
	Empty        string
	FetchFailure string
}

func (m Messages) confirmPrompt() string {
	return "Are you sure you want to delete this " + m.Noun + "?"
}

func (m Messages) deleted() string {
	return capitalize(m.Noun) + " deleted successfully!"
}

func (m Messages) deleteFailed(err error) string {
	return "Failed to delete " + m.Noun + ". Error: " + err.Error()
}

// List is one mounted list view. Public lists report fetch failures as
// StatusError; admin lists collapse them into StatusEmpty.
type List[T any] struct {
	source ListSource[T]
	idOf   func(T) string
	msgs   Messages
	admin  bool
	log    *zap.Logger

	status Status
	items  []T
	err    error
}

func NewList[T any](source ListSource[T], idOf func(T) string, msgs Messages, admin bool, log *zap.Logger) *List[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &List[T]{
		source: source,
		idOf:   idOf,
		msgs:   msgs,
		admin:  admin,
		log:    log,
		status: StatusLoading,
		items:  []T{},
	}
}

// Load fetches the whole collection and settles the status.
func (l *List[T]) Load(ctx context.Context) Status {
	l.status = StatusLoading
	l.err = nil

	items, err := l.source.List(ctx)
	if err != nil {
		l.log.Error("list fetch failed", zap.String("noun", l.msgs.Noun), zap.Error(err))
		l.items = []T{}
		if l.admin {
			l.status = StatusEmpty
		} else {
			l.err = err
			l.status = StatusError
		}
		return l.status
	}

	l.items = items
	if l.items == nil {
		l.items = []T{}
	}
	l.settle()
	return l.status
}

// Delete removes id once confirmed. On success the entry is dropped from
// the loaded items without fetching again; on failure the items are left
// as they were.
func (l *List[T]) Delete(ctx context.Context, id string, confirmed bool) Notice {
	if !confirmed {
		return Notice{Level: NoticeCancelled, Message: l.msgs.confirmPrompt()}
	}

	if err := l.source.Delete(ctx, id); err != nil {
		l.log.Error("delete failed", zap.String("noun", l.msgs.Noun), zap.String("id", id), zap.Error(err))
		return Notice{Level: NoticeError, Message: l.msgs.deleteFailed(err), Err: err}
	}

	kept := l.items[:0:0]
	for _, item := range l.items {
		if l.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	l.items = kept
	if l.status == StatusPopulated || l.status == StatusEmpty {
		l.settle()
	}
	return Notice{Level: NoticeSuccess, Message: l.msgs.deleted()}
}

func (l *List[T]) Status() Status { return l.status }
func (l *List[T]) Items() []T     { return l.items }
func (l *List[T]) Err() error     { return l.err }

// Message is the text shown for the empty and error states.
func (l *List[T]) Message() string {
	switch l.status {
	case StatusEmpty:
		return l.msgs.Empty
	case StatusError:
		return l.msgs.FetchFailure
	default:
		return ""
	}
}

func (l *List[T]) settle() {
	if len(l.items) == 0 {
		l.status = StatusEmpty
	} else {
		l.status = StatusPopulated
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
