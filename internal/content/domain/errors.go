package domain

import "errors"

var (
	// ErrNotFound is returned when a document id is absent from its collection.
	ErrNotFound = errors.New("document not found")
)
