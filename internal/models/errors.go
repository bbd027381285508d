package models

import "errors"

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the actor may not perform an operation.
	ErrForbidden = errors.New("permission denied")
	// ErrConflict is returned when a write collides with existing rows: a
	// duplicate name, or a delete of something still referenced.
	ErrConflict = errors.New("conflict")
	// ErrNotTemplate is returned when cloning a program that is not a template.
	ErrNotTemplate = errors.New("program is not a template")
)
