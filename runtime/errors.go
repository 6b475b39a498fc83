package runtime

import "errors"

var (
	// ErrNotMounted is returned when no component is mounted under a key.
	ErrNotMounted = errors.New("component not mounted")
	// ErrAlreadyMounted is returned when a key is already taken.
	ErrAlreadyMounted = errors.New("component already mounted")
	// ErrNilComponent is returned when a factory yields nil.
	ErrNilComponent = errors.New("factory returned nil component")
)
