package config

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("configuration not found")
	ErrMalformed  = errors.New("malformed configuration")
	ErrKeyMissing = errors.New("configuration key missing")
)

// Error describes a configuration failure. Kind is one of ErrNotFound,
// ErrMalformed or ErrKeyMissing, and Path names the file or the key path
// that failed.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
