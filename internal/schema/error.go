package schema

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel error matched by [errors.Is] when an asset
// source could not resolve a path. It signals the host that falling back to
// another registered source is a reasonable course of action. Any other error
// returned by a source is an OS-level failure and not retried.
var ErrNotFound = errors.New("asset not found")

// NotFoundError is the typed error an asset source returns for a path it
// could not resolve. It carries the offending path, so the host can log and
// fall back meaningfully. It matches [ErrNotFound] with [errors.Is].
type NotFoundError struct {
	Path string
}

// Error implements the error interface for a [NotFoundError].
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("asset not found: %s", e.Path)
}

// Is establishes [ErrNotFound] as the match target of a [NotFoundError].
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
