package pathing

import "errors"

var (
	// ErrNoExtension is an error that occurs when a metadata path should be
	// derived from a content path that has no extension.
	ErrNoExtension = errors.New("path has no extension")

	// ErrNoScheme is an error that occurs when an asset URI carries no
	// scheme tag.
	ErrNoScheme = errors.New("uri has no scheme")

	// ErrEmptyPath is an error that occurs when an asset URI carries no path
	// component after the scheme tag.
	ErrEmptyPath = errors.New("uri has no path")
)
