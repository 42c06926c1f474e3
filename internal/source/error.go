package source

import "errors"

var (
	// ErrSchemeExists is an error that occurs when a scheme name is
	// registered a second time.
	ErrSchemeExists = errors.New("scheme is already registered")

	// ErrUnknownScheme is an error that occurs when an asset URI names a
	// scheme no source is registered under.
	ErrUnknownScheme = errors.New("no source registered for scheme")
)
