package filesystem

import "errors"

var (
	// ErrInvalidDiskStats is an error that occurs when a statfs call reports
	// usage statistics that are impossible to handle (e.g. a negative free
	// space or a total size of zero).
	ErrInvalidDiskStats = errors.New("invalid disk statistics")
)
