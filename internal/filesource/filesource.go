// Package filesource implements the file asset source. It resolves logical
// paths, relative to the process working directory or absolute, directly
// against the local filesystem and maps OS error conditions to the error
// vocabulary of [schema]. Blocking reads are moved off the calling goroutine
// through [offload], so the host's resolution pipeline is never stalled by
// filesystem latency.
package filesource

import (
	"os"
)

const (
	// Scheme is the name the file source registers under; the host routes
	// any "file://<path>" asset URI to this source.
	Scheme = "file"

	// MetaSentinelPath is the placeholder path reported inside a
	// [schema.NotFoundError] when no metadata path could be derived, because
	// the content path has no extension.
	MetaSentinelPath = "source path has no extension"
)

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
	ReadFile(name string) ([]byte, error)
}

// Handler is the principal implementation of the file asset source. It is
// stateless; each operation is independent and request-scoped, so a fresh
// [Handler] per request is equivalent to a shared one.
type Handler struct {
	osOps osProvider
}

// NewHandler returns a pointer to a new file source [Handler].
func NewHandler(osOps osProvider) *Handler {
	return &Handler{
		osOps: osOps,
	}
}
