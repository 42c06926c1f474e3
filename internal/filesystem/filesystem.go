// Package filesystem implements read-only filesystem introspection for the
// application: per-file metadata and per-mount disk usage. It backs the stat
// surfaces of the CLI and the browser UI.
package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Statfs(path string, buf *unix.Statfs_t) error
}

// Handler is the principal implementation of a filesystem introspection
// [Handler].
type Handler struct {
	osOps   osProvider
	unixOps unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osOps osProvider, unixOps unixProvider) *Handler {
	return &Handler{
		osOps:   osOps,
		unixOps: unixOps,
	}
}
