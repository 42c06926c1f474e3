// Package schema provides the principal schematics for all other packages. It
// defines the asset source capability interface, shared structures and
// provides implementations for handling (Unix-based) operating system
// syscalls. The package serves as a foundational layer for asset source
// interactions throughout the codebase.
package schema

import (
	"context"
	"io"
	"sync"
)

// Reader is the capability interface a pluggable asset source implements.
// The host's resolution pipeline invokes it for any URI whose scheme matches
// the name the source was registered under.
type Reader interface {
	// Read returns the raw bytes of the asset at the given path.
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// ReadMeta returns the raw bytes of the asset's sidecar metadata file.
	ReadMeta(ctx context.Context, path string) (io.ReadCloser, error)

	// IsDirectory reports whether a directory exists at the given path.
	IsDirectory(ctx context.Context, path string) (bool, error)

	// ReadDirectory returns a [Listing] of the directory's child paths.
	ReadDirectory(ctx context.Context, path string) (*Listing, error)
}

// Listing is a finite, one-shot sequence of child paths produced by a
// directory enumeration. It is materialized eagerly and consumed through
// [Listing.Next]; a drained [Listing] cannot be restarted.
type Listing struct {
	sync.Mutex
	head  int
	paths []string
}

// NewListing returns a pointer to a new [Listing] over the given paths. The
// order of the paths is the order of the underlying OS enumeration and not
// otherwise guaranteed.
func NewListing(paths []string) *Listing {
	return &Listing{
		paths: paths,
	}
}

// Next returns the next path of the [Listing] and advances its head. The
// second return value is false once the [Listing] is drained.
func (l *Listing) Next() (string, bool) {
	l.Lock()
	defer l.Unlock()

	if l.head >= len(l.paths) {
		return "", false
	}

	path := l.paths[l.head]
	l.head++

	return path, true
}

// Remaining returns how many paths are left to consume from the [Listing].
func (l *Listing) Remaining() int {
	l.Lock()
	defer l.Unlock()

	return len(l.paths) - l.head
}
