// Package pathing implements the pure path manipulation functions of the
// application. It derives sidecar metadata paths from content paths and
// splits asset URIs into their scheme and path components.
package pathing

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// MetaSuffix is the fixed suffix appended to a content path's extension
	// when deriving the sidecar metadata path.
	MetaSuffix = ".meta"

	// SchemeSeparator separates the scheme from the path in an asset URI.
	SchemeSeparator = "://"
)

// MetaPath derives the sidecar metadata path for a given content path, by
// taking the path's extension and appending [MetaSuffix] to it. For example,
// "image.png" derives to "image.png.meta". Paths without an extension fail
// with [ErrNoExtension], as no metadata path can be derived for them.
func MetaPath(path string) (string, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)

	// Dotfiles such as ".env" have no extension, their name is the stem.
	if ext == "" || ext == base || strings.TrimLeft(base, ".") == "" {
		return "", fmt.Errorf("(pathing-meta) %w: %s", ErrNoExtension, path)
	}

	return path + MetaSuffix, nil
}

// SplitURI splits an asset URI of the form "scheme://path" into its scheme
// and path components. The path component may be relative (to the process
// working directory) or absolute. URIs without a scheme tag fail with
// [ErrNoScheme], URIs without a path component fail with [ErrEmptyPath].
func SplitURI(uri string) (scheme string, path string, err error) {
	scheme, path, found := strings.Cut(uri, SchemeSeparator)
	if !found || scheme == "" {
		return "", "", fmt.Errorf("(pathing-uri) %w: %s", ErrNoScheme, uri)
	}

	if path == "" {
		return "", "", fmt.Errorf("(pathing-uri) %w: %s", ErrEmptyPath, uri)
	}

	return scheme, path, nil
}
