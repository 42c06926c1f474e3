package filesource

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/wrenfell/filesource/internal/schema"
)

// IsDirectory reports whether a filesystem entry of directory type exists at
// the given path. It never fails; missing and non-directory paths both
// report false. The context is part of the signature for interface
// uniformity only, the stat check does not suspend meaningfully.
func (f *Handler) IsDirectory(_ context.Context, path string) (bool, error) {
	info, err := f.osOps.Stat(path)
	if err != nil {
		return false, nil
	}

	return info.IsDir(), nil
}

// ReadDirectory enumerates the child paths of the directory at the given
// path into a one-shot [schema.Listing]. A path that is not a directory
// fails with a [schema.NotFoundError]. Entries whose individual retrieval
// fails are skipped and discarded; a partial enumeration is returned as-is,
// with the skipped remainder logged at debug level.
func (f *Handler) ReadDirectory(ctx context.Context, path string) (*schema.Listing, error) {
	isDir, _ := f.IsDirectory(ctx, path)
	if !isDir {
		return nil, &schema.NotFoundError{Path: path}
	}

	entries, err := f.osOps.ReadDir(path)
	if err != nil && len(entries) == 0 {
		return nil, fmt.Errorf("(filesource-readdir) %w", err)
	}
	if err != nil {
		slog.Debug("Partial directory enumeration, skipping failed entries.",
			"err", err,
			"path", path,
		)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(path, entry.Name()))
	}

	return schema.NewListing(paths), nil
}
