package filesystem

import (
	"fmt"
	"io/fs"
	"time"
)

// Metadata holds the filesystem metadata of a single path.
type Metadata struct {
	Size        int64
	Permissions fs.FileMode
	ModifiedAt  time.Time
	IsDir       bool
}

// GetMetadata returns a pointer to the [Metadata] of the given path.
func (f *Handler) GetMetadata(path string) (*Metadata, error) {
	info, err := f.osOps.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("(fs-meta) failed to stat: %w", err)
	}

	metadata := &Metadata{
		Size:        info.Size(),
		Permissions: info.Mode().Perm(),
		ModifiedAt:  info.ModTime(),
		IsDir:       info.IsDir(),
	}

	return metadata, nil
}
