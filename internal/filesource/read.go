package filesource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/wrenfell/filesource/internal/offload"
	"github.com/wrenfell/filesource/internal/pathing"
	"github.com/wrenfell/filesource/internal/schema"
)

type readResult struct {
	data []byte
	err  error
}

// Read returns the raw bytes of the file at the given path. A path that does
// not exist at call time fails with a [schema.NotFoundError], so the host can
// fall back to other sources without paying for an offloaded read.
func (f *Handler) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	if _, err := f.osOps.Stat(path); err != nil {
		return nil, &schema.NotFoundError{Path: path}
	}

	return f.fileGet(ctx, path)
}

// ReadMeta returns the raw bytes of the sidecar metadata file derived from
// the given content path (see [pathing.MetaPath]). A content path without an
// extension fails with a [schema.NotFoundError] naming [MetaSentinelPath],
// never with an OS-level error; a missing derived path fails with a
// [schema.NotFoundError] naming the derived path.
func (f *Handler) ReadMeta(ctx context.Context, path string) (io.ReadCloser, error) {
	metaPath, err := pathing.MetaPath(path)
	if err != nil {
		return nil, &schema.NotFoundError{Path: MetaSentinelPath}
	}

	if _, err := f.osOps.Stat(metaPath); err != nil {
		return nil, &schema.NotFoundError{Path: metaPath}
	}

	return f.fileGet(ctx, metaPath)
}

// fileGet offloads a blocking whole-file read and awaits its result. The
// file can vanish between the caller's existence check and the read itself;
// the read's own error is the authoritative outcome and is remapped to a
// [schema.NotFoundError], making the earlier check a fast path only.
func (f *Handler) fileGet(ctx context.Context, path string) (io.ReadCloser, error) {
	task := offload.Run(func() readResult {
		data, err := f.osOps.ReadFile(path)

		return readResult{data: data, err: err}
	})

	result, err := task.Await(ctx)
	if err != nil {
		return nil, err
	}

	if result.err != nil {
		if errors.Is(result.err, fs.ErrNotExist) {
			return nil, &schema.NotFoundError{Path: path}
		}

		return nil, fmt.Errorf("(filesource-read) %w", result.err)
	}

	return io.NopCloser(bytes.NewReader(result.data)), nil
}
