// Package integrity implements content hashing for loaded assets. Assets are
// treated as opaque byte streams; the digest is the only derived information
// and no format-specific parsing takes place.
package integrity

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zeebo/blake3"
)

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, context.Canceled
	default:
		return cr.reader.Read(p)
	}
}

// Sum returns the hexadecimal BLAKE3 digest of everything readable from the
// given reader. The read is context-aware, a mid-flight cancellation
// surfaces as [context.Canceled].
func Sum(ctx context.Context, reader io.Reader) (string, error) {
	hasher := blake3.New()

	ctxReader := &contextReader{
		ctx:    ctx,
		reader: reader,
	}

	if _, err := io.Copy(hasher, ctxReader); err != nil {
		if errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("(integrity) hashing canceled: %w", err)
		}

		return "", fmt.Errorf("(integrity) failed to hash: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Verify reports whether the content readable from the given reader matches
// the expected hexadecimal BLAKE3 digest (compared case-insensitively).
func Verify(ctx context.Context, reader io.Reader, expected string) (bool, error) {
	digest, err := Sum(ctx, reader)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(digest, expected), nil
}
