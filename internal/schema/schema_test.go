package schema_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrenfell/filesource/internal/schema"
)

// TestListing_OneShot tests that a listing drains exactly once.
func TestListing_OneShot(t *testing.T) {
	t.Parallel()

	listing := schema.NewListing([]string{"a", "b", "c"})

	assert.Equal(t, 3, listing.Remaining())

	var paths []string
	for {
		path, ok := listing.Next()
		if !ok {
			break
		}
		paths = append(paths, path)
	}

	assert.Equal(t, []string{"a", "b", "c"}, paths)
	assert.Equal(t, 0, listing.Remaining())

	_, ok := listing.Next()
	assert.False(t, ok)
}

// TestListing_Empty tests a listing over no paths.
func TestListing_Empty(t *testing.T) {
	t.Parallel()

	listing := schema.NewListing(nil)

	assert.Equal(t, 0, listing.Remaining())

	path, ok := listing.Next()
	assert.False(t, ok)
	assert.Empty(t, path)
}

// TestNotFoundError_Matching tests the typed error's sentinel matching and
// path extraction.
func TestNotFoundError_Matching(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("(wrapped) %w", &schema.NotFoundError{Path: "assets/a.png"})

	require.ErrorIs(t, err, schema.ErrNotFound)

	var notFound *schema.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "assets/a.png", notFound.Path)
	assert.Contains(t, notFound.Error(), "assets/a.png")

	assert.NotErrorIs(t, errors.New("other"), schema.ErrNotFound)
}
