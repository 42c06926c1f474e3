package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrenfell/filesource/internal/filesource"
	"github.com/wrenfell/filesource/internal/filesystem"
	"github.com/wrenfell/filesource/internal/schema"
)

// TestLoadDirectory_Success tests that a directory load produces a sorted,
// directories-first listing message.
func TestLoadDirectory_Success(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zebra.txt"), []byte("z"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha.txt"), []byte("aa"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	assets := filesource.NewHandler(&schema.OS{})
	stats := filesystem.NewHandler(&schema.OS{}, &schema.Unix{})

	msg := loadDirectory(assets, stats, dir)()

	loaded, ok := msg.(dirLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, dir, loaded.path)

	require.Len(t, loaded.entries, 3)
	assert.Equal(t, "nested", loaded.entries[0].Name)
	assert.True(t, loaded.entries[0].IsDir)
	assert.Equal(t, "alpha.txt", loaded.entries[1].Name)
	assert.Equal(t, int64(2), loaded.entries[1].Size)
	assert.Equal(t, "zebra.txt", loaded.entries[2].Name)
}

// TestLoadDirectory_Error tests that a non-directory path produces an error
// message.
func TestLoadDirectory_Error(t *testing.T) {
	t.Parallel()

	assets := filesource.NewHandler(&schema.OS{})
	stats := filesystem.NewHandler(&schema.OS{}, &schema.Unix{})

	missing := filepath.Join(t.TempDir(), "missing")

	msg := loadDirectory(assets, stats, missing)()

	failed, ok := msg.(dirErrorMsg)
	require.True(t, ok)
	assert.Equal(t, missing, failed.path)
	require.Error(t, failed.err)
}

// TestModelUpdate_Navigation tests cursor movement and listing refreshes.
func TestModelUpdate_Navigation(t *testing.T) {
	t.Parallel()

	model := TeaModel{
		entries: []Entry{
			{Name: "a", IsDir: true},
			{Name: "b"},
		},
	}

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(TeaModel)
	assert.Equal(t, 1, model.cursor)

	// Cursor stays within bounds at the end of the listing.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(TeaModel)
	assert.Equal(t, 1, model.cursor)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model = updated.(TeaModel)
	assert.Equal(t, 0, model.cursor)

	updated, _ = model.Update(dirLoadedMsg{
		path:    "/assets",
		entries: []Entry{{Name: "c"}},
	})
	model = updated.(TeaModel)
	assert.Equal(t, "/assets", model.cwd)
	assert.Equal(t, 0, model.cursor)
	require.Len(t, model.entries, 1)

	updated, _ = model.Update(dirErrorMsg{path: "/gone", err: os.ErrNotExist})
	model = updated.(TeaModel)
	assert.Contains(t, model.status, "/gone")
}
