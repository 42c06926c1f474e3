// Package ui implements an interactive asset browser using [tea]. The
// browser navigates directories exclusively through the asset source
// capability interface, the same surface the host's resolution pipeline
// uses.
package ui

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wrenfell/filesource/internal/filesystem"
	"github.com/wrenfell/filesource/internal/schema"
)

type assetProvider interface {
	IsDirectory(ctx context.Context, path string) (bool, error)
	ReadDirectory(ctx context.Context, path string) (*schema.Listing, error)
}

type statProvider interface {
	GetMetadata(path string) (*filesystem.Metadata, error)
	GetDiskUsage(path string) (filesystem.DiskStats, error)
}

// Handler is the principal implementation of a user interface [Handler].
type Handler struct {
	program *tea.Program

	LogWriter *TeaLogWriter

	Ready  atomic.Bool
	Failed atomic.Bool
}

// NewHandler returns a pointer to a new user interface [Handler], browsing
// from the given root path.
func NewHandler(ctx context.Context, cancel context.CancelFunc, assets assetProvider, stats statProvider, root string) *Handler {
	handler := &Handler{}

	model := NewTeaModel(handler, assets, stats, root, cancel)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the command-line user interface (the [tea.Program]).
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}
