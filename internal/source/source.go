// Package source implements the pluggable asset source registry. Sources are
// registered under a scheme name together with a builder function; the host
// resolves "scheme://path" asset URIs by building the matching source and
// dispatching the requested operation to it.
package source

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/wrenfell/filesource/internal/pathing"
	"github.com/wrenfell/filesource/internal/schema"
)

// Builder constructs a fresh instance of an asset source. Sources are
// stateless, so building one per request is equivalent to sharing one
// instance across requests.
type Builder func() schema.Reader

// Manager is the principal implementation of the asset source registry.
type Manager struct {
	sync.RWMutex
	builders map[string]Builder
}

// NewManager returns a pointer to a new source [Manager].
func NewManager() *Manager {
	return &Manager{
		builders: make(map[string]Builder),
	}
}

// Register adds a source [Builder] under the given scheme name. Registering
// a scheme twice fails with [ErrSchemeExists].
func (m *Manager) Register(scheme string, builder Builder) error {
	m.Lock()
	defer m.Unlock()

	if _, exists := m.builders[scheme]; exists {
		return fmt.Errorf("(source) %w: %s", ErrSchemeExists, scheme)
	}

	m.builders[scheme] = builder

	return nil
}

// Schemes returns the sorted scheme names of all registered sources.
func (m *Manager) Schemes() []string {
	m.RLock()
	defer m.RUnlock()

	schemes := make([]string, 0, len(m.builders))
	for scheme := range m.builders {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)

	return schemes
}

// Build constructs the source registered under the given scheme name. An
// unregistered scheme fails with [ErrUnknownScheme]; that is a routing
// failure, distinct from a source's [schema.ErrNotFound].
func (m *Manager) Build(scheme string) (schema.Reader, error) { //nolint:ireturn
	m.RLock()
	defer m.RUnlock()

	builder, exists := m.builders[scheme]
	if !exists {
		return nil, fmt.Errorf("(source) %w: %s", ErrUnknownScheme, scheme)
	}

	return builder(), nil
}

// Lookup splits the given asset URI and constructs the source its scheme is
// registered under, returning the source together with the URI's path
// component.
func (m *Manager) Lookup(uri string) (schema.Reader, string, error) { //nolint:ireturn
	scheme, path, err := pathing.SplitURI(uri)
	if err != nil {
		return nil, "", err
	}

	reader, err := m.Build(scheme)
	if err != nil {
		return nil, "", err
	}

	return reader, path, nil
}

// Resolve reads the asset identified by the given URI through the source its
// scheme is registered under. A [schema.ErrNotFound] failure means the host
// may try another resolution strategy; any other failure is surfaced as-is.
func (m *Manager) Resolve(ctx context.Context, uri string) (io.ReadCloser, error) {
	reader, path, err := m.Lookup(uri)
	if err != nil {
		return nil, err
	}

	return reader.Read(ctx, path)
}
