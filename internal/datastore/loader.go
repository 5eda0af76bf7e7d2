package datastore

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/afero"
)

// Loader builds a fresh, initialized Store for every page render.
type Loader struct {
	source Source
	logger *slog.Logger
}

// NewLoader creates a Loader reading from source.
func NewLoader(source Source, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{source: source, logger: logger}
}

// NewSource picks the HTTP source when baseURL is set, the filesystem source
// over dataDir otherwise.
func NewSource(fs afero.Fs, dataDir, baseURL string, timeout time.Duration) Source {
	if baseURL != "" {
		return NewHTTPSource(baseURL, timeout)
	}
	return NewFileSource(fs, dataDir)
}

// Load creates and initializes a Store. The store is usable even when
// initialization failed; the failure has already been logged.
func (l *Loader) Load(ctx context.Context) *Store {
	store := NewStore(l.source, l.logger)
	store.Initialize(ctx)
	return store
}

// LoadWithStatus is Load plus the initialization result.
func (l *Loader) LoadWithStatus(ctx context.Context) (*Store, bool) {
	store := NewStore(l.source, l.logger)
	ok := store.Initialize(ctx)
	return store, ok
}
