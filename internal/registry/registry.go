package registry

import (
	"fmt"

	"github.com/nfrund/folio/internal/config"
	"github.com/samber/do/v2"
)

// Key is a type-safe, generic key for registering and retrieving services.
// The string value should be a unique identifier, e.g., "datastore.Loader".
type Key[T any] string

// Registry is a type-safe facade over a samber/do injector. Services are
// registered lazily and built on first use.
type Registry struct {
	injector do.Injector
	cfg      config.Provider
}

// New creates a new registry with the application's configuration provider.
func New(cfg config.Provider) *Registry {
	return &Registry{
		injector: do.New(),
		cfg:      cfg,
	}
}

// Config returns the configuration provider stored in the registry.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set registers a ready-made service instance against a type-safe key.
func Set[T any](r *Registry, key Key[T], value T) {
	do.ProvideNamedValue(r.injector, string(key), value)
}

// Provide registers a constructor that runs the first time key is resolved.
func Provide[T any](r *Registry, key Key[T], build func(r *Registry) (T, error)) {
	do.ProvideNamed(r.injector, string(key), func(do.Injector) (T, error) {
		return build(r)
	})
}

// Get resolves a service. It fails when the key is unknown or its
// constructor returned an error.
func Get[T any](r *Registry, key Key[T]) (T, error) {
	v, err := do.InvokeNamed[T](r.injector, string(key))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("resolve %s: %w", key, err)
	}
	return v, nil
}

// MustGet retrieves a service or panics if not found. This is useful for
// wiring up essential dependencies at startup.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, err := Get(r, key)
	if err != nil {
		panic(fmt.Sprintf("service not found for key: %v: %v", key, err))
	}
	return val
}
