package app

import (
	"fmt"
	"log/slog"

	"github.com/nfrund/folio/internal/datastore"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/email"
	"github.com/nfrund/folio/internal/format"
	"github.com/nfrund/folio/internal/iplookup"
	"github.com/nfrund/folio/internal/registry"
	"github.com/spf13/afero"
)

// Dependencies holds the core services the page controllers are built from.
// This struct is passed from the entrypoint to the server.
type Dependencies struct {
	Logger    *slog.Logger
	Fs        afero.Fs
	Loader    *datastore.Loader
	Formatter *format.Formatter
	Mailer    domain.Mailer
	IPLookup  *iplookup.Client
}

// Register provides every core service to the registry. Constructors run on
// first resolution; fs and logger are the only eagerly supplied values.
func Register(reg *registry.Registry, fs afero.Fs, logger *slog.Logger) {
	registry.Set(reg, registry.LoggerKey, logger)
	registry.Set(reg, registry.FsKey, fs)

	registry.Provide(reg, registry.LoaderKey, func(r *registry.Registry) (*datastore.Loader, error) {
		cfg := r.Config()
		source := datastore.NewSource(registry.MustGet(r, registry.FsKey), cfg.GetDataDir(), cfg.GetDataBaseURL(), cfg.GetHTTPTimeout())
		return datastore.NewLoader(source, registry.MustGet(r, registry.LoggerKey)), nil
	})
	registry.Provide(reg, registry.FormatterKey, func(r *registry.Registry) (*format.Formatter, error) {
		cfg := r.Config()
		return format.New(cfg.GetSiteLang(), cfg.GetCurrencySymbol()), nil
	})
	registry.Provide(reg, registry.MailerKey, func(r *registry.Registry) (domain.Mailer, error) {
		return email.NewMailer(r.Config(), registry.MustGet(r, registry.LoggerKey))
	})
	registry.Provide(reg, registry.IPLookupKey, func(r *registry.Registry) (*iplookup.Client, error) {
		cfg := r.Config()
		return iplookup.New(cfg.GetIPLookupURL(), cfg.GetHTTPTimeout()), nil
	})
}

// Resolve builds every registered service. A mailer that fails to build is
// an error: a misconfigured provider should stop startup.
func Resolve(reg *registry.Registry) (Dependencies, error) {
	var deps Dependencies
	var err error

	if deps.Logger, err = registry.Get(reg, registry.LoggerKey); err != nil {
		return deps, err
	}
	if deps.Fs, err = registry.Get(reg, registry.FsKey); err != nil {
		return deps, err
	}
	if deps.Loader, err = registry.Get(reg, registry.LoaderKey); err != nil {
		return deps, err
	}
	if deps.Formatter, err = registry.Get(reg, registry.FormatterKey); err != nil {
		return deps, err
	}
	if deps.Mailer, err = registry.Get(reg, registry.MailerKey); err != nil {
		return deps, fmt.Errorf("failed to initialize email service: %w", err)
	}
	if deps.IPLookup, err = registry.Get(reg, registry.IPLookupKey); err != nil {
		return deps, err
	}
	return deps, nil
}
