// Package app provides the application context and dependency management
// for the gbcatalog CLI. It centralizes configuration, logging and the
// lazily created taxonomy lookup client.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/gbcatalog/internal/appcontext"
	"github.com/agentstation/gbcatalog/internal/transport"
	"github.com/agentstation/gbcatalog/pkg/constants"
	"github.com/agentstation/gbcatalog/pkg/errors"
	"github.com/agentstation/gbcatalog/pkg/reconcile"
	"github.com/agentstation/gbcatalog/pkg/taxonomy"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the gbcatalog application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Taxonomy lookup (lazy-initialized, singleton)
	mu        sync.Mutex
	lookup    taxonomy.Lookuper
	transport *transport.Client
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// that can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// SourceDir returns the directory relative inputs resolve against.
func (a *App) SourceDir() string {
	return a.config.SourceDir
}

// Reconciler returns a reconciler in the configured match mode.
func (a *App) Reconciler() *reconcile.Reconciler {
	if a.config.StrictPairs {
		return reconcile.New(reconcile.WithMatchMode(reconcile.MatchByPair))
	}
	return reconcile.New()
}

// Taxonomy returns the taxonomy lookup client, creating it lazily if needed.
// This is thread-safe and ensures only one client is created.
func (a *App) Taxonomy() (taxonomy.Lookuper, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.lookup != nil {
		return a.lookup, nil
	}

	tc := transport.New(
		transport.WithTimeout(a.config.HTTPTimeout),
		transport.WithUserAgent(a.config.UserAgent),
		transport.WithSource(constants.TaxonomySourceName),
	)
	client, err := taxonomy.NewClient(a.config.TaxonomyEndpoint, tc)
	if err != nil {
		return nil, errors.NewConfigError("taxonomy", "creating lookup client", err)
	}

	a.transport = tc
	a.lookup = client
	return client, nil
}

// Shutdown performs graceful shutdown of the application.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.transport != nil {
		a.transport.Close()
		a.logger.Debug().Msg("Closed taxonomy connections")
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithTaxonomy sets a custom lookup client (useful for testing).
func WithTaxonomy(lookup taxonomy.Lookuper) Option {
	return func(a *App) error {
		a.lookup = lookup
		return nil
	}
}
