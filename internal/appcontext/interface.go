// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type so they can be tested with Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/gbcatalog/pkg/reconcile"
	"github.com/agentstation/gbcatalog/pkg/taxonomy"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/gbcatalog/app implements it.
type Interface interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (tsv, table, json, yaml).
	OutputFormat() string

	// SourceDir returns the directory relative input paths resolve against.
	SourceDir() string

	// Taxonomy returns the lookup client, creating it lazily on first use.
	Taxonomy() (taxonomy.Lookuper, error)

	// Reconciler returns a reconciler configured from the match mode setting.
	Reconciler() *reconcile.Reconciler

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
