package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/gbcatalog/pkg/reconcile"
	"github.com/agentstation/gbcatalog/pkg/taxonomy"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	SourceDirFunc    func() string
	TaxonomyFunc     func() (taxonomy.Lookuper, error)
	ReconcilerFunc   func() *reconcile.Reconciler
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

var _ Interface = (*Mock)(nil)

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "tsv".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "tsv"
}

// SourceDir returns the source directory using the mock function or "".
func (m *Mock) SourceDir() string {
	if m.SourceDirFunc != nil {
		return m.SourceDirFunc()
	}
	return ""
}

// Taxonomy returns a lookup client using the mock function or nil.
func (m *Mock) Taxonomy() (taxonomy.Lookuper, error) {
	if m.TaxonomyFunc != nil {
		return m.TaxonomyFunc()
	}
	return nil, nil
}

// Reconciler returns a reconciler using the mock function or a default one.
func (m *Mock) Reconciler() *reconcile.Reconciler {
	if m.ReconcilerFunc != nil {
		return m.ReconcilerFunc()
	}
	return reconcile.New()
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
