// Package constants provides shared constants used throughout the gbcatalog codebase.
// This includes timeouts, file permissions, lookup endpoints and the column
// positions of the UCSC table formats the drivers consume.
package constants

import "time"

// Timeout constants
const (
	// DefaultHTTPTimeout is the standard timeout for a taxonomy lookup request
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 30 * time.Minute

	// ShutdownTimeout bounds cleanup after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Lookup constants
const (
	// DefaultTaxonomyEndpoint is the NCBI Taxonomy Browser query template.
	// The single %s receives the url-encoded organism name query.
	DefaultTaxonomyEndpoint = "https://www.ncbi.nlm.nih.gov/Taxonomy/Browser/wwwtax.cgi?mode=Undef&srchmode=1&filter=genome_filter&%s"

	// TaxonomySourceName identifies the lookup service in errors and logs
	TaxonomySourceName = "ncbi-taxonomy"

	// DefaultUserAgent is sent with every lookup request
	DefaultUserAgent = "gbcatalog"

	// MaxDocumentSize caps how much of a lookup response is read (8 MiB)
	MaxDocumentSize = 8 << 20
)

// Column positions in the UCSC database listing consumed by the reconciler
const (
	// VersionedIDColumn holds the assembly/database name, e.g. hg19
	VersionedIDColumn = 0

	// LogicalKeyColumn holds the organism the assembly belongs to
	LogicalKeyColumn = 4
)

// Buffer constants
const (
	// MaxLineSize is the longest input line the line readers accept (16 MiB)
	MaxLineSize = 16 << 20

	// WriteBufferSize is the default buffer size for write operations
	WriteBufferSize = 4096
)
