package reconcile

import (
	"fmt"
	"strings"
	"time"
)

// Result is the outcome of one reconciliation pass.
type Result struct {
	// Kept holds the surviving records in input order.
	Kept []Record `json:"kept" yaml:"kept"`

	// Dropped holds the superseded records in input order.
	Dropped []Record `json:"dropped,omitempty" yaml:"dropped,omitempty"`

	// Winners maps each logical key to its winning id.
	Winners map[string]Winner `json:"winners" yaml:"winners"`

	// Skipped holds input lines that could not be parsed.
	Skipped []LineError `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	Mode  MatchMode `json:"-" yaml:"-"`
	Stats Stats     `json:"stats" yaml:"stats"`
}

// Stats counts what a reconciliation pass did.
type Stats struct {
	Processed int           `json:"processed" yaml:"processed"`
	Kept      int           `json:"kept" yaml:"kept"`
	Dropped   int           `json:"dropped" yaml:"dropped"`
	Skipped   int           `json:"skipped" yaml:"skipped"`
	Keys      int           `json:"keys" yaml:"keys"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// Lines returns the kept records as tab-separated lines.
func (r *Result) Lines() []string {
	lines := make([]string, len(r.Kept))
	for i, rec := range r.Kept {
		lines[i] = rec.Line()
	}
	return lines
}

// HasSkipped returns true if any input line was skipped
func (r *Result) HasSkipped() bool {
	return len(r.Skipped) > 0
}

// Summary returns a human-readable summary of the result
func (r *Result) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Kept %d of %d records across %d organisms", r.Stats.Kept, r.Stats.Processed, r.Stats.Keys)
	if r.Stats.Dropped > 0 {
		fmt.Fprintf(&sb, ", dropped %d older builds", r.Stats.Dropped)
	}
	if r.HasSkipped() {
		fmt.Fprintf(&sb, ", skipped %d malformed lines", len(r.Skipped))
	}
	return sb.String()
}

// LineError is an input line that could not be turned into a Record.
type LineError struct {
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
	Err  error  `json:"-" yaml:"-"`
}

// Error implements the error interface
func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap implements errors.Unwrap
func (e LineError) Unwrap() error {
	return e.Err
}
