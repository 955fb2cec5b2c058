// Package reconcile keeps the most recent database build of each organism.
//
// Records are grouped by logical key and the record whose versioned id
// carries the greatest number wins its group. The filter then keeps, in
// input order, every record whose id won. By default the comparison is by id
// alone, so identical ids filed under different keys are all retained; the
// MatchByPair mode compares the (key, id) pair instead.
package reconcile

import (
	"context"
	"time"

	"github.com/agentstation/gbcatalog/pkg/logging"
)

// MatchMode selects how surviving records are matched against winners.
type MatchMode int

const (
	// MatchByID keeps a record whose id is the winning id of any key.
	MatchByID MatchMode = iota
	// MatchByPair keeps a record only if its id won its own key.
	MatchByPair
)

// String returns the string representation of a match mode
func (m MatchMode) String() string {
	switch m {
	case MatchByPair:
		return "pair"
	default:
		return "id"
	}
}

// Winner is the chosen record for one logical key.
type Winner struct {
	VersionedID string        `json:"versioned_id" yaml:"versioned_id"`
	Version     VersionNumber `json:"version" yaml:"version"`
}

// Reconciler selects the newest record per logical key.
type Reconciler struct {
	mode MatchMode
}

// Option configures a Reconciler
type Option func(*Reconciler)

// WithMatchMode sets the filter mode.
func WithMatchMode(mode MatchMode) Option {
	return func(r *Reconciler) {
		r.mode = mode
	}
}

// New creates a Reconciler. The default mode is MatchByID.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{mode: MatchByID}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mode returns the configured match mode.
func (r *Reconciler) Mode() MatchMode {
	return r.mode
}

// Winners scans records in order and returns the winner of each logical key.
// A strictly greater version replaces the current winner, so ties keep the
// earlier record.
func (r *Reconciler) Winners(records []Record) map[string]Winner {
	winners := make(map[string]Winner)
	for _, rec := range records {
		v := rec.Version()
		current, ok := winners[rec.LogicalKey]
		if !ok || v.Greater(current.Version) {
			winners[rec.LogicalKey] = Winner{VersionedID: rec.VersionedID, Version: v}
		}
	}
	return winners
}

// Reconcile returns the surviving records in input order.
func (r *Reconciler) Reconcile(records []Record) []Record {
	kept, _ := r.split(records, r.Winners(records))
	return kept
}

// ReconcileResult is Reconcile with the dropped records and winners kept.
func (r *Reconciler) ReconcileResult(ctx context.Context, records []Record) *Result {
	start := time.Now()
	winners := r.Winners(records)
	kept, dropped := r.split(records, winners)

	result := &Result{
		Kept:    kept,
		Dropped: dropped,
		Winners: winners,
		Mode:    r.mode,
	}
	result.Stats = Stats{
		Processed: len(records),
		Kept:      len(kept),
		Dropped:   len(dropped),
		Keys:      len(winners),
		Duration:  time.Since(start),
	}

	logging.FromContext(ctx).Debug().
		Int("processed", result.Stats.Processed).
		Int("kept", result.Stats.Kept).
		Int("dropped", result.Stats.Dropped).
		Str("mode", r.mode.String()).
		Msg("Reconciled records")
	return result
}

// ReconcileLines parses tab-separated lines into records and reconciles
// them. Lines that do not parse are skipped and reported in the result.
func (r *Reconciler) ReconcileLines(ctx context.Context, lines []string) *Result {
	logger := logging.FromContext(ctx)
	records := make([]Record, 0, len(lines))
	var skipped []LineError

	for i, line := range lines {
		if line == "" {
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			logger.Warn().Int("line", i+1).Err(err).Msg("Skipping record")
			skipped = append(skipped, LineError{Line: i + 1, Text: line, Err: err})
			continue
		}
		records = append(records, rec)
	}

	result := r.ReconcileResult(ctx, records)
	result.Skipped = skipped
	result.Stats.Skipped = len(skipped)
	return result
}

func (r *Reconciler) split(records []Record, winners map[string]Winner) (kept, dropped []Record) {
	winningIDs := make(map[string]struct{}, len(winners))
	for _, w := range winners {
		winningIDs[w.VersionedID] = struct{}{}
	}

	kept = make([]Record, 0, len(winners))
	for _, rec := range records {
		if r.survives(rec, winners, winningIDs) {
			kept = append(kept, rec)
		} else {
			dropped = append(dropped, rec)
		}
	}
	return kept, dropped
}

func (r *Reconciler) survives(rec Record, winners map[string]Winner, winningIDs map[string]struct{}) bool {
	if r.mode == MatchByPair {
		w, ok := winners[rec.LogicalKey]
		return ok && w.VersionedID == rec.VersionedID
	}
	_, ok := winningIDs[rec.VersionedID]
	return ok
}

// Reconcile reconciles records with the default MatchByID mode.
func Reconcile(records []Record) []Record {
	return New().Reconcile(records)
}
