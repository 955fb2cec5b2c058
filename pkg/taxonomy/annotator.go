package taxonomy

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/agentstation/gbcatalog/pkg/constants"
	"github.com/agentstation/gbcatalog/pkg/errors"
	"github.com/agentstation/gbcatalog/pkg/logging"
)

// Annotation is one organism line with its resolved identifiers.
type Annotation struct {
	Name        string   `json:"name" yaml:"name"`
	DisplayName string   `json:"display_name" yaml:"display_name"`
	Extra       string   `json:"extra" yaml:"extra"`
	TaxIDs      []string `json:"taxids" yaml:"taxids"`
}

// Fields returns the output columns: name, display name, extra and the
// comma-joined identifiers.
func (a Annotation) Fields() []string {
	return []string{a.Name, a.DisplayName, a.Extra, strings.Join(a.TaxIDs, ",")}
}

// Line returns the tab-separated output line.
func (a Annotation) Line() string {
	return strings.Join(a.Fields(), "\t")
}

// Failure records a line whose lookup could not be completed.
type Failure struct {
	Line int    `json:"line" yaml:"line"`
	Name string `json:"name" yaml:"name"`
	Err  error  `json:"-" yaml:"-"`
}

// Report summarises an annotation run.
type Report struct {
	Lines       int       `json:"lines" yaml:"lines"`
	Skipped     int       `json:"skipped" yaml:"skipped"`
	Resolved    int       `json:"resolved" yaml:"resolved"`
	NotFound    int       `json:"not_found" yaml:"not_found"`
	Ambiguous   int       `json:"ambiguous" yaml:"ambiguous"`
	FetchFailed int       `json:"fetch_failed" yaml:"fetch_failed"`
	ParseFailed int       `json:"parse_failed" yaml:"parse_failed"`
	Failures    []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Annotator looks up each organism in a tab-separated list. Field 0 is the
// database name, field 1 the organism name used for the lookup and field 2
// carried through unchanged.
type Annotator struct {
	lookup Lookuper
}

// NewAnnotator creates an Annotator using lookup.
func NewAnnotator(lookup Lookuper) *Annotator {
	return &Annotator{lookup: lookup}
}

// Annotate processes lines in order. A failed lookup is recorded in the
// report and its line is left out of the output; the run always continues.
func (a *Annotator) Annotate(ctx context.Context, lines []string) ([]Annotation, *Report, error) {
	report := &Report{}
	out := make([]Annotation, 0, len(lines))

	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return out, report, errors.ErrCanceled
		}
		if ann, ok := a.annotateLine(ctx, i+1, line, report); ok {
			out = append(out, ann)
		}
	}

	logSummary(ctx, report)
	return out, report, nil
}

// AnnotateReader streams lines from r, writing each annotation line to w as
// soon as it is resolved.
func (a *Annotator) AnnotateReader(ctx context.Context, r io.Reader, w io.Writer) (*Report, error) {
	report := &Report{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, constants.WriteBufferSize), constants.MaxLineSize)

	n := 0
	for scanner.Scan() {
		n++
		if err := ctx.Err(); err != nil {
			return report, errors.ErrCanceled
		}
		ann, ok := a.annotateLine(ctx, n, scanner.Text(), report)
		if !ok {
			continue
		}
		if _, err := io.WriteString(w, ann.Line()+"\n"); err != nil {
			return report, errors.WrapIO("write", "output", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return report, errors.WrapIO("read", "input", err)
	}

	logSummary(ctx, report)
	return report, nil
}

func (a *Annotator) annotateLine(ctx context.Context, n int, line string, report *Report) (Annotation, bool) {
	report.Lines++
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) < 3 {
		report.Skipped++
		return Annotation{}, false
	}

	ctx = logging.WithLine(logging.WithOrganism(ctx, fields[1]), n)
	logger := logging.FromContext(ctx)

	result, err := a.lookup.Lookup(ctx, fields[1])
	if err != nil {
		switch {
		case errors.IsParseFailure(err):
			report.ParseFailed++
			logger.Error().Err(err).Msg("Could not parse lookup page")
		default:
			report.FetchFailed++
			logger.Error().Err(err).Msg("Could not fetch lookup page")
		}
		report.Failures = append(report.Failures, Failure{Line: n, Name: fields[1], Err: err})
		return Annotation{}, false
	}

	switch {
	case !result.Found():
		report.NotFound++
		logger.Debug().Msg("No taxonomy identifier found")
	case result.Ambiguous():
		report.Ambiguous++
		logger.Warn().Strs("taxids", result.Strings()).Msg("Ambiguous taxonomy lookup")
	default:
		report.Resolved++
	}

	return Annotation{
		Name:        fields[0],
		DisplayName: fields[1],
		Extra:       fields[2],
		TaxIDs:      result.Strings(),
	}, true
}

func logSummary(ctx context.Context, report *Report) {
	logging.FromContext(ctx).Info().
		Int("lines", report.Lines).
		Int("resolved", report.Resolved).
		Int("not_found", report.NotFound).
		Int("ambiguous", report.Ambiguous).
		Int("fetch_failed", report.FetchFailed).
		Int("parse_failed", report.ParseFailed).
		Int("skipped", report.Skipped).
		Msg("Taxonomy annotation finished")
}
