package trackheader

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/gbcatalog/pkg/constants"
	"github.com/agentstation/gbcatalog/pkg/errors"
	"github.com/agentstation/gbcatalog/pkg/logging"
)

// Stats counts what a Converter has seen.
type Stats struct {
	Headers  int `json:"headers" yaml:"headers"`
	Comments int `json:"comments" yaml:"comments"`
	Data     int `json:"data" yaml:"data"`
	Blank    int `json:"blank" yaml:"blank"`
	Orphans  int `json:"orphans" yaml:"orphans"` // data lines seen before any chrom was known
}

// Converter turns a variableStep wiggle file into chrom<TAB>.<TAB>value rows.
// Header lines are passed through behind a '#', comments unchanged.
type Converter struct {
	chrom  string
	stats  Stats
	logger *zerolog.Logger
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithLogger sets the logger used for skipped or suspicious lines.
func WithLogger(logger *zerolog.Logger) ConverterOption {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewConverter creates a Converter with no current chromosome.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{logger: logging.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chrom returns the chromosome set by the last variableStep header.
func (c *Converter) Chrom() string {
	return c.chrom
}

// Stats returns the counts collected so far.
func (c *Converter) Stats() Stats {
	return c.stats
}

// Line converts one input line. ok is false for lines that produce no output.
func (c *Converter) Line(line string) (string, bool) {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		c.stats.Blank++
		return "", false
	case KeywordTrack.Match(line):
		c.stats.Headers++
		return "#" + line, true
	case strings.HasPrefix(line, "#"):
		c.stats.Comments++
		return line, true
	case KeywordVariableStep.Match(line):
		c.stats.Headers++
		attrs := Parse(line, KeywordVariableStep.Offset())
		if chrom, ok := attrs.Get("chrom"); ok {
			c.chrom = chrom
		} else {
			c.logger.Warn().
				Str("header", line).
				Str("chrom", c.chrom).
				Msg("variableStep header without chrom, keeping previous chromosome")
		}
		return "#" + line, true
	}

	c.stats.Data++
	if c.chrom == "" {
		c.stats.Orphans++
	}
	return c.chrom + "\t.\t" + line, true
}

// Convert converts a batch of lines.
func (c *Converter) Convert(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if converted, ok := c.Line(line); ok {
			out = append(out, converted)
		}
	}
	return out
}

// ConvertReader streams lines from r to w, stopping early if ctx is canceled.
func (c *Converter) ConvertReader(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, constants.WriteBufferSize), constants.MaxLineSize)
	bw := bufio.NewWriterSize(w, constants.WriteBufferSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return errors.ErrCanceled
		}
		converted, ok := c.Line(scanner.Text())
		if !ok {
			continue
		}
		if _, err := bw.WriteString(converted + "\n"); err != nil {
			return errors.WrapIO("write", "output", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.WrapIO("read", "input", err)
	}
	if err := bw.Flush(); err != nil {
		return errors.WrapIO("write", "output", err)
	}

	if c.stats.Orphans > 0 {
		c.logger.Warn().Int("orphans", c.stats.Orphans).Msg("Data lines appeared before any variableStep chrom")
	}
	return nil
}
