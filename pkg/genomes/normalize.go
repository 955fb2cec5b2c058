package genomes

import (
	"fmt"
	"strings"

	"github.com/agentstation/gbcatalog/pkg/errors"
)

// Result holds the normalized organisms and the lines that were rejected.
type Result struct {
	Organisms []Organism `json:"organisms" yaml:"organisms"`
	Errors    []error    `json:"-" yaml:"-"`
}

// Lines returns the organisms as tab-separated rows.
func (r *Result) Lines() []string {
	lines := make([]string, len(r.Organisms))
	for i, o := range r.Organisms {
		lines[i] = o.Line()
	}
	return lines
}

// HasErrors returns true if any line was rejected
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Archaea normalizes the UCSC archaeal genome list. The first line is a
// column header and is dropped. Each remaining line carries name, common
// name, scientific name, a "domain-clade" field and the taxonomy id.
func Archaea(lines []string) *Result {
	result := &Result{}
	if len(lines) > 0 {
		lines = lines[1:]
	}

	for i, line := range lines {
		n := i + 2
		fields, ok := split(line)
		if !ok {
			continue
		}
		if len(fields) < 5 {
			result.Errors = append(result.Errors, lineError(n, line,
				fmt.Sprintf("expected 5 fields, got %d", len(fields))))
			continue
		}
		domain, clade, found := strings.Cut(fields[3], "-")
		if !found {
			result.Errors = append(result.Errors, lineError(n, line,
				fmt.Sprintf("clade field %q is not domain-clade", fields[3])))
			continue
		}
		result.Organisms = append(result.Organisms, Organism{
			DBName:         fields[0],
			CommonName:     fields[1],
			ScientificName: fields[2],
			Domain:         domain,
			Clade:          clade,
			TaxID:          fields[4],
		})
	}
	return result
}

// Eukaryotes normalizes the UCSC eukaryotic genome list. Each line carries
// name, description, common name, scientific name, taxonomy id and clade.
func Eukaryotes(lines []string) *Result {
	result := &Result{}

	for i, line := range lines {
		fields, ok := split(line)
		if !ok {
			continue
		}
		if len(fields) < 6 {
			result.Errors = append(result.Errors, lineError(i+1, line,
				fmt.Sprintf("expected 6 fields, got %d", len(fields))))
			continue
		}
		result.Organisms = append(result.Organisms, Organism{
			DBName:         fields[0],
			Description:    fields[1],
			CommonName:     fields[2],
			ScientificName: fields[3],
			Domain:         DomainEukaryota,
			Clade:          fields[5],
			TaxID:          fields[4],
		})
	}
	return result
}

func split(line string) ([]string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}
	return strings.Split(line, "\t"), true
}

func lineError(n int, line, message string) error {
	return errors.NewValidationError(fmt.Sprintf("line %d", n), line, message)
}
