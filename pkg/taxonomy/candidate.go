package taxonomy

import "strings"

// Candidate is a taxonomy identifier: a string of ASCII digits.
type Candidate string

// String returns the identifier text.
func (c Candidate) String() string {
	return string(c)
}

// Valid reports whether c is a non-empty run of digits.
func (c Candidate) Valid() bool {
	if c == "" {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] < '0' || c[i] > '9' {
			return false
		}
	}
	return true
}

// Result is the ordered list of candidates found in one lookup document:
// the labelled identifier first, then identifiers scraped from list links in
// document order. Duplicates are kept.
type Result []Candidate

// Found reports whether any identifier was found.
func (r Result) Found() bool {
	return len(r) > 0
}

// Ambiguous reports whether more than one identifier was found.
func (r Result) Ambiguous() bool {
	return len(r) > 1
}

// Strings returns the identifiers as plain strings.
func (r Result) Strings() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = string(c)
	}
	return out
}

// Join joins the identifiers with sep.
func (r Result) Join(sep string) string {
	return strings.Join(r.Strings(), sep)
}
