// Package trackheader parses the key=value metadata carried by UCSC
// "track" and "variableStep" header lines and converts variableStep
// wiggle files into per-chromosome tab-separated rows.
package trackheader

import (
	"regexp"
	"strings"
)

// Keyword identifies a recognized header line.
type Keyword string

// Recognized header keywords.
const (
	KeywordTrack        Keyword = "track"
	KeywordVariableStep Keyword = "variableStep"
)

// Keywords lists the recognized header keywords.
func Keywords() []Keyword {
	return []Keyword{KeywordTrack, KeywordVariableStep}
}

// Offset is the number of leading characters to skip before the attributes:
// the keyword plus one separator.
func (k Keyword) Offset() int {
	return len(k) + 1
}

// Match reports whether line starts with the keyword as a whole word.
func (k Keyword) Match(line string) bool {
	if !strings.HasPrefix(line, string(k)) {
		return false
	}
	if len(line) == len(k) {
		return true
	}
	switch line[len(k)] {
	case ' ', '\t':
		return true
	}
	return false
}

// attributePattern matches NAME=VALUE where VALUE is either double-quoted
// (group 2) or a run of non-space, non-'=' characters (group 3).
var attributePattern = regexp.MustCompile(`([\w\-\.]+)=(?:"(.*?)"|([^\s=]+))`)

// Parse scans line, skipping the first offset characters, and returns every
// NAME=VALUE span found. Later occurrences of a name overwrite earlier ones.
// Text that does not match is ignored, so Parse never fails.
func Parse(line string, offset int) *Attributes {
	attrs := NewAttributes()
	if offset < 0 {
		offset = 0
	}
	if offset >= len(line) {
		return attrs
	}
	rest := line[offset:]

	for _, m := range attributePattern.FindAllStringSubmatchIndex(rest, -1) {
		name := rest[m[2]:m[3]]
		// A quoted value is present even when empty; check the group
		// index rather than the captured text.
		if m[4] >= 0 {
			attrs.Set(name, rest[m[4]:m[5]])
			continue
		}
		attrs.Set(name, rest[m[6]:m[7]])
	}
	return attrs
}

// ParseHeader recognizes a header keyword at the start of line and parses
// the attributes after it. ok is false when line is not a header.
func ParseHeader(line string) (Keyword, *Attributes, bool) {
	for _, kw := range Keywords() {
		if kw.Match(line) {
			return kw, Parse(line, kw.Offset()), true
		}
	}
	return "", nil, false
}
