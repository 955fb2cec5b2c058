// Package taxonomy extracts NCBI taxonomy identifiers from Taxonomy Browser
// result pages and annotates organism lists with them.
//
// Pages are parsed into an HTML node tree. A page saying no result was found
// yields an empty Result even if it contains identifier-like links; otherwise
// the "Taxonomy ID:" label supplies the first candidate and list-item links
// carrying an id query parameter supply the rest.
package taxonomy

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/agentstation/gbcatalog/pkg/errors"
)

// Defaults matching NCBI Taxonomy Browser pages.
const (
	DefaultNoResultMarker = "No result found in the Taxonomy database for complete name"
	DefaultLabel          = "Taxonomy ID: "
)

// DefaultHrefPattern captures the id query parameter of a taxonomy link.
var DefaultHrefPattern = regexp.MustCompile(`[?&]id=(\d+)`)

// Resolver extracts candidates from lookup documents. It holds no state
// between calls.
type Resolver struct {
	noResultMarker string
	label          string
	hrefPattern    *regexp.Regexp
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithNoResultMarker sets the phrase that marks a negative lookup.
func WithNoResultMarker(marker string) ResolverOption {
	return func(r *Resolver) {
		r.noResultMarker = marker
	}
}

// WithLabel sets the exact text of the <em> label preceding the primary identifier.
func WithLabel(label string) ResolverOption {
	return func(r *Resolver) {
		r.label = label
	}
}

// WithHrefPattern sets the pattern applied to list-item links. Its first
// capture group must be the identifier.
func WithHrefPattern(pattern *regexp.Regexp) ResolverOption {
	return func(r *Resolver) {
		if pattern != nil {
			r.hrefPattern = pattern
		}
	}
}

// NewResolver creates a Resolver with NCBI defaults.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		noResultMarker: DefaultNoResultMarker,
		label:          DefaultLabel,
		hrefPattern:    DefaultHrefPattern,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve parses document and returns its candidates. An empty Result means
// the lookup was negative; a document that cannot be parsed returns a
// *errors.ParseError instead.
func (r *Resolver) Resolve(document string) (Result, error) {
	if strings.TrimSpace(document) == "" {
		return nil, errors.NewParseError("html", "", "blank document", nil)
	}
	return r.ResolveReader(strings.NewReader(document))
}

// ResolveReader is Resolve for a streamed document.
func (r *Resolver) ResolveReader(rd io.Reader) (Result, error) {
	doc, err := html.Parse(rd)
	if err != nil {
		return nil, errors.WrapParse("html", "", err)
	}
	if !hasContent(doc) {
		return nil, errors.NewParseError("html", "", "document has no content", nil)
	}
	return r.resolveTree(doc), nil
}

func (r *Resolver) resolveTree(doc *html.Node) Result {
	if r.noResultMarker != "" && r.containsPhrase(doc, r.noResultMarker) {
		return Result{}
	}

	result := Result{}
	if id, ok := r.primary(doc); ok {
		result = append(result, id)
	}
	return append(result, r.secondary(doc)...)
}

// primary returns the digits immediately following the first <em> label.
func (r *Resolver) primary(doc *html.Node) (Candidate, bool) {
	var found Candidate
	walk(doc, func(n *html.Node) bool {
		if !isElement(n, atom.Em) || textContent(n) != r.label {
			return true
		}
		next := n.NextSibling
		if next == nil || next.Type != html.TextNode {
			return true
		}
		if digits := leadingDigits(next.Data); digits != "" {
			found = Candidate(digits)
			return false
		}
		return true
	})
	return found, found != ""
}

// secondary scrapes the first link of every list item.
func (r *Resolver) secondary(doc *html.Node) Result {
	var result Result
	walk(doc, func(n *html.Node) bool {
		if !isElement(n, atom.Li) {
			return true
		}
		a := firstElement(n, atom.A)
		if a == nil {
			return true
		}
		href, ok := attr(a, "href")
		if !ok {
			return true
		}
		if m := r.hrefPattern.FindStringSubmatch(href); len(m) > 1 && m[1] != "" {
			result = append(result, Candidate(m[1]))
		}
		return true
	})
	return result
}

// containsPhrase reports whether phrase appears in the text, comment or
// attribute content of the page.
func (r *Resolver) containsPhrase(doc *html.Node, phrase string) bool {
	found := false
	walk(doc, func(n *html.Node) bool {
		switch n.Type {
		case html.TextNode, html.CommentNode:
			found = strings.Contains(n.Data, phrase)
		case html.ElementNode:
			for _, attr := range n.Attr {
				if strings.Contains(attr.Val, phrase) {
					found = true
					break
				}
			}
		}
		return !found
	})
	return found
}

// walk visits nodes depth-first in document order until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}

// firstElement returns the first descendant of n with the given tag.
func firstElement(n *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	for c := n.FirstChild; c != nil && found == nil; c = c.NextSibling {
		walk(c, func(d *html.Node) bool {
			if isElement(d, a) {
				found = d
				return false
			}
			return true
		})
	}
	return found
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(d *html.Node) bool {
		if d.Type == html.TextNode {
			sb.WriteString(d.Data)
		}
		return true
	})
	return sb.String()
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// hasContent reports whether the parsed tree holds any text or element
// beyond the skeleton the parser synthesizes.
func hasContent(doc *html.Node) bool {
	found := false
	walk(doc, func(n *html.Node) bool {
		switch n.Type {
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				found = true
			}
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Html, atom.Head, atom.Body:
			default:
				found = true
			}
		}
		return !found
	})
	return found
}
