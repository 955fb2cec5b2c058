package trackheader

import (
	"strings"
)

// Attribute is a single name=value pair from a header line.
type Attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Attributes is an ordered mapping of attribute names to values.
// Names keep the position of their first occurrence; Set on an existing
// name overwrites the value in place.
type Attributes struct {
	index map[string]int
	list  []Attribute
}

// NewAttributes returns an empty mapping.
func NewAttributes() *Attributes {
	return &Attributes{index: make(map[string]int)}
}

// Set records name=value, replacing any earlier value for name.
func (a *Attributes) Set(name, value string) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[name]; ok {
		a.list[i].Value = value
		return
	}
	a.index[name] = len(a.list)
	a.list = append(a.list, Attribute{Name: name, Value: value})
}

// Get returns the value for name and whether it was present.
func (a *Attributes) Get(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	i, ok := a.index[name]
	if !ok {
		return "", false
	}
	return a.list[i].Value, true
}

// Value returns the value for name, or "" when absent.
func (a *Attributes) Value(name string) string {
	v, _ := a.Get(name)
	return v
}

// Has reports whether name is present, including with an empty value.
func (a *Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Len returns the number of distinct names.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.list)
}

// Names returns the attribute names in first-occurrence order.
func (a *Attributes) Names() []string {
	names := make([]string, 0, a.Len())
	for _, attr := range a.List() {
		names = append(names, attr.Name)
	}
	return names
}

// List returns a copy of the attributes in first-occurrence order.
func (a *Attributes) List() []Attribute {
	if a == nil {
		return nil
	}
	out := make([]Attribute, len(a.list))
	copy(out, a.list)
	return out
}

// Map returns the attributes as a plain map.
func (a *Attributes) Map() map[string]string {
	m := make(map[string]string, a.Len())
	for _, attr := range a.List() {
		m[attr.Name] = attr.Value
	}
	return m
}

// String renders the attributes back into header syntax, quoting values
// that are empty or contain whitespace or '='.
func (a *Attributes) String() string {
	parts := make([]string, 0, a.Len())
	for _, attr := range a.List() {
		value := attr.Value
		if value == "" || strings.ContainsAny(value, " \t=") {
			value = `"` + value + `"`
		}
		parts = append(parts, attr.Name+"="+value)
	}
	return strings.Join(parts, " ")
}
