// internal/table/schema.go
package table

import (
	"fmt"
	"strings"
)

// Schema is an ordered list of column names. Names are trimmed; lookups are
// therefore independent of whitespace around the raw header text.
type Schema struct {
	raw   []string
	names []string
	index map[string]int
}

func NewSchema(raw []string) Schema {
	s := Schema{
		raw:   append([]string(nil), raw...),
		names: make([]string, len(raw)),
		index: make(map[string]int, len(raw)),
	}
	for i, r := range raw {
		n := strings.TrimSpace(r)
		s.names[i] = n
		if _, dup := s.index[n]; !dup {
			s.index[n] = i
		}
	}
	return s
}

// Index resolves a column name to its position (first occurrence wins).
func (s Schema) Index(name string) (int, error) {
	if i, ok := s.index[strings.TrimSpace(name)]; ok {
		return i, nil
	}
	return -1, &MissingColumnError{Name: name, Available: s.Names()}
}

// Names returns the trimmed column names.
func (s Schema) Names() []string { return append([]string(nil), s.names...) }

// Raw returns the header fields exactly as read.
func (s Schema) Raw() []string { return append([]string(nil), s.raw...) }

// Name returns the i-th column name, or "" when out of range.
func (s Schema) Name(i int) string {
	if i < 0 || i >= len(s.names) {
		return ""
	}
	return s.names[i]
}

func (s Schema) Len() int { return len(s.names) }

// MissingColumnError is the configuration error for a named column absent
// from the schema.
type MissingColumnError struct {
	Name      string
	Available []string
}

func (e *MissingColumnError) Error() string {
	quoted := make([]string, len(e.Available))
	for i, a := range e.Available {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	return fmt.Sprintf("required column %q not found; available columns: %s", e.Name, strings.Join(quoted, ", "))
}
