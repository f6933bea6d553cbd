package command

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned when building a verb table.
var (
	// ErrEmptyTable indicates a table without verbs.
	ErrEmptyTable = errors.New("verb table is empty")

	// ErrInvalidVerb indicates an empty or whitespace-containing verb.
	ErrInvalidVerb = errors.New("invalid verb")

	// ErrDuplicateVerb indicates the same verb appears twice.
	ErrDuplicateVerb = errors.New("duplicate verb")

	// ErrBuiltinMoved indicates a table that does not start with
	// DefaultVerbs in their default order.
	ErrBuiltinMoved = errors.New("built-in verb moved")
)

// DefaultVerbs is the built-in verb order. Code i dispatches verb i.
var DefaultVerbs = []string{"cd", "wf", "rf", "e", "p", "l"}

// Verb is a directive keyword and its dispatch code.
type Verb struct {
	Name string
	Code Code
}

// Table is an ordered, read-only verb table.
type Table struct {
	verbs []Verb
}

// DefaultTable returns the built-in verb table.
func DefaultTable() *Table {
	t, _ := NewTable(DefaultVerbs...)
	return t
}

// NewTable builds a table whose codes are the verb positions 0..N-1.
func NewTable(names ...string) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrEmptyTable
	}

	seen := make(map[string]bool, len(names))
	verbs := make([]Verb, 0, len(names))
	for i, name := range names {
		if name == "" || strings.ContainsAny(name, " \t") {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidVerb, name, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVerb, name)
		}
		seen[name] = true
		verbs = append(verbs, Verb{Name: name, Code: Code(i)})
	}
	return &Table{verbs: verbs}, nil
}

// Verbs returns a copy of the table in order.
func (t *Table) Verbs() []Verb {
	out := make([]Verb, len(t.verbs))
	copy(out, t.verbs)
	return out
}

// Len returns the number of verbs.
func (t *Table) Len() int {
	return len(t.verbs)
}

// Name returns the verb for a code, or "" if the code is not in the table.
func (t *Table) Name(c Code) string {
	if c < 0 || int(c) >= len(t.verbs) {
		return ""
	}
	return t.verbs[c].Name
}

// Lookup returns the first verb, in table order, that is a prefix of rest.
func (t *Table) Lookup(rest string) (Verb, bool) {
	for _, v := range t.verbs {
		if strings.HasPrefix(rest, v.Name) {
			return v, true
		}
	}
	return Verb{}, false
}

// CheckBuiltins returns ErrBuiltinMoved unless the table starts with
// DefaultVerbs in order. Verb codes are positions, so a host that binds
// CodeExit and the other built-in codes to actions can only accept tables
// that append to the defaults.
func (t *Table) CheckBuiltins() error {
	for i, name := range DefaultVerbs {
		if i >= len(t.verbs) {
			return fmt.Errorf("%w: %q missing at position %d", ErrBuiltinMoved, name, i)
		}
		if t.verbs[i].Name != name {
			return fmt.Errorf("%w: position %d is %q, want %q", ErrBuiltinMoved, i, t.verbs[i].Name, name)
		}
	}
	return nil
}

// Shadowed returns verbs that can never be resolved because an earlier
// verb is a prefix of them.
func (t *Table) Shadowed() []Verb {
	var out []Verb
	for i, v := range t.verbs {
		for _, earlier := range t.verbs[:i] {
			if strings.HasPrefix(v.Name, earlier.Name) {
				out = append(out, v)
				break
			}
		}
	}
	return out
}
