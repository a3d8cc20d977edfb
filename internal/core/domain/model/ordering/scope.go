package ordering

import (
	"errors"
	"fmt"
	"strings"

	"catalog/internal/pkg/errs"
)

var (
	ErrScopeFieldIsEmpty     = errs.NewValueIsRequiredError("scope field name")
	ErrScopeFieldIsDuplicate = errors.New("scope field is listed twice")
)

// Scope is the ordered list of fields that partitions a position sequence.
// The zero value is the global scope.
type Scope struct {
	fields []string
}

// NewScope builds a scope over the given fields. No fields means global.
func NewScope(fields ...string) (Scope, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return Scope{}, ErrScopeFieldIsEmpty
		}
		if _, ok := seen[f]; ok {
			return Scope{}, fmt.Errorf("%w: %s", ErrScopeFieldIsDuplicate, f)
		}
		seen[f] = struct{}{}
	}

	cp := make([]string, len(fields))
	copy(cp, fields)
	return Scope{fields: cp}, nil
}

// MustScope is NewScope for package-level declarations; it panics on invalid input.
func MustScope(fields ...string) Scope {
	s, err := NewScope(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// GlobalScope orders every record of a table in one sequence.
func GlobalScope() Scope {
	return Scope{}
}

// IsGlobal is true for both an undefined and an empty field list.
func (s Scope) IsGlobal() bool {
	return len(s.fields) == 0
}

// Fields returns a copy of the scope fields in declaration order.
func (s Scope) Fields() []string {
	cp := make([]string, len(s.fields))
	copy(cp, s.fields)
	return cp
}

// Bind reads the scope field values from rec.
func (s Scope) Bind(rec Scoped) (Criteria, error) {
	if s.IsGlobal() {
		return Criteria{}, nil
	}

	bindings := make([]Binding, 0, len(s.fields))
	for _, f := range s.fields {
		v, err := rec.ScopeValue(f)
		if err != nil {
			return Criteria{}, fmt.Errorf("bind scope field %q: %w", f, err)
		}
		bindings = append(bindings, Binding{Field: f, Value: v})
	}
	return Criteria{bindings: bindings}, nil
}

func (s Scope) String() string {
	if s.IsGlobal() {
		return "scope(global)"
	}
	return "scope(" + strings.Join(s.fields, ",") + ")"
}
