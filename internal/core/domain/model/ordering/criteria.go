package ordering

import (
	"fmt"
	"strings"
)

// Binding pins one scope field to the value carried by the record being saved.
// A nil Value matches peers whose field is NULL.
type Binding struct {
	Field string
	Value any
}

// Criteria is the equality filter selecting the peers of a record.
type Criteria struct {
	bindings []Binding
}

// NewCriteria is used by tests and by callers that already know the values.
func NewCriteria(bindings ...Binding) Criteria {
	cp := make([]Binding, len(bindings))
	copy(cp, bindings)
	return Criteria{bindings: cp}
}

func (c Criteria) Bindings() []Binding {
	cp := make([]Binding, len(c.bindings))
	copy(cp, c.bindings)
	return cp
}

func (c Criteria) IsEmpty() bool {
	return len(c.bindings) == 0
}

// Matches reports whether values, keyed by field, satisfy every binding.
// Values are compared with fmt's %v rendering so a uuid and its string agree.
func (c Criteria) Matches(values map[string]any) bool {
	for _, b := range c.bindings {
		v, ok := values[b.Field]
		if !ok {
			return false
		}
		if (v == nil) != (b.Value == nil) {
			return false
		}
		if v != nil && fmt.Sprint(v) != fmt.Sprint(b.Value) {
			return false
		}
	}
	return true
}

// Key renders a canonical identifier for the sequence of model under c,
// e.g. "modules|course_id=6ba7b810-...". Lock implementations hash it.
func (c Criteria) Key(model string) string {
	var sb strings.Builder
	sb.WriteString(model)
	for _, b := range c.bindings {
		sb.WriteByte('|')
		sb.WriteString(b.Field)
		sb.WriteByte('=')
		if b.Value == nil {
			sb.WriteString("<null>")
			continue
		}
		fmt.Fprint(&sb, b.Value)
	}
	return sb.String()
}
