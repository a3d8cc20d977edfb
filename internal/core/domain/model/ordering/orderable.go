package ordering

import "catalog/internal/core/domain/model/kernel"

// Scoped exposes the values of the fields a Scope refers to.
type Scoped interface {
	// ScopeValue returns the value of field, or an error for an unknown field.
	ScopeValue(field string) (any, error)
}

// Orderable is implemented by aggregates that occupy a position in a scope.
type Orderable interface {
	Scoped
	Position() kernel.Position
	AssignPosition(p kernel.Position) error
}
