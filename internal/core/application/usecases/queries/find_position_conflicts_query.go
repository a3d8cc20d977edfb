package queries

import (
	"errors"

	"catalog/internal/pkg/guard"
)

var ErrFindPositionConflictsQueryIsNotConstructed = errors.New(
	"FindPositionConflictsQuery must be created via NewFindPositionConflictsQuery constructor",
)

// FindPositionConflictsQuery inspects every ordered table for positions held
// by more than one record of a scope, and for scopes whose positions are not
// contiguous from 0.
type FindPositionConflictsQuery struct {
	guard guard.ConstructorGuard
}

func NewFindPositionConflictsQuery() FindPositionConflictsQuery {
	return FindPositionConflictsQuery{guard: guard.NewConstructorGuard()}
}

func (q FindPositionConflictsQuery) Validate() error {
	return q.guard.Validate(ErrFindPositionConflictsQueryIsNotConstructed)
}

// PositionDuplicate is a position shared by Count records of one scope.
// Scope is the scope values joined by "|", empty for a global scope.
type PositionDuplicate struct {
	Model    string
	Scope    string
	Position int
	Count    int
}

// PositionGap is a scope whose positions 0..MaxPosition are not all used.
// Gaps come from deletions and are expected; they are reported, not repaired.
type PositionGap struct {
	Model       string
	Scope       string
	MaxPosition int
	Missing     int
}

type FindPositionConflictsQueryResponse struct {
	Duplicates []PositionDuplicate
	Gaps       []PositionGap
}

// DuplicateCount sums the surplus records over all duplicate groups of model.
func (r FindPositionConflictsQueryResponse) DuplicateCount(model string) int {
	n := 0
	for _, d := range r.Duplicates {
		if d.Model == model {
			n += d.Count - 1
		}
	}
	return n
}

// GapCount sums the missing positions over all scopes of model.
func (r FindPositionConflictsQueryResponse) GapCount(model string) int {
	n := 0
	for _, g := range r.Gaps {
		if g.Model == model {
			n += g.Missing
		}
	}
	return n
}
