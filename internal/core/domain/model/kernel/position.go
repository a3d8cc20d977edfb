package kernel

import (
	"errors"
	"fmt"
	"math"

	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

const (
	// PositionMin is the first position handed out in an empty scope.
	PositionMin = 0
	// PositionMax matches the upper bound of a postgres integer column.
	PositionMax = math.MaxInt32
)

var ErrPositionIsNotSet = errs.NewValueIsRequiredError("position must be created via NewPosition or FirstPosition")

// Position is the ordinal of a record inside its ordering scope.
//
// The zero value is an unset position, which is distinct from position 0:
//
//	var p kernel.Position   // p.IsSet() == false
//	q := kernel.FirstPosition() // q.IsSet() == true, q.Int() == 0
//
// Position is immutable; Next returns a new value.
type Position struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewPosition validates v against [PositionMin, PositionMax].
func NewPosition(v int) (Position, error) {
	if v < PositionMin || v > PositionMax {
		return Position{}, errs.NewValueIsOutOfRangeError("position", v, PositionMin, PositionMax)
	}
	return Position{value: v, guard: guard.NewConstructorGuard()}, nil
}

// FirstPosition is the position assigned when a scope has no records yet.
func FirstPosition() Position {
	return Position{value: PositionMin, guard: guard.NewConstructorGuard()}
}

// PositionFromPtr maps an optional integer, as received over the wire, to a
// Position. nil yields the unset position.
func PositionFromPtr(v *int) (Position, error) {
	if v == nil {
		return Position{}, nil
	}
	return NewPosition(*v)
}

// IsSet reports whether the position was constructed.
func (p Position) IsSet() bool {
	return p.guard.IsConstructed()
}

// Validate returns ErrPositionIsNotSet for the unset position.
func (p Position) Validate() error {
	return p.guard.Validate(ErrPositionIsNotSet)
}

// Int returns the ordinal. It is 0 for an unset position, so callers check IsSet first.
func (p Position) Int() int {
	return p.value
}

// Ptr returns nil for the unset position; used by persistence DTOs.
func (p Position) Ptr() *int {
	if !p.IsSet() {
		return nil
	}
	v := p.value
	return &v
}

// Next returns the position directly after p.
func (p Position) Next() (Position, error) {
	if err := p.Validate(); err != nil {
		return Position{}, err
	}
	if p.value == PositionMax {
		return Position{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"position", p.value+1, PositionMin, PositionMax,
			errors.New("scope is full"),
		)
	}
	return NewPosition(p.value + 1)
}

func (p Position) IsEqual(other Position) bool {
	return p.IsSet() == other.IsSet() && p.value == other.value
}

func (p Position) String() string {
	if !p.IsSet() {
		return "Position(unset)"
	}
	return fmt.Sprintf("Position(%d)", p.value)
}
