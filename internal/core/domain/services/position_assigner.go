package services

import (
	"context"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/ordering"
	"catalog/internal/pkg/errs"
)

var (
	// ErrRecordIsRequired is returned when PreSave receives a nil record.
	ErrRecordIsRequired        = errs.NewValueIsRequiredError("record")
	ErrPositionStoreIsRequired = errs.NewValueIsRequiredError("position store")
)

// PositionStore is the query surface PositionAssigner needs from persistence.
//
// MaxPosition reports found == false when no persisted record of model matches
// criteria; that case is not an error. LockScope serialises concurrent
// assigners of the same sequence until the surrounding transaction ends.
type PositionStore interface {
	LockScope(ctx context.Context, model string, criteria ordering.Criteria) error
	MaxPosition(ctx context.Context, model string, criteria ordering.Criteria) (kernel.Position, bool, error)
}

// PositionAssigner is the pre-save hook that gives a new record the next free
// position of its scope.
//
// Business rules:
//   - A position already carried by the record is never overridden
//   - An empty scope starts at position 0
//   - Otherwise the record gets max(position of peers) + 1
//   - Peers are records of the same model whose scope fields equal the record's
//   - Gaps left by deleted records are not compacted
//
// Example:
//
//	assigner := services.NewPositionAssigner("modules", ordering.MustScope("course_id"))
//	pos, err := assigner.PreSave(ctx, uow.PositionRepository(), mod, true)
//	if err != nil {
//	    return err
//	}
//	// mod.Position() == pos; the caller now inserts mod
type PositionAssigner struct {
	model string
	scope ordering.Scope
}

// NewPositionAssigner binds the hook to a model (table) name and its scope.
func NewPositionAssigner(model string, scope ordering.Scope) PositionAssigner {
	return PositionAssigner{model: model, scope: scope}
}

func (a PositionAssigner) Model() string {
	return a.model
}

func (a PositionAssigner) Scope() ordering.Scope {
	return a.scope
}

// PreSave runs immediately before rec is written. add is true for inserts.
//
// A set position is returned untouched whatever the value of add. An unset
// position is computed the same way on insert and update, so a record that
// somehow reached storage without a position gets one on its next save.
//
// Store errors are returned unchanged; rec is only mutated on success.
func (a PositionAssigner) PreSave(
	ctx context.Context,
	store PositionStore,
	rec ordering.Orderable,
	add bool,
) (kernel.Position, error) {
	if rec == nil {
		return kernel.Position{}, ErrRecordIsRequired
	}

	if current := rec.Position(); current.IsSet() {
		return current, nil
	}

	next, err := a.nextPosition(ctx, store, rec)
	if err != nil {
		return kernel.Position{}, err
	}

	if err = rec.AssignPosition(next); err != nil {
		return kernel.Position{}, err
	}

	return next, nil
}

func (a PositionAssigner) nextPosition(
	ctx context.Context,
	store PositionStore,
	rec ordering.Orderable,
) (kernel.Position, error) {
	if store == nil {
		return kernel.Position{}, ErrPositionStoreIsRequired
	}

	criteria, err := a.scope.Bind(rec)
	if err != nil {
		return kernel.Position{}, err
	}

	if err = store.LockScope(ctx, a.model, criteria); err != nil {
		return kernel.Position{}, err
	}

	last, found, err := store.MaxPosition(ctx, a.model, criteria)
	if err != nil {
		return kernel.Position{}, err
	}

	if !found {
		return kernel.FirstPosition(), nil
	}

	return last.Next()
}
