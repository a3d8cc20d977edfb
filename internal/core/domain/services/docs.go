// Package services holds domain services that work across aggregates and
// their storage.
//
// PositionAssigner is the pre-save hook of ordered aggregates. Repositories
// call it right before an insert or update:
//
//	assigner := services.NewPositionAssigner(module.Model, module.Scope)
//	if _, err := assigner.PreSave(ctx, store, m, true); err != nil {
//	    return err
//	}
//	// m.Position() is now set; write the row
//
// A record that already has a position keeps it. Otherwise the assigner locks
// the record's scope in the store, reads the largest stored position of that
// scope and assigns the next one, or 0 for an empty scope. Positions freed by
// deletions are never reused.
package services
