// Package commands contains the write operations of the catalog.
// Every handler validates its command, opens a unit of work, loads or creates
// aggregates and commits. Position assignment happens inside the repositories,
// so handlers never compute positions themselves.
package commands

import (
	"context"

	"catalog/internal/core/ports"
)

// Unit of work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle. Scope locks taken while
	// saving ordered aggregates are released by Commit or Rollback.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CourseRepoFactory interface {
		CourseRepository() ports.CourseRepository
	}

	ModuleRepoFactory interface {
		ModuleRepository() ports.ModuleRepository
	}

	ContentRepoFactory interface {
		ContentRepository() ports.ContentRepository
	}

	// CourseUoW is used by commands that only write courses.
	CourseUoW interface {
		TxManager
		CourseRepoFactory
	}

	CourseUoWFactory interface {
		Create() CourseUoW
	}

	// ModuleUoW reads the owning course and writes modules.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   if _, err := uow.CourseRepository().Get(ctx, courseID); err != nil { ... }
	//   err = uow.ModuleRepository().Add(ctx, m) // position assigned here
	//
	//   err = uow.Commit(ctx)
	ModuleUoW interface {
		TxManager
		CourseRepoFactory
		ModuleRepoFactory
	}

	ModuleUoWFactory interface {
		Create() ModuleUoW
	}

	// ContentUoW reads the owning module and writes contents.
	ContentUoW interface {
		TxManager
		ModuleRepoFactory
		ContentRepoFactory
	}

	ContentUoWFactory interface {
		Create() ContentUoW
	}
)
