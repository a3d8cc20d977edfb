package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Scope locks taken through
// PositionRepository are held until Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and releases scope locks.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and releases scope locks.
	Rollback(ctx context.Context) error

	CourseRepository() CourseRepository
	ModuleRepository() ModuleRepository
	ContentRepository() ContentRepository
	PositionRepository() PositionRepository
}
