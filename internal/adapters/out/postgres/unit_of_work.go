// Package postgres provides the GORM implementation of the unit of work.
//
// A unit of work owns one transaction. Every repository it hands out writes
// through that transaction, and the position repository takes its scope locks
// in it, so the lock on a scope is held from the max-position read until the
// insert commits:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	// PreSave: lock scope, read MAX(position), assign max+1; then INSERT
//	if err := uow.ModuleRepository().Add(ctx, m); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Multiple goroutines must use separate UnitOfWork instances.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"catalog/internal/adapters/out/postgres/contentrepo"
	"catalog/internal/adapters/out/postgres/courserepo"
	"catalog/internal/adapters/out/postgres/modulerepo"
	"catalog/internal/adapters/out/postgres/positionrepo"
	"catalog/internal/core/domain/model/content"
	"catalog/internal/core/domain/model/course"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/module"
	"catalog/internal/core/ports"
	"catalog/internal/pkg/metrics"

	"gorm.io/gorm"
)

// OrderedModels lists the tables whose rows carry a scoped position.
var OrderedModels = []string{module.Model, content.Model}

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

type trackedRelease struct {
	key     string
	release positionrepo.Release
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one scope locker.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	locker positionrepo.ScopeLocker
	logger *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory. A nil locker disables scope
// locking; a nil logger discards lock release failures.
func NewGormUnitOfWorkFactory(db *gorm.DB, locker positionrepo.ScopeLocker, logger *slog.Logger) *GormUnitOfWorkFactory {
	if locker == nil {
		locker = positionrepo.NoopLocker{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GormUnitOfWorkFactory{
		db:     db,
		locker: locker,
		logger: logger.With("component", "unit_of_work"),
	}
}

// Create produces a UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		locker:            f.locker,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one transaction, the aggregates it wrote and the
// scope locks it holds.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	locker            positionrepo.ScopeLocker
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
	releases          []trackedRelease
}

// Begin starts the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit commits the transaction, then releases scope locks and records the
// saved aggregates.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.releaseLocks(ctx)
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	for _, tracked := range uow.trackedAggregates {
		metrics.AggregatesSaved.WithLabelValues(aggregateKind(tracked.Aggregate)).Inc()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction and releases scope locks.
func (uow *GormUnitOfWork) Rollback(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.releaseLocks(ctx)
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) CourseRepository() ports.CourseRepository {
	return courserepo.NewGormCourseRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ModuleRepository() ports.ModuleRepository {
	db := uow.conn()
	return modulerepo.NewGormModuleRepository(db, uow.positions(db), uow)
}

func (uow *GormUnitOfWork) ContentRepository() ports.ContentRepository {
	db := uow.conn()
	return contentrepo.NewGormContentRepository(db, uow.positions(db), uow)
}

func (uow *GormUnitOfWork) PositionRepository() ports.PositionRepository {
	return uow.positions(uow.conn())
}

// TrackAggregate is called by repositories for every written aggregate.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackRelease is called by the position repository for every scope lock.
func (uow *GormUnitOfWork) TrackRelease(key string, release positionrepo.Release) {
	uow.releases = append(uow.releases, trackedRelease{key: key, release: release})
}

// TrackedAggregates returns the aggregates written since the last commit or rollback.
func (uow *GormUnitOfWork) TrackedAggregates() []any {
	out := make([]any, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		out = append(out, tracked.Aggregate)
	}
	return out
}

// conn returns the open transaction, or the pool outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) positions(db *gorm.DB) *positionrepo.GormPositionRepository {
	return positionrepo.NewGormPositionRepository(db, uow.locker, uow, OrderedModels...)
}

// releaseLocks runs in reverse acquisition order; failures are logged since
// the transaction outcome is already decided.
func (uow *GormUnitOfWork) releaseLocks(ctx context.Context) {
	var errList []error
	for i := len(uow.releases) - 1; i >= 0; i-- {
		r := uow.releases[i]
		if err := r.release(context.WithoutCancel(ctx)); err != nil {
			errList = append(errList, fmt.Errorf("release %s: %w", r.key, err))
		}
	}
	uow.releases = nil

	if err := errors.Join(errList...); err != nil {
		uow.logger.WarnContext(ctx, "Scope lock release failed", "error", err)
	}
}

func aggregateKind(aggregate any) string {
	switch aggregate.(type) {
	case *course.Course:
		return "course"
	case *module.Module:
		return "module"
	case *content.Content:
		return "content"
	default:
		return "other"
	}
}
