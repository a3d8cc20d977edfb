// Package positionrepo implements the position store used by the position
// assigner: MAX(position) lookups filtered by scope criteria, plus scope locks.
package positionrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/ordering"
	"catalog/internal/pkg/metrics"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PositionColumn is the column every ordered table stores its position in.
const PositionColumn = "position"

// releaseTracker collects lock releases until the transaction ends.
type releaseTracker interface {
	TrackRelease(key string, release Release)
}

// GormPositionRepository implements ports.PositionRepository.
//
// Table and column names are interpolated into SQL, so only models passed to
// NewGormPositionRepository are accepted and every identifier is quoted.
type GormPositionRepository struct {
	db      *gorm.DB
	locker  ScopeLocker
	tracker releaseTracker
	models  map[string]struct{}
}

// NewGormPositionRepository creates a store for the given model tables.
func NewGormPositionRepository(
	db *gorm.DB,
	locker ScopeLocker,
	tracker releaseTracker,
	models ...string,
) *GormPositionRepository {
	allowed := make(map[string]struct{}, len(models))
	for _, m := range models {
		allowed[m] = struct{}{}
	}
	if locker == nil {
		locker = NoopLocker{}
	}
	return &GormPositionRepository{
		db:      db,
		locker:  locker,
		tracker: tracker,
		models:  allowed,
	}
}

// LockScope blocks until no other transaction assigns in the same scope.
func (r *GormPositionRepository) LockScope(ctx context.Context, model string, criteria ordering.Criteria) error {
	if err := r.checkModel(model); err != nil {
		return err
	}

	key := criteria.Key(model)
	start := time.Now()
	release, err := r.locker.Lock(ctx, r.db, key)
	metrics.ScopeLockWait.WithLabelValues(model).Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	r.tracker.TrackRelease(key, release)
	return nil
}

// MaxPosition returns the largest stored position of model under criteria.
// found is false when no row matches.
func (r *GormPositionRepository) MaxPosition(
	ctx context.Context,
	model string,
	criteria ordering.Criteria,
) (kernel.Position, bool, error) {
	if err := r.checkModel(model); err != nil {
		return kernel.Position{}, false, err
	}

	q := r.db.WithContext(ctx).
		Table(pq.QuoteIdentifier(model)).
		Select(fmt.Sprintf("MAX(%s)", pq.QuoteIdentifier(PositionColumn)))
	q = ApplyCriteria(q, criteria)

	var maxPos sql.NullInt64
	if err := q.Row().Scan(&maxPos); err != nil {
		return kernel.Position{}, false, err
	}

	metrics.PositionLookups.WithLabelValues(model, foundLabel(maxPos.Valid)).Inc()
	if !maxPos.Valid {
		return kernel.Position{}, false, nil
	}

	p, err := kernel.NewPosition(int(maxPos.Int64))
	if err != nil {
		return kernel.Position{}, false, err
	}
	return p, true, nil
}

// ApplyCriteria adds one equality (or IS NULL) condition per binding.
func ApplyCriteria(q *gorm.DB, criteria ordering.Criteria) *gorm.DB {
	for _, b := range criteria.Bindings() {
		col := pq.QuoteIdentifier(b.Field)
		if b.Value == nil {
			q = q.Where(col + " IS NULL")
			continue
		}
		q = q.Where(col+" = ?", b.Value)
	}
	return q
}

func (r *GormPositionRepository) checkModel(model string) error {
	if _, ok := r.models[model]; !ok {
		return fmt.Errorf("model %q is not ordered", model)
	}
	return nil
}

func foundLabel(found bool) string {
	if found {
		return "hit"
	}
	return "empty"
}
