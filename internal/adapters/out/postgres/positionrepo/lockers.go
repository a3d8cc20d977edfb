package positionrepo

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"gorm.io/gorm"
)

// Release frees a scope lock. It is called once the transaction that took
// the lock has committed or rolled back.
type Release func(ctx context.Context) error

// ScopeLocker serialises position assignment for one scope key.
type ScopeLocker interface {
	Lock(ctx context.Context, db *gorm.DB, key string) (Release, error)
}

// AdvisoryLocker takes a transaction-level postgres advisory lock. The lock
// is released by postgres at commit or rollback, so Release is a no-op.
// Outside a transaction the lock only lasts for the statement and gives no
// protection.
type AdvisoryLocker struct{}

func NewAdvisoryLocker() AdvisoryLocker {
	return AdvisoryLocker{}
}

func (AdvisoryLocker) Lock(ctx context.Context, db *gorm.DB, key string) (Release, error) {
	if err := db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", AdvisoryKey(key)).Error; err != nil {
		return nil, err
	}
	return noRelease, nil
}

// AdvisoryKey folds a scope key into the bigint keyspace of pg advisory locks.
func AdvisoryKey(key string) int64 {
	return int64(xxhash.Sum64String(key)) //nolint:gosec // wrap-around is intended
}

// NoopLocker takes no lock: two concurrent inserts into one scope may read the
// same maximum. The unique index on (scope, position) then rejects the second.
type NoopLocker struct{}

func (NoopLocker) Lock(context.Context, *gorm.DB, string) (Release, error) {
	return noRelease, nil
}

func noRelease(context.Context) error {
	return nil
}
