package contentrepo

import (
	"context"
	"errors"

	"catalog/internal/adapters/out/postgres/pgerr"
	"catalog/internal/core/domain/model/content"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/services"
	"catalog/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContentRepository implements ports.ContentRepository.
type GormContentRepository struct {
	db        *gorm.DB
	positions services.PositionStore
	assigner  services.PositionAssigner
	tracker   aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormContentRepository(
	db *gorm.DB,
	positions services.PositionStore,
	tracker aggregateTracker,
) *GormContentRepository {
	return &GormContentRepository{
		db:        db,
		positions: positions,
		assigner:  services.NewPositionAssigner(content.Model, content.Scope),
		tracker:   tracker,
	}
}

// Add assigns the next position of the module when none is set, then inserts.
func (r *GormContentRepository) Add(ctx context.Context, aggregate *content.Content) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.assigner.PreSave(ctx, r.positions, aggregate, true); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "position")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormContentRepository) Get(ctx context.Context, id kernel.UUID) (*content.Content, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("content", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
