package modulerepo

import (
	"context"
	"errors"

	"catalog/internal/adapters/out/postgres/pgerr"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/module"
	"catalog/internal/core/domain/services"
	"catalog/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormModuleRepository implements ports.ModuleRepository.
type GormModuleRepository struct {
	db        *gorm.DB
	positions services.PositionStore
	assigner  services.PositionAssigner
	tracker   aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormModuleRepository creates a repository whose writes go through db.
// positions must use the same transaction as db for its scope locks to hold.
func NewGormModuleRepository(
	db *gorm.DB,
	positions services.PositionStore,
	tracker aggregateTracker,
) *GormModuleRepository {
	return &GormModuleRepository{
		db:        db,
		positions: positions,
		assigner:  services.NewPositionAssigner(module.Model, module.Scope),
		tracker:   tracker,
	}
}

// Add assigns a position when the module has none and inserts it.
// A position already taken in the course yields an errs.ConflictError.
func (r *GormModuleRepository) Add(ctx context.Context, aggregate *module.Module) error {
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

// Update writes title, description and position of an existing module.
func (r *GormModuleRepository) Update(ctx context.Context, aggregate *module.Module) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.assigner.PreSave(ctx, r.positions, aggregate, false); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ModuleDTO{}).
		Where("id = ?", dto.ID).
		Select("title", "description", "position").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, "position")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("module", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads a module by id.
func (r *GormModuleRepository) Get(ctx context.Context, id kernel.UUID) (*module.Module, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ModuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("module", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
