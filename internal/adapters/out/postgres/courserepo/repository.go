package courserepo

import (
	"context"
	"errors"

	"catalog/internal/core/domain/model/course"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourseRepository implements ports.CourseRepository.
type GormCourseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCourseRepository(db *gorm.DB, tracker aggregateTracker) *GormCourseRepository {
	return &GormCourseRepository{db: db, tracker: tracker}
}

// Add inserts a new course.
func (r *GormCourseRepository) Add(ctx context.Context, aggregate *course.Course) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads a course by id.
func (r *GormCourseRepository) Get(ctx context.Context, id kernel.UUID) (*course.Course, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("course", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
