// Package courserepo persists Course aggregates with GORM.
package courserepo

import (
	"catalog/internal/core/domain/model/course"
	"catalog/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourseDTO is the row of the courses table.
type CourseDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title    string    `gorm:"size:200;not null"`
	Overview string    `gorm:"type:text"`
}

func (CourseDTO) TableName() string {
	return "courses"
}

func fromDomain(c *course.Course) CourseDTO {
	return CourseDTO{
		ID:       c.ID().Bytes(),
		Title:    c.Title(),
		Overview: c.Overview(),
	}
}

func toDomain(dto CourseDTO) (*course.Course, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return course.RestoreCourse(id, dto.Title, dto.Overview)
}
