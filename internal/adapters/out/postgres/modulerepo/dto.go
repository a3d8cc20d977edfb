// Package modulerepo persists Module aggregates with GORM. Positions are
// assigned by the module position assigner right before each write.
package modulerepo

import (
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/module"

	"github.com/google/uuid"
)

// ModuleDTO is the row of the modules table. The unique index on
// (course_id, position) rejects two modules claiming one position of a course.
type ModuleDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_modules_course_position,priority:1"`
	Title       string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text"`
	Position    int       `gorm:"column:position;not null;uniqueIndex:idx_modules_course_position,priority:2"`
}

func (ModuleDTO) TableName() string {
	return module.Model
}

// fromDomain expects the position to be assigned already.
func fromDomain(m *module.Module) ModuleDTO {
	return ModuleDTO{
		ID:          m.ID().Bytes(),
		CourseID:    m.CourseID().Bytes(),
		Title:       m.Title(),
		Description: m.Description(),
		Position:    m.Position().Int(),
	}
}

func toDomain(dto ModuleDTO) (*module.Module, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	courseID, err := kernel.UUIDFromBytes(dto.CourseID[:])
	if err != nil {
		return nil, err
	}
	position, err := kernel.NewPosition(dto.Position)
	if err != nil {
		return nil, err
	}
	return module.RestoreModule(id, courseID, dto.Title, dto.Description, position)
}
