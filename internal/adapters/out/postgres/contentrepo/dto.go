// Package contentrepo persists Content aggregates with GORM.
package contentrepo

import (
	"catalog/internal/core/domain/model/content"
	"catalog/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ContentDTO is the row of the contents table; positions are unique per module.
type ContentDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ModuleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_contents_module_position,priority:1"`
	Kind     int       `gorm:"type:smallint;not null"`
	Title    string    `gorm:"size:200;not null"`
	Body     string    `gorm:"type:text;not null"`
	Position int       `gorm:"column:position;not null;uniqueIndex:idx_contents_module_position,priority:2"`
}

func (ContentDTO) TableName() string {
	return content.Model
}

func fromDomain(c *content.Content) ContentDTO {
	return ContentDTO{
		ID:       c.ID().Bytes(),
		ModuleID: c.ModuleID().Bytes(),
		Kind:     int(c.Kind()),
		Title:    c.Title(),
		Body:     c.Body(),
		Position: c.Position().Int(),
	}
}

func toDomain(dto ContentDTO) (*content.Content, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	moduleID, err := kernel.UUIDFromBytes(dto.ModuleID[:])
	if err != nil {
		return nil, err
	}
	position, err := kernel.NewPosition(dto.Position)
	if err != nil {
		return nil, err
	}
	return content.RestoreContent(id, moduleID, content.Kind(dto.Kind), dto.Title, dto.Body, position)
}
