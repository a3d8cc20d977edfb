package queries

import (
	"context"

	"catalog/internal/core/domain/model/content"
	"catalog/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetModuleContentsQueryHandler struct {
	db *gorm.DB
}

func NewGetModuleContentsQueryHandler(db *gorm.DB) GetModuleContentsQueryHandler {
	return GetModuleContentsQueryHandler{db: db}
}

// Handle returns the contents of the module ordered by position, then id.
func (h GetModuleContentsQueryHandler) Handle(
	ctx context.Context,
	query GetModuleContentsQuery,
) ([]GetModuleContentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := ensureExists(ctx, h.db, "modules", "module", query.ModuleID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			module_id,
			kind,
			title,
			body,
			position
		FROM contents
		WHERE module_id = ?
		ORDER BY position, id
	`, query.ModuleID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contents := make([]GetModuleContentsQueryResponse, 0)
	for rows.Next() {
		var (
			c            GetModuleContentsQueryResponse
			id, moduleID uuid.UUID
			kind         int
		)
		if err = rows.Scan(&id, &moduleID, &kind, &c.Title, &c.Body, &c.Position); err != nil {
			return nil, err
		}

		if c.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if c.ModuleID, err = kernel.UUIDFromBytes(moduleID[:]); err != nil {
			return nil, err
		}
		c.Kind = content.Kind(kind).String()
		contents = append(contents, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return contents, nil
}
