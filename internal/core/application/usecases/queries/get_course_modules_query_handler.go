package queries

import (
	"context"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourseModulesQueryHandler reads modules ordered by position. Rows that
// share a position (possible only if the unique index was dropped) are
// ordered by id so the result is stable.
type GetCourseModulesQueryHandler struct {
	db *gorm.DB
}

func NewGetCourseModulesQueryHandler(db *gorm.DB) GetCourseModulesQueryHandler {
	return GetCourseModulesQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError for an unknown course and an empty
// slice for a course without modules.
func (h GetCourseModulesQueryHandler) Handle(
	ctx context.Context,
	query GetCourseModulesQuery,
) ([]GetCourseModulesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := ensureExists(ctx, h.db, "courses", "course", query.CourseID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			course_id,
			title,
			description,
			position
		FROM modules
		WHERE course_id = ?
		ORDER BY position, id
	`, query.CourseID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	modules := make([]GetCourseModulesQueryResponse, 0)
	for rows.Next() {
		var (
			m            GetCourseModulesQueryResponse
			id, courseID uuid.UUID
		)
		if err = rows.Scan(&id, &courseID, &m.Title, &m.Description, &m.Position); err != nil {
			return nil, err
		}

		if m.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if m.CourseID, err = kernel.UUIDFromBytes(courseID[:]); err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return modules, nil
}

// ensureExists reports an ObjectNotFoundError when table has no row with id.
func ensureExists(ctx context.Context, db *gorm.DB, table, param string, id kernel.UUID) error {
	var count int64
	if err := db.WithContext(ctx).Table(table).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(param, id.String())
	}
	return nil
}
