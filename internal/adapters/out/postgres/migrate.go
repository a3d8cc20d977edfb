package postgres

import (
	"catalog/internal/adapters/out/postgres/contentrepo"
	"catalog/internal/adapters/out/postgres/courserepo"
	"catalog/internal/adapters/out/postgres/modulerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the catalog tables, including the
// (scope, position) unique indexes of the ordered tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&courserepo.CourseDTO{},
		&modulerepo.ModuleDTO{},
		&contentrepo.ContentDTO{},
	)
}
