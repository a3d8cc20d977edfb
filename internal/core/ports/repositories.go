// Package ports defines the persistence contracts of the catalog core.
// Adapters in internal/adapters/out implement them; command handlers only
// see these interfaces.
package ports

import (
	"context"

	"catalog/internal/core/domain/model/content"
	"catalog/internal/core/domain/model/course"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/module"
	"catalog/internal/core/domain/services"
)

// CourseRepository stores Course aggregates.
type CourseRepository interface {
	Add(ctx context.Context, aggregate *course.Course) error

	// Get returns an ObjectNotFoundError when no course has id.
	Get(ctx context.Context, id kernel.UUID) (*course.Course, error)
}

// ModuleRepository stores Module aggregates. Add and Update run the module
// position assigner before writing, so an unset position is filled in.
type ModuleRepository interface {
	Add(ctx context.Context, aggregate *module.Module) error
	Update(ctx context.Context, aggregate *module.Module) error
	Get(ctx context.Context, id kernel.UUID) (*module.Module, error)
}

// ContentRepository stores Content aggregates; Add runs the content position
// assigner before writing.
type ContentRepository interface {
	Add(ctx context.Context, aggregate *content.Content) error
	Get(ctx context.Context, id kernel.UUID) (*content.Content, error)
}

// PositionRepository answers the max-position queries of the assigner and
// holds the per-scope locks that keep concurrent assigners apart.
type PositionRepository interface {
	services.PositionStore
}
