// Package queries contains the read operations of the catalog. Handlers read
// straight from the database with raw SQL and return flat read models.
package queries

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var ErrGetCourseModulesQueryIsNotConstructed = errors.New(
	"GetCourseModulesQuery must be created via NewGetCourseModulesQuery constructor",
)

// GetCourseModulesQuery lists the modules of one course in position order.
//
// Example:
//
//	query, _ := NewGetCourseModulesQuery(courseID)
//	modules, err := handler.Handle(ctx, query)
//	for _, m := range modules {
//	    fmt.Printf("%d. %s\n", m.Position, m.Title)
//	}
type GetCourseModulesQuery struct {
	courseID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCourseModulesQuery(courseID kernel.UUID) (GetCourseModulesQuery, error) {
	if err := courseID.Validate(); err != nil {
		return GetCourseModulesQuery{}, err
	}
	return GetCourseModulesQuery{courseID: courseID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourseModulesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourseModulesQueryIsNotConstructed)
}

func (q GetCourseModulesQuery) CourseID() kernel.UUID {
	return q.courseID
}

// GetCourseModulesQueryResponse is one module row of a course.
type GetCourseModulesQueryResponse struct {
	ID          kernel.UUID
	CourseID    kernel.UUID
	Title       string
	Description string
	Position    int
}
