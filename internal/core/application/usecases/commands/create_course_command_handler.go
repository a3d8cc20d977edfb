package commands

import (
	"context"

	"catalog/internal/core/domain/model/course"
)

// CreateCourseCommandHandler stores a new course.
type CreateCourseCommandHandler struct {
	uowFactory CourseUoWFactory
}

func NewCreateCourseCommandHandler(uowFactory CourseUoWFactory) CreateCourseCommandHandler {
	return CreateCourseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the course aggregate and persists it in one transaction.
func (h *CreateCourseCommandHandler) Handle(ctx context.Context, cmd CreateCourseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := course.NewCourse(cmd.CourseID(), cmd.Title(), cmd.Overview())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourseRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
