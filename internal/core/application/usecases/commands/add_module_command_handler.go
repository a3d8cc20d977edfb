package commands

import (
	"context"

	"catalog/internal/core/domain/model/module"
)

// AddModuleCommandHandler appends a module to an existing course.
//
// Example:
//
//	handler := NewAddModuleCommandHandler(uowFactory)
//	cmd, _ := NewAddModuleCommand(moduleID, courseID, "Testing", "", nil)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err // errs.ErrObjectNotFound when the course is unknown
//	}
type AddModuleCommandHandler struct {
	uowFactory ModuleUoWFactory
}

func NewAddModuleCommandHandler(uowFactory ModuleUoWFactory) AddModuleCommandHandler {
	return AddModuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the course exists, then adds the module. The module
// repository assigns the next position of the course when none was given.
func (h *AddModuleCommandHandler) Handle(ctx context.Context, cmd AddModuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CourseRepository().Get(ctx, cmd.CourseID()); err != nil {
		return err
	}

	aggregate, err := module.NewModule(
		cmd.ModuleID(),
		cmd.CourseID(),
		cmd.Title(),
		cmd.Description(),
		cmd.Position(),
	)
	if err != nil {
		return err
	}

	if err = uow.ModuleRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
