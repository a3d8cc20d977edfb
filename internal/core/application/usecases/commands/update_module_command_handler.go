package commands

import (
	"context"
)

// UpdateModuleCommandHandler loads a module, renames it and saves it back.
// The save runs the position hook in update mode, which leaves the stored
// position untouched.
type UpdateModuleCommandHandler struct {
	uowFactory ModuleUoWFactory
}

func NewUpdateModuleCommandHandler(uowFactory ModuleUoWFactory) UpdateModuleCommandHandler {
	return UpdateModuleCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateModuleCommandHandler) Handle(ctx context.Context, cmd UpdateModuleCommand) error {
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

	moduleRepo := uow.ModuleRepository()
	aggregate, err := moduleRepo.Get(ctx, cmd.ModuleID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.Title(), cmd.Description()); err != nil {
		return err
	}

	if err = moduleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
