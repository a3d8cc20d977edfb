package commands

import (
	"context"

	"catalog/internal/core/domain/model/content"
)

// AddContentCommandHandler appends a content item to an existing module.
type AddContentCommandHandler struct {
	uowFactory ContentUoWFactory
}

func NewAddContentCommandHandler(uowFactory ContentUoWFactory) AddContentCommandHandler {
	return AddContentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the module exists, then adds the item at the given position
// or at the end of the module.
func (h *AddContentCommandHandler) Handle(ctx context.Context, cmd AddContentCommand) error {
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

	if _, err := uow.ModuleRepository().Get(ctx, cmd.ModuleID()); err != nil {
		return err
	}

	aggregate, err := content.NewContent(
		cmd.ContentID(),
		cmd.ModuleID(),
		cmd.Kind(),
		cmd.Title(),
		cmd.Body(),
		cmd.Position(),
	)
	if err != nil {
		return err
	}

	if err = uow.ContentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
