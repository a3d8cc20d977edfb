package commands

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var ErrUpdateModuleCommandIsNotConstructed = errors.New(
	"UpdateModuleCommand must be created via NewUpdateModuleCommand constructor",
)

// UpdateModuleCommand renames a module. Its position is not part of the
// command: an update never moves a module.
type UpdateModuleCommand struct { //nolint:recvcheck //using for validation
	moduleID    kernel.UUID
	title       string
	description string

	guard guard.ConstructorGuard
}

func NewUpdateModuleCommand(moduleID kernel.UUID, title, description string) (UpdateModuleCommand, error) {
	cmd := UpdateModuleCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.moduleID, moduleID),
		setTitle(&cmd.title, title),
	); err != nil {
		return UpdateModuleCommand{}, err
	}

	return cmd, nil
}

func (c UpdateModuleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateModuleCommandIsNotConstructed)
}

func (c UpdateModuleCommand) ModuleID() kernel.UUID {
	return c.moduleID
}

func (c UpdateModuleCommand) Title() string {
	return c.title
}

func (c UpdateModuleCommand) Description() string {
	return c.description
}
