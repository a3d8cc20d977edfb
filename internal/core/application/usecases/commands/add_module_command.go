package commands

import (
	"errors"
	"strings"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

var ErrAddModuleCommandIsNotConstructed = errors.New(
	"AddModuleCommand must be created via NewAddModuleCommand constructor",
)

// AddModuleCommand appends a module to a course. A nil position asks for the
// next free position of the course; an explicit one is stored as given.
//
// Example:
//
//	cmd, _ := NewAddModuleCommand(kernel.NewUUID(), courseID, "Basics", "", nil)
//	err := handler.Handle(ctx, cmd) // position 0 for the first module
type AddModuleCommand struct { //nolint:recvcheck //using for validation
	moduleID    kernel.UUID
	courseID    kernel.UUID
	title       string
	description string
	position    kernel.Position

	guard guard.ConstructorGuard
}

func NewAddModuleCommand(
	moduleID kernel.UUID,
	courseID kernel.UUID,
	title string,
	description string,
	position *int,
) (AddModuleCommand, error) {
	cmd := AddModuleCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.moduleID, moduleID),
		setID(&cmd.courseID, courseID),
		setTitle(&cmd.title, title),
		setPosition(&cmd.position, position),
	); err != nil {
		return AddModuleCommand{}, err
	}

	return cmd, nil
}

func (c AddModuleCommand) Validate() error {
	return c.guard.Validate(ErrAddModuleCommandIsNotConstructed)
}

func (c AddModuleCommand) ModuleID() kernel.UUID {
	return c.moduleID
}

func (c AddModuleCommand) CourseID() kernel.UUID {
	return c.courseID
}

func (c AddModuleCommand) Title() string {
	return c.title
}

func (c AddModuleCommand) Description() string {
	return c.description
}

// Position is unset when the caller left the position to the catalog.
func (c AddModuleCommand) Position() kernel.Position {
	return c.position
}

func setID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}

func setTitle(dst *string, title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	*dst = title
	return nil
}

func setPosition(dst *kernel.Position, v *int) error {
	p, err := kernel.PositionFromPtr(v)
	if err != nil {
		return err
	}
	*dst = p
	return nil
}
