package commands

import (
	"errors"

	"catalog/internal/core/domain/model/content"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var ErrAddContentCommandIsNotConstructed = errors.New(
	"AddContentCommand must be created via NewAddContentCommand constructor",
)

// AddContentCommand appends an item to a module. kind is parsed from its
// wire name ("text", "video", "image", "file").
//
// Example:
//
//	cmd, err := NewAddContentCommand(kernel.NewUUID(), moduleID, "video", "Intro",
//	    "https://cdn.example.com/intro.mp4", nil)
type AddContentCommand struct { //nolint:recvcheck //using for validation
	contentID kernel.UUID
	moduleID  kernel.UUID
	kind      content.Kind
	title     string
	body      string
	position  kernel.Position

	guard guard.ConstructorGuard
}

func NewAddContentCommand(
	contentID kernel.UUID,
	moduleID kernel.UUID,
	kind string,
	title string,
	body string,
	position *int,
) (AddContentCommand, error) {
	cmd := AddContentCommand{
		body:  body,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.contentID, contentID),
		setID(&cmd.moduleID, moduleID),
		cmd.setKind(kind),
		setTitle(&cmd.title, title),
		setPosition(&cmd.position, position),
	); err != nil {
		return AddContentCommand{}, err
	}

	return cmd, nil
}

func (c AddContentCommand) Validate() error {
	return c.guard.Validate(ErrAddContentCommandIsNotConstructed)
}

func (c AddContentCommand) ContentID() kernel.UUID {
	return c.contentID
}

func (c AddContentCommand) ModuleID() kernel.UUID {
	return c.moduleID
}

func (c AddContentCommand) Kind() content.Kind {
	return c.kind
}

func (c AddContentCommand) Title() string {
	return c.title
}

func (c AddContentCommand) Body() string {
	return c.body
}

func (c AddContentCommand) Position() kernel.Position {
	return c.position
}

func (c *AddContentCommand) setKind(kind string) error {
	k, err := content.ParseKind(kind)
	if err != nil {
		return err
	}
	c.kind = k
	return nil
}
