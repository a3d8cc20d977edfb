package commands

import (
	"errors"
	"strings"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

var ErrCreateCourseCommandIsNotConstructed = errors.New(
	"CreateCourseCommand must be created via NewCreateCourseCommand constructor",
)

// CreateCourseCommand registers a new, empty course.
//
// Example:
//
//	cmd, err := NewCreateCourseCommand(kernel.NewUUID(), "Go in practice", "")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateCourseCommand struct { //nolint:recvcheck //using for validation
	courseID kernel.UUID
	title    string
	overview string

	guard guard.ConstructorGuard
}

func NewCreateCourseCommand(courseID kernel.UUID, title, overview string) (CreateCourseCommand, error) {
	cmd := CreateCourseCommand{
		overview: overview,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourseID(courseID),
		cmd.setTitle(title),
	); err != nil {
		return CreateCourseCommand{}, err
	}

	return cmd, nil
}

func (c CreateCourseCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourseCommandIsNotConstructed)
}

func (c CreateCourseCommand) CourseID() kernel.UUID {
	return c.courseID
}

func (c CreateCourseCommand) Title() string {
	return c.title
}

func (c CreateCourseCommand) Overview() string {
	return c.overview
}

func (c *CreateCourseCommand) setCourseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courseID = id
	return nil
}

func (c *CreateCourseCommand) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}
