package course

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
)

// TitleMaxLength bounds titles of courses, modules and contents alike.
const TitleMaxLength = 200

var ErrCourseIsNotConstructed = errors.New("Course must be created via NewCourse constructor")

// Course groups an ordered list of modules.
//
// Invariants:
//   - ID is a valid UUID
//   - Title is non-blank and at most TitleMaxLength runes
type Course struct {
	id       kernel.UUID
	title    string
	overview string

	isConstructed bool
}

// NewCourse validates all inputs and returns a new course.
//
// Example:
//
//	c, err := course.NewCourse(kernel.NewUUID(), "Django by example", "")
func NewCourse(id kernel.UUID, title, overview string) (*Course, error) {
	c := &Course{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setTitle(title),
	); err != nil {
		return nil, err
	}
	c.overview = strings.TrimSpace(overview)

	return c, nil
}

// RestoreCourse rebuilds a course loaded from storage.
func RestoreCourse(id kernel.UUID, title, overview string) (*Course, error) {
	return NewCourse(id, title, overview)
}

func (c *Course) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourseIsNotConstructed
	}
	return nil
}

func (c *Course) ID() kernel.UUID {
	return c.id
}

func (c *Course) Title() string {
	return c.title
}

func (c *Course) Overview() string {
	return c.overview
}

func (c *Course) IsEqual(other *Course) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Course) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Course) setTitle(title string) error {
	t, err := ValidateTitle(title)
	if err != nil {
		return err
	}
	c.title = t
	return nil
}

// ValidateTitle trims title and checks it against the shared title rules.
// Module and content titles follow the same rules.
func ValidateTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errs.NewValueIsRequiredError("title")
	}
	if n := utf8.RuneCountInString(t); n > TitleMaxLength {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"title is invalid",
			fmt.Errorf("%d characters exceed the limit of %d", n, TitleMaxLength),
		)
	}
	return t, nil
}
