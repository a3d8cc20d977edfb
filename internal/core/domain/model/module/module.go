package module

import (
	"errors"
	"fmt"
	"strings"

	"catalog/internal/core/domain/model/course"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/ordering"
)

const (
	// Model is the table the position assigner counts modules in.
	Model = "modules"
	// ScopeCourseID is the column that partitions module positions.
	ScopeCourseID = "course_id"
)

var (
	ErrModuleIsNotConstructed = errors.New("Module must be created via NewModule constructor")
	// Scope orders modules independently per course.
	Scope = ordering.MustScope(ScopeCourseID)
)

var _ ordering.Orderable = (*Module)(nil)

// Module is a section of a course.
//
// Invariants:
//   - ID and CourseID are valid UUIDs
//   - Title is non-blank and at most course.TitleMaxLength runes
//   - Position, once set, is never cleared or recomputed
type Module struct {
	id          kernel.UUID
	courseID    kernel.UUID
	title       string
	description string
	position    kernel.Position

	isConstructed bool
}

// NewModule creates a module of course courseID. position may be unset, in
// which case it is assigned when the module is first saved.
//
// Example:
//
//	m, err := module.NewModule(kernel.NewUUID(), courseID, "Basics", "", kernel.Position{})
func NewModule(
	id kernel.UUID,
	courseID kernel.UUID,
	title string,
	description string,
	position kernel.Position,
) (*Module, error) {
	m := &Module{
		description:   strings.TrimSpace(description),
		position:      position,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setCourseID(courseID),
		m.setTitle(title),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreModule rebuilds a stored module; stored modules always have a position.
func RestoreModule(
	id kernel.UUID,
	courseID kernel.UUID,
	title string,
	description string,
	position kernel.Position,
) (*Module, error) {
	if err := position.Validate(); err != nil {
		return nil, err
	}
	return NewModule(id, courseID, title, description, position)
}

func (m *Module) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrModuleIsNotConstructed
	}
	return nil
}

func (m *Module) ID() kernel.UUID {
	return m.id
}

func (m *Module) CourseID() kernel.UUID {
	return m.courseID
}

func (m *Module) Title() string {
	return m.title
}

func (m *Module) Description() string {
	return m.description
}

// Position returns the module position; it is unset until the first save.
func (m *Module) Position() kernel.Position {
	return m.position
}

// AssignPosition sets the position of a module that has none.
func (m *Module) AssignPosition(p kernel.Position) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if m.position.IsSet() && !m.position.IsEqual(p) {
		return fmt.Errorf("module %s already has %s", m.id, m.position)
	}
	m.position = p
	return nil
}

// ScopeValue exposes the course id for the position scope.
func (m *Module) ScopeValue(field string) (any, error) {
	if field == ScopeCourseID {
		return m.courseID.Bytes(), nil
	}
	return nil, fmt.Errorf("module has no scope field %q", field)
}

// Rename changes title and description. The position is left as is.
func (m *Module) Rename(title, description string) error {
	if err := m.setTitle(title); err != nil {
		return err
	}
	m.description = strings.TrimSpace(description)
	return nil
}

func (m *Module) IsEqual(other *Module) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *Module) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Module) setCourseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("course id: %w", err)
	}
	m.courseID = id
	return nil
}

func (m *Module) setTitle(title string) error {
	t, err := course.ValidateTitle(title)
	if err != nil {
		return err
	}
	m.title = t
	return nil
}
