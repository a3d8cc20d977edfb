package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"catalog/internal/core/domain/model/course"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/ordering"
	"catalog/internal/pkg/errs"
)

const (
	Model         = "contents"
	ScopeModuleID = "module_id"
)

var (
	ErrContentIsNotConstructed = errors.New("Content must be created via NewContent constructor")
	// Scope orders contents independently per module.
	Scope = ordering.MustScope(ScopeModuleID)
)

var _ ordering.Orderable = (*Content)(nil)

// Content is a single item of a module. Body holds the text of a Text item
// and an absolute URL for the other kinds.
type Content struct {
	id       kernel.UUID
	moduleID kernel.UUID
	kind     Kind
	title    string
	body     string
	position kernel.Position

	isConstructed bool
}

// NewContent validates all inputs. position may be unset.
func NewContent(
	id kernel.UUID,
	moduleID kernel.UUID,
	kind Kind,
	title string,
	body string,
	position kernel.Position,
) (*Content, error) {
	c := &Content{
		position:      position,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setModuleID(moduleID),
		c.setKind(kind),
		c.setTitle(title),
	); err != nil {
		return nil, err
	}

	if err := c.setBody(body); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreContent rebuilds a stored content item; it must carry a position.
func RestoreContent(
	id kernel.UUID,
	moduleID kernel.UUID,
	kind Kind,
	title string,
	body string,
	position kernel.Position,
) (*Content, error) {
	if err := position.Validate(); err != nil {
		return nil, err
	}
	return NewContent(id, moduleID, kind, title, body, position)
}

func (c *Content) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContentIsNotConstructed
	}
	return nil
}

func (c *Content) ID() kernel.UUID {
	return c.id
}

func (c *Content) ModuleID() kernel.UUID {
	return c.moduleID
}

func (c *Content) Kind() Kind {
	return c.kind
}

func (c *Content) Title() string {
	return c.title
}

func (c *Content) Body() string {
	return c.body
}

func (c *Content) Position() kernel.Position {
	return c.position
}

func (c *Content) AssignPosition(p kernel.Position) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if c.position.IsSet() && !c.position.IsEqual(p) {
		return fmt.Errorf("content %s already has %s", c.id, c.position)
	}
	c.position = p
	return nil
}

func (c *Content) ScopeValue(field string) (any, error) {
	if field == ScopeModuleID {
		return c.moduleID.Bytes(), nil
	}
	return nil, fmt.Errorf("content has no scope field %q", field)
}

func (c *Content) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Content) setModuleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("module id: %w", err)
	}
	c.moduleID = id
	return nil
}

func (c *Content) setKind(k Kind) error {
	if err := k.Validate(); err != nil {
		return err
	}
	c.kind = k
	return nil
}

func (c *Content) setTitle(title string) error {
	t, err := course.ValidateTitle(title)
	if err != nil {
		return err
	}
	c.title = t
	return nil
}

// setBody runs after setKind so the kind is known.
func (c *Content) setBody(body string) error {
	b := strings.TrimSpace(body)
	if b == "" {
		return errs.NewValueIsRequiredError("body")
	}
	if c.kind.HasURL() {
		u, err := url.Parse(b)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errs.NewValueIsInvalidErrorWithCause("body is invalid", fmt.Errorf("%s content needs an absolute URL", c.kind))
		}
	}
	c.body = b
	return nil
}
