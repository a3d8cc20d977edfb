package queries

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var ErrGetModuleContentsQueryIsNotConstructed = errors.New(
	"GetModuleContentsQuery must be created via NewGetModuleContentsQuery constructor",
)

// GetModuleContentsQuery lists the items of one module in position order.
type GetModuleContentsQuery struct {
	moduleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetModuleContentsQuery(moduleID kernel.UUID) (GetModuleContentsQuery, error) {
	if err := moduleID.Validate(); err != nil {
		return GetModuleContentsQuery{}, err
	}
	return GetModuleContentsQuery{moduleID: moduleID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetModuleContentsQuery) Validate() error {
	return q.guard.Validate(ErrGetModuleContentsQueryIsNotConstructed)
}

func (q GetModuleContentsQuery) ModuleID() kernel.UUID {
	return q.moduleID
}

// GetModuleContentsQueryResponse is one content row of a module. Kind holds
// the wire name of the content kind.
type GetModuleContentsQueryResponse struct {
	ID       kernel.UUID
	ModuleID kernel.UUID
	Kind     string
	Title    string
	Body     string
	Position int
}
