package commands

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrAddStaffCommandIsNotConstructed = errors.New(
	"AddStaffCommand must be created via NewAddStaffCommand constructor",
)

type AddStaffCommand struct {
	name string
	role string

	guard guard.ConstructorGuard
}

func NewAddStaffCommand(name, role string) AddStaffCommand {
	return AddStaffCommand{
		name:  name,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}
}

func (c AddStaffCommand) Validate() error {
	return c.guard.Validate(ErrAddStaffCommandIsNotConstructed)
}

func (c AddStaffCommand) Name() string {
	return c.name
}

func (c AddStaffCommand) Role() string {
	return c.role
}
