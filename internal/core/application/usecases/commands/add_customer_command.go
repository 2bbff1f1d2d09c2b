package commands

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrAddCustomerCommandIsNotConstructed = errors.New(
	"AddCustomerCommand must be created via NewAddCustomerCommand constructor",
)

// AddCustomerCommand registers a customer. No field is validated.
type AddCustomerCommand struct {
	name    string
	contact string

	guard guard.ConstructorGuard
}

func NewAddCustomerCommand(name, contact string) AddCustomerCommand {
	return AddCustomerCommand{
		name:    name,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c AddCustomerCommand) Validate() error {
	return c.guard.Validate(ErrAddCustomerCommandIsNotConstructed)
}

func (c AddCustomerCommand) Name() string {
	return c.name
}

func (c AddCustomerCommand) Contact() string {
	return c.contact
}
