package commands

import (
	"errors"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var ErrSubmitShipmentCommandIsNotConstructed = errors.New(
	"SubmitShipmentCommand must be created via NewSubmitShipmentCommand constructor",
)

// SubmitShipmentCommand asks for a new shipment to be created and sent out
// for delivery.
//
// Example:
//
//	weight, err := shipment.ParseWeight(form.Weight)
//	if err != nil {
//	    return err // InvalidInput
//	}
//	cmd, err := NewSubmitShipmentCommand("A", "B", "1 Main St", weight, shipment.Local)
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type SubmitShipmentCommand struct { //nolint:recvcheck //using for validation
	sender   string
	receiver string
	address  string
	weight   float64
	category shipment.Category

	guard guard.ConstructorGuard
}

// NewSubmitShipmentCommand validates weight and category. Names and address
// are taken as typed.
func NewSubmitShipmentCommand(
	sender, receiver, address string,
	weight float64,
	category shipment.Category,
) (SubmitShipmentCommand, error) {
	cmd := SubmitShipmentCommand{
		sender:   sender,
		receiver: receiver,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWeight(weight),
		cmd.setCategory(category),
	); err != nil {
		return SubmitShipmentCommand{}, err
	}

	return cmd, nil
}

func (c SubmitShipmentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitShipmentCommandIsNotConstructed)
}

func (c SubmitShipmentCommand) Sender() string {
	return c.sender
}

func (c SubmitShipmentCommand) Receiver() string {
	return c.receiver
}

func (c SubmitShipmentCommand) Address() string {
	return c.address
}

func (c SubmitShipmentCommand) Weight() float64 {
	return c.weight
}

func (c SubmitShipmentCommand) Category() shipment.Category {
	return c.category
}

func (c *SubmitShipmentCommand) setWeight(weight float64) error {
	if err := shipment.ValidateWeight(weight); err != nil {
		return err
	}
	c.weight = weight
	return nil
}

func (c *SubmitShipmentCommand) setCategory(category shipment.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}
