package commands

import (
	"errors"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrDeliverShipmentCommandIsNotConstructed = errors.New(
	"DeliverShipmentCommand must be created via NewDeliverShipmentCommand constructor",
)

// DeliverShipmentCommand completes a shipment whose delivery delay elapsed.
type DeliverShipmentCommand struct {
	shipment *shipment.Shipment

	guard guard.ConstructorGuard
}

func NewDeliverShipmentCommand(s *shipment.Shipment) (DeliverShipmentCommand, error) {
	if s == nil {
		return DeliverShipmentCommand{}, errs.NewValueIsRequiredError("shipment")
	}
	if err := s.Validate(); err != nil {
		return DeliverShipmentCommand{}, err
	}

	return DeliverShipmentCommand{
		shipment: s,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeliverShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeliverShipmentCommandIsNotConstructed)
}

func (c DeliverShipmentCommand) Shipment() *shipment.Shipment {
	return c.shipment
}
