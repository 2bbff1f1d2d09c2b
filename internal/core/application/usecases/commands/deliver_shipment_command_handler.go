package commands

import (
	"context"

	"courier/internal/core/ports"
)

// DeliverShipmentCommandHandler performs the single mutation of a shipment's
// life: InTransit becomes Delivered, then the shipment is published into the
// record store.
type DeliverShipmentCommandHandler struct {
	store ports.RecordStore
}

func NewDeliverShipmentCommandHandler(store ports.RecordStore) DeliverShipmentCommandHandler {
	return DeliverShipmentCommandHandler{store: store}
}

func (h *DeliverShipmentCommandHandler) Handle(ctx context.Context, cmd DeliverShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	// A cancelled delivery must leave the shipment InTransit.
	if err := ctx.Err(); err != nil {
		return err
	}

	s := cmd.Shipment()
	if err := s.Deliver(); err != nil {
		return err
	}

	return h.store.ShipmentRepository().Add(ctx, s)
}
