package commands

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
)

// SubmitShipmentCommandHandler creates InTransit shipments and hands them to
// the delivery dispatcher.
type SubmitShipmentCommandHandler struct {
	dispatcher DeliveryDispatcher
}

func NewSubmitShipmentCommandHandler(dispatcher DeliveryDispatcher) SubmitShipmentCommandHandler {
	return SubmitShipmentCommandHandler{dispatcher: dispatcher}
}

// Handle generates the shipment identifier, builds the shipment and starts
// its delivery. The returned id is not trackable until delivery completes.
func (h *SubmitShipmentCommandHandler) Handle(ctx context.Context, cmd SubmitShipmentCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		cmd.Sender(),
		cmd.Receiver(),
		cmd.Address(),
		cmd.Weight(),
		cmd.Category(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	h.dispatcher.Dispatch(ctx, s)
	return s.ID(), nil
}
