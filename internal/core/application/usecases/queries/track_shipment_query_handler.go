package queries

import (
	"context"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// TrackShipmentQueryHandler returns the detail of one delivered shipment.
//
// Example:
//
//	view, err := handler.Handle(ctx, NewTrackShipmentQuery(id))
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("Shipment not found.")
//	}
type TrackShipmentQueryHandler struct {
	shipments ports.ShipmentRepository
}

func NewTrackShipmentQueryHandler(store ports.RecordStore) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{shipments: store.ShipmentRepository()}
}

// Handle answers errs.ObjectNotFoundError both for unknown and for
// malformed identifiers.
func (h TrackShipmentQueryHandler) Handle(ctx context.Context, query TrackShipmentQuery) (ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return ShipmentView{}, err
	}

	raw := strings.TrimSpace(query.ShipmentID())
	id, err := kernel.ParseUUID(raw)
	if err != nil || id.Validate() != nil {
		return ShipmentView{}, errs.NewObjectNotFoundError("shipment", raw)
	}

	s, err := h.shipments.Get(ctx, id)
	if err != nil {
		return ShipmentView{}, err
	}

	return newShipmentView(s), nil
}
