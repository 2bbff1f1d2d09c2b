package queries

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery looks a shipment up by the identifier the caller typed.
// The raw string is kept as is: a malformed id simply tracks nothing.
type TrackShipmentQuery struct {
	shipmentID string

	guard guard.ConstructorGuard
}

func NewTrackShipmentQuery(shipmentID string) TrackShipmentQuery {
	return TrackShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}
}

func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

func (q TrackShipmentQuery) ShipmentID() string {
	return q.shipmentID
}
