// Package queries contains read operations over the record store.
// Queries return read models copied out of the store, never the stored
// aggregates themselves.
package queries

import (
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
)

// ShipmentView is the full detail of a tracked shipment, cost included.
type ShipmentView struct {
	ID       kernel.UUID
	Sender   string
	Receiver string
	Address  string
	Weight   float64
	Category shipment.Category
	Status   shipment.Status
	Cost     float64
}

func newShipmentView(s *shipment.Shipment) ShipmentView {
	return ShipmentView{
		ID:       s.ID(),
		Sender:   s.Sender(),
		Receiver: s.Receiver(),
		Address:  s.Address(),
		Weight:   s.Weight(),
		Category: s.Category(),
		Status:   s.Status(),
		Cost:     s.Cost(),
	}
}
