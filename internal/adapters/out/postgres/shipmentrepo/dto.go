// Package shipmentrepo persists shipments with GORM.
package shipmentrepo

import (
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO is the row layout of the shipments table. Seq preserves
// insertion order; cost is not stored.
type ShipmentDTO struct {
	Seq      uint64    `gorm:"primaryKey;autoIncrement"`
	ID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Sender   string
	Receiver string
	Address  string
	Weight   float64
	Category int `gorm:"type:smallint"`
	Status   int `gorm:"type:smallint;index"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:       s.ID().Raw(),
		Sender:   s.Sender(),
		Receiver: s.Receiver(),
		Address:  s.Address(),
		Weight:   s.Weight(),
		Category: int(s.Category()),
		Status:   int(s.Status()),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		dto.Sender,
		dto.Receiver,
		dto.Address,
		dto.Weight,
		shipment.Category(dto.Category),
		shipment.Status(dto.Status),
	)
}
