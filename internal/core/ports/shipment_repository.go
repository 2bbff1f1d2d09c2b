// Package ports defines the record store contracts between the courier core
// and its storage adapters.
package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
)

// ShipmentRepository is the shipment collection of the record store.
// Shipments are never removed.
type ShipmentRepository interface {
	// Add appends a shipment. The shipment must be constructed and must not
	// already be stored.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get returns the shipment with the given id, or an
	// errs.ObjectNotFoundError when no shipment matches.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// List returns every stored shipment in insertion order. An empty store
	// yields an empty, non-nil slice.
	List(ctx context.Context) ([]*shipment.Shipment, error)

	// Count reports how many shipments are stored.
	Count(ctx context.Context) (int, error)
}
