package memory

import (
	"context"
	"fmt"
	"sync"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

var _ ports.ShipmentRepository = (*ShipmentRepository)(nil)

// ShipmentRepository keeps shipments in insertion order. Stored values are
// copies, so callers can never mutate a shipment behind the lock.
type ShipmentRepository struct {
	mu    sync.RWMutex
	items []shipment.Shipment
	ids   map[kernel.UUID]struct{}
}

func NewShipmentRepository() *ShipmentRepository {
	return &ShipmentRepository{
		items: make([]shipment.Shipment, 0),
		ids:   make(map[kernel.UUID]struct{}),
	}
}

func (r *ShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[aggregate.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment", fmt.Errorf("%s is already stored", aggregate.ID()))
	}
	r.ids[aggregate.ID()] = struct{}{}
	r.items = append(r.items, *aggregate)
	return nil
}

// Get scans the collection in insertion order.
func (r *ShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID().IsEqual(id) {
			found := r.items[i]
			return &found, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("shipment", id.String())
}

func (r *ShipmentRepository) List(ctx context.Context) ([]*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*shipment.Shipment, 0, len(r.items))
	for i := range r.items {
		item := r.items[i]
		out = append(out, &item)
	}
	return out, nil
}

func (r *ShipmentRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
