package queries

import (
	"context"
	"errors"

	"courier/internal/core/ports"
	"courier/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

type ListShipmentsQuery struct {
	guard guard.ConstructorGuard
}

func NewListShipmentsQuery() ListShipmentsQuery {
	return ListShipmentsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// ListShipmentsQueryResponse holds every delivered shipment in insertion
// order. IsEmpty is the explicit "no shipments found" indicator.
type ListShipmentsQueryResponse struct {
	Shipments []ShipmentView
}

func (r ListShipmentsQueryResponse) IsEmpty() bool {
	return len(r.Shipments) == 0
}

type ListShipmentsQueryHandler struct {
	shipments ports.ShipmentRepository
}

func NewListShipmentsQueryHandler(store ports.RecordStore) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{shipments: store.ShipmentRepository()}
}

func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) (ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	items, err := h.shipments.List(ctx)
	if err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	views := make([]ShipmentView, 0, len(items))
	for _, s := range items {
		views = append(views, newShipmentView(s))
	}

	return ListShipmentsQueryResponse{Shipments: views}, nil
}
