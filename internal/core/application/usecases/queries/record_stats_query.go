package queries

import (
	"context"
	"errors"

	"courier/internal/core/ports"
	"courier/internal/pkg/guard"
)

var ErrRecordStatsQueryIsNotConstructed = errors.New(
	"RecordStatsQuery must be created via NewRecordStatsQuery constructor",
)

// RecordStatsQuery counts the records held by each collection.
type RecordStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewRecordStatsQuery() RecordStatsQuery {
	return RecordStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q RecordStatsQuery) Validate() error {
	return q.guard.Validate(ErrRecordStatsQueryIsNotConstructed)
}

type RecordStatsQueryResponse struct {
	Shipments int
	Customers int
	Staff     int
}

type RecordStatsQueryHandler struct {
	store ports.RecordStore
}

func NewRecordStatsQueryHandler(store ports.RecordStore) RecordStatsQueryHandler {
	return RecordStatsQueryHandler{store: store}
}

func (h RecordStatsQueryHandler) Handle(ctx context.Context, query RecordStatsQuery) (RecordStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return RecordStatsQueryResponse{}, err
	}

	shipments, err := h.store.ShipmentRepository().Count(ctx)
	if err != nil {
		return RecordStatsQueryResponse{}, err
	}
	customers, err := h.store.CustomerRepository().Count(ctx)
	if err != nil {
		return RecordStatsQueryResponse{}, err
	}
	staff, err := h.store.StaffRepository().Count(ctx)
	if err != nil {
		return RecordStatsQueryResponse{}, err
	}

	return RecordStatsQueryResponse{Shipments: shipments, Customers: customers, Staff: staff}, nil
}
