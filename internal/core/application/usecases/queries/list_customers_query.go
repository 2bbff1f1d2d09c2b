package queries

import (
	"context"
	"errors"

	"courier/internal/core/ports"
	"courier/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

type CustomerView struct {
	Name    string
	Contact string
}

type ListCustomersQueryResponse struct {
	Customers []CustomerView
}

func (r ListCustomersQueryResponse) IsEmpty() bool {
	return len(r.Customers) == 0
}

type ListCustomersQueryHandler struct {
	customers ports.CustomerRepository
}

func NewListCustomersQueryHandler(store ports.RecordStore) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{customers: store.CustomerRepository()}
}

func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) (ListCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCustomersQueryResponse{}, err
	}

	items, err := h.customers.List(ctx)
	if err != nil {
		return ListCustomersQueryResponse{}, err
	}

	views := make([]CustomerView, 0, len(items))
	for _, c := range items {
		views = append(views, CustomerView{Name: c.Name(), Contact: c.Contact()})
	}

	return ListCustomersQueryResponse{Customers: views}, nil
}
