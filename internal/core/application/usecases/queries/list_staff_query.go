package queries

import (
	"context"
	"errors"

	"courier/internal/core/ports"
	"courier/internal/pkg/guard"
)

var ErrListStaffQueryIsNotConstructed = errors.New(
	"ListStaffQuery must be created via NewListStaffQuery constructor",
)

type ListStaffQuery struct {
	guard guard.ConstructorGuard
}

func NewListStaffQuery() ListStaffQuery {
	return ListStaffQuery{guard: guard.NewConstructorGuard()}
}

func (q ListStaffQuery) Validate() error {
	return q.guard.Validate(ErrListStaffQueryIsNotConstructed)
}

type StaffView struct {
	Name string
	Role string
}

type ListStaffQueryResponse struct {
	Staff []StaffView
}

func (r ListStaffQueryResponse) IsEmpty() bool {
	return len(r.Staff) == 0
}

type ListStaffQueryHandler struct {
	staff ports.StaffRepository
}

func NewListStaffQueryHandler(store ports.RecordStore) ListStaffQueryHandler {
	return ListStaffQueryHandler{staff: store.StaffRepository()}
}

func (h ListStaffQueryHandler) Handle(ctx context.Context, query ListStaffQuery) (ListStaffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListStaffQueryResponse{}, err
	}

	items, err := h.staff.List(ctx)
	if err != nil {
		return ListStaffQueryResponse{}, err
	}

	views := make([]StaffView, 0, len(items))
	for _, s := range items {
		views = append(views, StaffView{Name: s.Name(), Role: s.Role()})
	}

	return ListStaffQueryResponse{Staff: views}, nil
}
