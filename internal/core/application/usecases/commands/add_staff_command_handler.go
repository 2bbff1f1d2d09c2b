package commands

import (
	"context"

	"courier/internal/core/domain/model/staff"
	"courier/internal/core/ports"
)

type AddStaffCommandHandler struct {
	store ports.RecordStore
}

func NewAddStaffCommandHandler(store ports.RecordStore) AddStaffCommandHandler {
	return AddStaffCommandHandler{store: store}
}

func (h *AddStaffCommandHandler) Handle(ctx context.Context, cmd AddStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.StaffRepository().Add(ctx, staff.NewStaff(cmd.Name(), cmd.Role()))
}
