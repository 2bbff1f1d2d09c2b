package commands

import (
	"context"

	"courier/internal/core/domain/model/customer"
	"courier/internal/core/ports"
)

type AddCustomerCommandHandler struct {
	store ports.RecordStore
}

func NewAddCustomerCommandHandler(store ports.RecordStore) AddCustomerCommandHandler {
	return AddCustomerCommandHandler{store: store}
}

func (h *AddCustomerCommandHandler) Handle(ctx context.Context, cmd AddCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.CustomerRepository().Add(ctx, customer.NewCustomer(cmd.Name(), cmd.Contact()))
}
