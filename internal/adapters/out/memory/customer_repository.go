package memory

import (
	"context"
	"slices"
	"sync"

	"courier/internal/core/domain/model/customer"
	"courier/internal/core/ports"
)

var _ ports.CustomerRepository = (*CustomerRepository)(nil)

type CustomerRepository struct {
	mu    sync.RWMutex
	items []customer.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{items: make([]customer.Customer, 0)}
}

func (r *CustomerRepository) Add(ctx context.Context, c customer.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, c)
	return nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
