package ports

import (
	"context"

	"courier/internal/core/domain/model/customer"
)

// CustomerRepository is the append-only customer collection.
type CustomerRepository interface {
	Add(ctx context.Context, c customer.Customer) error
	List(ctx context.Context) ([]customer.Customer, error)
	Count(ctx context.Context) (int, error)
}
