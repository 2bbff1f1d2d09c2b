package ports

import (
	"context"

	"courier/internal/core/domain/model/staff"
)

// StaffRepository is the append-only staff collection.
type StaffRepository interface {
	Add(ctx context.Context, s staff.Staff) error
	List(ctx context.Context) ([]staff.Staff, error)
	Count(ctx context.Context) (int, error)
}
