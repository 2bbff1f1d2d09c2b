package memory

import (
	"context"
	"slices"
	"sync"

	"courier/internal/core/domain/model/staff"
	"courier/internal/core/ports"
)

var _ ports.StaffRepository = (*StaffRepository)(nil)

type StaffRepository struct {
	mu    sync.RWMutex
	items []staff.Staff
}

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{items: make([]staff.Staff, 0)}
}

func (r *StaffRepository) Add(ctx context.Context, s staff.Staff) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, s)
	return nil
}

func (r *StaffRepository) List(ctx context.Context) ([]staff.Staff, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

func (r *StaffRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
