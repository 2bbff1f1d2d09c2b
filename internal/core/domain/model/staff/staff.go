// Package staff models the people working the courier desk.
package staff

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")

// Staff is an immutable name and role pair.
type Staff struct {
	name string
	role string

	guard guard.ConstructorGuard
}

func NewStaff(name, role string) Staff {
	return Staff{
		name:  name,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}
}

func (s Staff) Validate() error {
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

func (s Staff) Name() string {
	return s.name
}

func (s Staff) Role() string {
	return s.role
}
