package customer

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is an immutable contact record. It has no identifier; the store
// keeps customers in insertion order.
type Customer struct {
	name    string
	contact string

	guard guard.ConstructorGuard
}

// NewCustomer never fails: the desk records whatever the operator typed.
func NewCustomer(name, contact string) Customer {
	return Customer{
		name:    name,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Contact() string {
	return c.contact
}
