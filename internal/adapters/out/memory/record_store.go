// Package memory is the default record store: three lock-guarded slices that
// live for the lifetime of the process.
package memory

import (
	"courier/internal/core/ports"
)

var _ ports.RecordStore = (*RecordStore)(nil)

// RecordStore holds the shipment, customer and staff collections in memory.
// All data is lost when the process exits.
type RecordStore struct {
	shipments *ShipmentRepository
	customers *CustomerRepository
	staff     *StaffRepository
}

func NewRecordStore() *RecordStore {
	return &RecordStore{
		shipments: NewShipmentRepository(),
		customers: NewCustomerRepository(),
		staff:     NewStaffRepository(),
	}
}

func (s *RecordStore) ShipmentRepository() ports.ShipmentRepository {
	return s.shipments
}

func (s *RecordStore) CustomerRepository() ports.CustomerRepository {
	return s.customers
}

func (s *RecordStore) StaffRepository() ports.StaffRepository {
	return s.staff
}
