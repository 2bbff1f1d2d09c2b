package commands_test

import (
	"context"

	"courier/internal/core/domain/model/customer"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/model/staff"
	"courier/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}
func (m *MockShipmentRepository) List(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*shipment.Shipment)
	return items, args.Error(1)
}
func (m *MockShipmentRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]customer.Customer)
	return items, args.Error(1)
}
func (m *MockCustomerRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, s staff.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStaffRepository) List(ctx context.Context) ([]staff.Staff, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]staff.Staff)
	return items, args.Error(1)
}
func (m *MockStaffRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockRecordStore struct {
	shipments *MockShipmentRepository
	customers *MockCustomerRepository
	staff     *MockStaffRepository
}

func newMockRecordStore() *MockRecordStore {
	return &MockRecordStore{
		shipments: new(MockShipmentRepository),
		customers: new(MockCustomerRepository),
		staff:     new(MockStaffRepository),
	}
}

func (m *MockRecordStore) ShipmentRepository() ports.ShipmentRepository { return m.shipments }
func (m *MockRecordStore) CustomerRepository() ports.CustomerRepository { return m.customers }
func (m *MockRecordStore) StaffRepository() ports.StaffRepository       { return m.staff }

type MockDeliveryDispatcher struct{ mock.Mock }

func (m *MockDeliveryDispatcher) Dispatch(ctx context.Context, s *shipment.Shipment) {
	m.Called(ctx, s)
}
