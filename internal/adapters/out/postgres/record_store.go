// Package postgres provides the GORM-backed record store, selected with
// STORE_DRIVER=postgres.
//
// Usage:
//
//	db, err := postgres.Open(dsn)
//	if err != nil {
//	    return err
//	}
//	if err = postgres.Migrate(ctx, db); err != nil {
//	    return err
//	}
//	store := postgres.NewGormRecordStore(db)
//
// Every repository shares the *gorm.DB connection pool, which is safe for
// concurrent use. Each Add is a single INSERT, so concurrent delivery
// workers never observe a half-written shipment.
package postgres

import (
	"context"
	"fmt"

	"courier/internal/adapters/out/postgres/customerrepo"
	"courier/internal/adapters/out/postgres/shipmentrepo"
	"courier/internal/adapters/out/postgres/staffrepo"
	"courier/internal/core/ports"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ ports.RecordStore = (*GormRecordStore)(nil)

// Open connects to postgres. TranslateError is enabled so unique violations
// surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the shipments, customers and staff tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&customerrepo.CustomerDTO{},
		&staffrepo.StaffDTO{},
	); err != nil {
		return fmt.Errorf("migrate record store: %w", err)
	}
	return nil
}

// GormRecordStore hands out repositories bound to one connection pool.
type GormRecordStore struct {
	shipments *shipmentrepo.GormShipmentRepository
	customers *customerrepo.GormCustomerRepository
	staff     *staffrepo.GormStaffRepository
}

func NewGormRecordStore(db *gorm.DB) *GormRecordStore {
	return &GormRecordStore{
		shipments: shipmentrepo.NewGormShipmentRepository(db),
		customers: customerrepo.NewGormCustomerRepository(db),
		staff:     staffrepo.NewGormStaffRepository(db),
	}
}

func (s *GormRecordStore) ShipmentRepository() ports.ShipmentRepository {
	return s.shipments
}

func (s *GormRecordStore) CustomerRepository() ports.CustomerRepository {
	return s.customers
}

func (s *GormRecordStore) StaffRepository() ports.StaffRepository {
	return s.staff
}
