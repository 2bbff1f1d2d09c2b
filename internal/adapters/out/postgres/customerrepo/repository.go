// Package customerrepo persists customers with GORM.
package customerrepo

import (
	"context"

	"courier/internal/core/domain/model/customer"
	"courier/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.CustomerRepository = (*GormCustomerRepository)(nil)

// CustomerDTO is the row layout of the customers table. Customers have no
// identity of their own; Seq only records insertion order.
type CustomerDTO struct {
	Seq     uint64 `gorm:"primaryKey;autoIncrement"`
	Name    string
	Contact string
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Add(ctx context.Context, c customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := CustomerDTO{Name: c.Name(), Contact: c.Contact()}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCustomerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, customer.NewCustomer(dto.Name, dto.Contact))
	}
	return out, nil
}

func (r *GormCustomerRepository) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&CustomerDTO{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}
