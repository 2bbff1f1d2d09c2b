// Package staffrepo persists staff members with GORM.
package staffrepo

import (
	"context"

	"courier/internal/core/domain/model/staff"
	"courier/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.StaffRepository = (*GormStaffRepository)(nil)

type StaffDTO struct {
	Seq  uint64 `gorm:"primaryKey;autoIncrement"`
	Name string
	Role string
}

func (StaffDTO) TableName() string {
	return "staff"
}

type GormStaffRepository struct {
	db *gorm.DB
}

func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

func (r *GormStaffRepository) Add(ctx context.Context, s staff.Staff) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := StaffDTO{Name: s.Name(), Role: s.Role()}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormStaffRepository) List(ctx context.Context) ([]staff.Staff, error) {
	var dtos []StaffDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]staff.Staff, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, staff.NewStaff(dto.Name, dto.Role))
	}
	return out, nil
}

func (r *GormStaffRepository) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&StaffDTO{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}
