// file: internals/features/school/attendance/statuses/service/status_store.go
package service

import (
	"context"

	"gorm.io/gorm"

	statmodel "sekolahku_backend/internals/features/school/attendance/statuses/model"
)

// StatusStore: akses katalog status. Dipisah sebagai interface supaya
// service bisa dites tanpa DB.
type StatusStore interface {
	// ListAllowedByRole mengembalikan status aktif yang di-grant ke role,
	// urut attendance_status_order. Slice kosong = role tanpa grant.
	ListAllowedByRole(ctx context.Context, roleID int) ([]statmodel.AttendanceStatusModel, error)

	// ListActive mengembalikan semua status aktif tanpa filter role.
	ListActive(ctx context.Context) ([]statmodel.AttendanceStatusModel, error)
}

type GormStatusStore struct {
	DB *gorm.DB
}

func NewGormStatusStore(db *gorm.DB) *GormStatusStore {
	return &GormStatusStore{DB: db}
}

func (s *GormStatusStore) ListAllowedByRole(ctx context.Context, roleID int) ([]statmodel.AttendanceStatusModel, error) {
	var rows []statmodel.AttendanceStatusModel
	err := s.DB.WithContext(ctx).
		Model(&statmodel.AttendanceStatusModel{}).
		Joins("JOIN role_attendance_statuses ras ON ras.role_attendance_status_status_id = attendance_statuses.attendance_status_id").
		Where("ras.role_attendance_status_role_id = ?", roleID).
		Where("attendance_statuses.attendance_status_is_active = TRUE").
		Order("attendance_statuses.attendance_status_order ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStatusStore) ListActive(ctx context.Context) ([]statmodel.AttendanceStatusModel, error) {
	var rows []statmodel.AttendanceStatusModel
	err := s.DB.WithContext(ctx).
		Where("attendance_status_is_active = TRUE").
		Order("attendance_status_order ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
