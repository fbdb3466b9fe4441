// file: internals/features/school/attendance/statuses/service/status_catalog_service.go
package service

import (
	"context"

	statmodel "sekolahku_backend/internals/features/school/attendance/statuses/model"
	"sekolahku_backend/internals/helpers/apperr"
)

type StatusCatalogService struct {
	Store StatusStore
}

func NewStatusCatalogService(store StatusStore) *StatusCatalogService {
	return &StatusCatalogService{Store: store}
}

// ResolveForRole: daftar status yang boleh dipakai role saat mencatat
// absensi. Role tanpa grant TIDAK memicu error di sini — keputusan
// "boleh submit atau tidak" milik pemanggil (registrasi menolak 403,
// selector cukup menampilkan kosong).
func (s *StatusCatalogService) ResolveForRole(ctx context.Context, roleID int) ([]statmodel.AttendanceStatusModel, error) {
	if roleID <= 0 {
		return nil, apperr.NewPermission("Role tidak dikenali")
	}
	rows, err := s.Store.ListAllowedByRole(ctx, roleID)
	if err != nil {
		return nil, apperr.NewService("Gagal memuat status absensi untuk role", err)
	}
	return rows, nil
}

// ListSelector: katalog untuk dropdown generik. Kalau DB belum di-seed,
// fallback ke katalog bawaan supaya UI pendaftaran tetap bisa jalan.
func (s *StatusCatalogService) ListSelector(ctx context.Context) ([]statmodel.AttendanceStatusModel, error) {
	rows, err := s.Store.ListActive(ctx)
	if err != nil {
		return nil, apperr.NewService("Gagal memuat katalog status absensi", err)
	}
	if len(rows) == 0 {
		return DefaultStatuses(), nil
	}
	return rows, nil
}

// DefaultStatuses: katalog minimum. Hanya dipakai sebagai fallback
// selector — ResolveForRole tidak pernah memakainya.
func DefaultStatuses() []statmodel.AttendanceStatusModel {
	return []statmodel.AttendanceStatusModel{
		{
			AttendanceStatusID:    1,
			AttendanceStatusCode:  "PRESENT",
			AttendanceStatusName:  "Hadir",
			AttendanceStatusColor: "#4CAF50",
			AttendanceStatusOrder: 1,
			AttendanceStatusCanHaveNotes: true,
			AttendanceStatusIsActive:     true,
		},
		{
			AttendanceStatusID:    2,
			AttendanceStatusCode:  "ABSENT",
			AttendanceStatusName:  "Alpa",
			AttendanceStatusColor: "#F44336",
			AttendanceStatusOrder: 2,
			AttendanceStatusIsNegative:            true,
			AttendanceStatusRequiresJustification: true,
			AttendanceStatusCanHaveNotes:          true,
			AttendanceStatusIsActive:              true,
		},
		{
			AttendanceStatusID:    3,
			AttendanceStatusCode:  "TARDY",
			AttendanceStatusName:  "Terlambat",
			AttendanceStatusColor: "#FF9800",
			AttendanceStatusOrder: 3,
			AttendanceStatusIsNegative:   true,
			AttendanceStatusIsTemporal:   true,
			AttendanceStatusCanHaveNotes: true,
			AttendanceStatusIsActive:     true,
		},
		{
			AttendanceStatusID:    4,
			AttendanceStatusCode:  "EXCUSED",
			AttendanceStatusName:  "Izin",
			AttendanceStatusColor: "#2196F3",
			AttendanceStatusOrder: 4,
			AttendanceStatusIsExcused:    true,
			AttendanceStatusCanHaveNotes: true,
			AttendanceStatusIsActive:     true,
		},
	}
}
