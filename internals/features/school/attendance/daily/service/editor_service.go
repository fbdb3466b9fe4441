// file: internals/features/school/attendance/daily/service/editor_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	attmodel "sekolahku_backend/internals/features/school/attendance/daily/model"
	"sekolahku_backend/internals/helpers/apperr"
)

// EditorService: koreksi status record absensi yang sudah tercatat.
// Status original tidak pernah disentuh; setiap koreksi menimpa status
// current + metadata modifikasi terakhir.
type EditorService struct {
	Store AttendanceStore
}

func NewEditorService(store AttendanceStore) *EditorService {
	return &EditorService{Store: store}
}

// UpdateStatus mengembalikan record hasil koreksi (belum di-reload dari
// store). Record id Nil berarti view yang dipegang klien rusak — itu
// defect konfigurasi, bukan input user, dan store tidak boleh dipanggil.
func (s *EditorService) UpdateStatus(ctx context.Context, recordID uuid.UUID, newStatusID int, reason string, modifiedBy uuid.UUID) (attmodel.ClassAttendanceModel, error) {
	if recordID == uuid.Nil {
		return attmodel.ClassAttendanceModel{}, apperr.NewConfiguration("id record absensi tidak ter-resolve dari view")
	}
	if newStatusID <= 0 {
		return attmodel.ClassAttendanceModel{}, apperr.NewValidation("Status pengganti tidak valid")
	}
	if modifiedBy == uuid.Nil {
		return attmodel.ClassAttendanceModel{}, apperr.NewPermission("User belum login")
	}

	rec, err := s.Store.RecordByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return attmodel.ClassAttendanceModel{}, apperr.NewValidation("Record absensi tidak ditemukan")
		}
		return attmodel.ClassAttendanceModel{}, apperr.NewService("Gagal memuat record absensi", err)
	}

	rec.ClassAttendanceCurrentStatusID = newStatusID
	rec.ClassAttendanceModification = datatypes.JSONMap{
		"modified_by": modifiedBy.String(),
		"reason":      strings.TrimSpace(reason),
		"modified_at": time.Now().Format(time.RFC3339),
	}

	if err := s.Store.UpdateRecord(ctx, rec); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return attmodel.ClassAttendanceModel{}, apperr.NewValidation("Record absensi tidak ditemukan")
		}
		return attmodel.ClassAttendanceModel{}, apperr.NewService("Gagal menyimpan koreksi absensi", err)
	}
	return rec, nil
}
