// file: internals/features/school/attendance/daily/service/registration_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	attmodel "sekolahku_backend/internals/features/school/attendance/daily/model"
	"sekolahku_backend/internals/helpers/apperr"
	"sekolahku_backend/internals/helpers/dbtime"
)

// RegistrationService: pencatatan absensi harian satu section.
// Payload datang per-enrollment; di sini di-ekspansi jadi satu record
// per (enrollment, mapel terjadwal) untuk hari itu.
type RegistrationService struct {
	Store AttendanceStore
}

func NewRegistrationService(store AttendanceStore) *RegistrationService {
	return &RegistrationService{Store: store}
}

type RegistrationInput struct {
	SectionID  uuid.UUID
	Date       time.Time
	Selections map[uuid.UUID]int // enrollmentID → statusID
	RecordedBy uuid.UUID
}

// FilterSelections membuang pilihan dengan status id tidak valid (≤0) —
// baris dropdown yang belum diisi user dikirim front-end sebagai 0.
func FilterSelections(selections map[uuid.UUID]int) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(selections))
	for enrollmentID, statusID := range selections {
		if statusID > 0 {
			out[enrollmentID] = statusID
		}
	}
	return out
}

// Register memvalidasi precondition lokal dulu; store tidak pernah
// dipanggil kalau payload sudah jelas tidak bisa disimpan.
func (s *RegistrationService) Register(ctx context.Context, in RegistrationInput) (int, error) {
	if in.SectionID == uuid.Nil {
		return 0, apperr.NewValidation("Section belum dipilih")
	}
	if in.Date.IsZero() {
		return 0, apperr.NewValidation("Tanggal belum dipilih")
	}

	selections := FilterSelections(in.Selections)
	if len(selections) == 0 {
		return 0, apperr.NewValidation("Tidak ada status absensi yang dipilih")
	}

	isoDay := dbtime.ISODayInSchool(in.Date)
	courseIDs, err := s.Store.ScheduledCourseIDs(ctx, in.SectionID, isoDay)
	if err != nil {
		return 0, apperr.NewService("Gagal memuat jadwal section", err)
	}
	if len(courseIDs) == 0 {
		return 0, apperr.NewValidation("Section tidak punya mapel terjadwal di tanggal ini")
	}

	now := time.Now()
	rows := make([]attmodel.ClassAttendanceModel, 0, len(selections)*len(courseIDs))
	for enrollmentID, statusID := range selections {
		for _, courseID := range courseIDs {
			rows = append(rows, attmodel.ClassAttendanceModel{
				ClassAttendanceSectionID:        in.SectionID,
				ClassAttendanceEnrollmentID:     enrollmentID,
				ClassAttendanceCourseID:         courseID,
				ClassAttendanceDate:             in.Date,
				ClassAttendanceOriginalStatusID: statusID,
				ClassAttendanceCurrentStatusID:  statusID,
				ClassAttendanceRecordedBy:       in.RecordedBy,
				ClassAttendanceRecordedAt:       now,
			})
		}
	}

	if err := s.Store.InsertBatch(ctx, rows); err != nil {
		if errors.Is(err, ErrDuplicateRegistration) {
			return 0, apperr.NewValidation("Absensi untuk tanggal ini sudah pernah dicatat")
		}
		return 0, apperr.NewService("Gagal menyimpan absensi", err)
	}
	return len(rows), nil
}
