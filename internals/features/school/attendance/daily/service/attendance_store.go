// file: internals/features/school/attendance/daily/service/attendance_store.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attmodel "sekolahku_backend/internals/features/school/attendance/daily/model"
	schmodel "sekolahku_backend/internals/features/school/academics/schedules/model"
)

// Satu sel absensi sudah pernah dicatat untuk (enrollment, mapel, tanggal).
var ErrDuplicateRegistration = errors.New("absensi untuk kombinasi ini sudah dicatat")

var ErrRecordNotFound = errors.New("record absensi tidak ditemukan")

// Baris gabungan untuk view konsolidasi: record absensi + snapshot nama
// siswa/mapel + nama status (original & current).
type ConsolidatedRow struct {
	RecordID     uuid.UUID `json:"record_id"     gorm:"column:record_id"`
	EnrollmentID uuid.UUID `json:"enrollment_id" gorm:"column:enrollment_id"`
	StudentID    uuid.UUID `json:"student_id"    gorm:"column:student_id"`
	StudentName  string    `json:"student_name"  gorm:"column:student_name"`
	CourseID     uuid.UUID `json:"course_id"     gorm:"column:course_id"`
	CourseName   string    `json:"course_name"   gorm:"column:course_name"`
	CourseColor  string    `json:"course_color"  gorm:"column:course_color"`
	RecordedBy   uuid.UUID `json:"recorded_by"   gorm:"column:recorded_by"`

	OriginalStatusID   int    `json:"original_status_id"   gorm:"column:original_status_id"`
	OriginalStatusName string `json:"original_status_name" gorm:"column:original_status_name"`
	CurrentStatusID    int    `json:"current_status_id"    gorm:"column:current_status_id"`
	CurrentStatusName  string `json:"current_status_name"  gorm:"column:current_status_name"`
	CurrentStatusColor string `json:"current_status_color" gorm:"column:current_status_color"`

	Modification datatypes.JSONMap `json:"modification,omitempty" gorm:"column:modification"`
}

type AttendanceStore interface {
	// ScheduledCourseIDs: mapel terjadwal section pada hari ISO tsb.
	ScheduledCourseIDs(ctx context.Context, sectionID uuid.UUID, isoDay int) ([]uuid.UUID, error)

	// InsertBatch menyimpan satu batch record dalam satu transaksi.
	// Duplikat (enrollment, mapel, tanggal) → ErrDuplicateRegistration.
	InsertBatch(ctx context.Context, rows []attmodel.ClassAttendanceModel) error

	ConsolidatedRows(ctx context.Context, sectionID uuid.UUID, date time.Time) ([]ConsolidatedRow, error)

	RecordByID(ctx context.Context, id uuid.UUID) (attmodel.ClassAttendanceModel, error)

	// UpdateRecord hanya menulis status current + metadata modifikasi —
	// kolom original tidak pernah ikut ter-update.
	UpdateRecord(ctx context.Context, rec attmodel.ClassAttendanceModel) error
}

type GormAttendanceStore struct {
	DB *gorm.DB
}

func NewGormAttendanceStore(db *gorm.DB) *GormAttendanceStore {
	return &GormAttendanceStore{DB: db}
}

const dateOnly = "2006-01-02"

func (s *GormAttendanceStore) ScheduledCourseIDs(ctx context.Context, sectionID uuid.UUID, isoDay int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&schmodel.SectionScheduleModel{}).
		Where("section_schedule_section_id = ?", sectionID).
		Where("section_schedule_iso_day = ?", isoDay).
		Distinct().
		Pluck("section_schedule_course_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *GormAttendanceStore) InsertBatch(ctx context.Context, rows []attmodel.ClassAttendanceModel) error {
	if len(rows) == 0 {
		return nil
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, 200).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqe *pq.Error
	if errors.As(err, &pqe) && pqe.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}

func (s *GormAttendanceStore) ConsolidatedRows(ctx context.Context, sectionID uuid.UUID, date time.Time) ([]ConsolidatedRow, error) {
	var rows []ConsolidatedRow
	err := s.DB.WithContext(ctx).
		Table("class_attendances ca").
		Select(`ca.class_attendance_id            AS record_id,
			ca.class_attendance_enrollment_id AS enrollment_id,
			e.enrollment_student_id           AS student_id,
			e.enrollment_student_name         AS student_name,
			ca.class_attendance_course_id     AS course_id,
			co.course_name                    AS course_name,
			co.course_color                   AS course_color,
			ca.class_attendance_recorded_by   AS recorded_by,
			ca.class_attendance_original_status_id AS original_status_id,
			so.attendance_status_name         AS original_status_name,
			ca.class_attendance_current_status_id  AS current_status_id,
			sc.attendance_status_name         AS current_status_name,
			sc.attendance_status_color        AS current_status_color,
			ca.class_attendance_modification  AS modification`).
		Joins("JOIN enrollments e ON e.enrollment_id = ca.class_attendance_enrollment_id").
		Joins("JOIN courses co ON co.course_id = ca.class_attendance_course_id").
		Joins("JOIN attendance_statuses so ON so.attendance_status_id = ca.class_attendance_original_status_id").
		Joins("JOIN attendance_statuses sc ON sc.attendance_status_id = ca.class_attendance_current_status_id").
		Where("ca.class_attendance_section_id = ?", sectionID).
		Where("ca.class_attendance_date = ?", date.Format(dateOnly)).
		Where("ca.class_attendance_deleted_at IS NULL").
		Order("e.enrollment_student_name ASC, co.course_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormAttendanceStore) RecordByID(ctx context.Context, id uuid.UUID) (attmodel.ClassAttendanceModel, error) {
	var m attmodel.ClassAttendanceModel
	err := s.DB.WithContext(ctx).First(&m, "class_attendance_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attmodel.ClassAttendanceModel{}, ErrRecordNotFound
	}
	if err != nil {
		return attmodel.ClassAttendanceModel{}, err
	}
	return m, nil
}

func (s *GormAttendanceStore) UpdateRecord(ctx context.Context, rec attmodel.ClassAttendanceModel) error {
	res := s.DB.WithContext(ctx).
		Model(&attmodel.ClassAttendanceModel{}).
		Where("class_attendance_id = ?", rec.ClassAttendanceID).
		Select("class_attendance_current_status_id", "class_attendance_modification", "class_attendance_updated_at").
		Updates(map[string]any{
			"class_attendance_current_status_id": rec.ClassAttendanceCurrentStatusID,
			"class_attendance_modification":      rec.ClassAttendanceModification,
			"class_attendance_updated_at":        time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
