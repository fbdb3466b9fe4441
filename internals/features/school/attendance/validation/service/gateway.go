// file: internals/features/school/attendance/validation/service/gateway.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lookup membungkus hasil pencarian satu baris: Found eksplisit, bukan
// nil-check. Penting karena polaritas cek TIDAK seragam — untuk libur &
// ketidakhadiran guru justru KEBERADAAN record yang menggagalkan
// registrasi, jadi "tidak ketemu" tidak boleh ambigu dengan "error".
type Lookup[T any] struct {
	Found bool
	Value T
}

func Found[T any](v T) Lookup[T] {
	return Lookup[T]{Found: true, Value: v}
}

func NotFound[T any]() Lookup[T] {
	return Lookup[T]{}
}

type BimesterInfo struct {
	ID   uuid.UUID
	Name string
}

type HolidayInfo struct {
	ID          uuid.UUID
	Description string
}

type AcademicWeekInfo struct {
	ID     uuid.UUID
	Number int
	Type   string
}

type TeacherAbsenceInfo struct {
	ID     uuid.UUID
	Reason string
}

type ConfigInfo struct {
	ID             uuid.UUID `json:"id"`
	OpenTime       string    `json:"open_time"`
	CloseTime      string    `json:"close_time"`
	EditWindowDays int       `json:"edit_window_days"`
}

// CalendarGateway: pembacaan kalender akademik untuk satu tanggal.
type CalendarGateway interface {
	BimesterByDate(ctx context.Context, cycleID uuid.UUID, date time.Time) (Lookup[BimesterInfo], error)
	HolidayByDate(ctx context.Context, bimesterID uuid.UUID, date time.Time) (Lookup[HolidayInfo], error)
	AcademicWeekByDate(ctx context.Context, bimesterID uuid.UUID, date time.Time) (Lookup[AcademicWeekInfo], error)
}

// ScheduleGateway: pembacaan jadwal & ketidakhadiran guru.
type ScheduleGateway interface {
	TeacherAbsenceByDate(ctx context.Context, teacherID uuid.UUID, date time.Time) (Lookup[TeacherAbsenceInfo], error)
	TeacherScheduleExists(ctx context.Context, teacherID uuid.UUID, isoDay int, sectionID uuid.UUID) (bool, error)
	SectionScheduleExists(ctx context.Context, sectionID uuid.UUID, isoDay int) (bool, error)
}

// RoleStatusGateway: apakah role punya minimal satu status absensi.
type RoleStatusGateway interface {
	RoleHasStatuses(ctx context.Context, roleID int) (bool, error)
}

// ConfigGateway: konfigurasi absensi aktif untuk cycle.
type ConfigGateway interface {
	ActiveConfig(ctx context.Context, cycleID uuid.UUID) (Lookup[ConfigInfo], error)
}
