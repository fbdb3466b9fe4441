// file: internals/features/school/attendance/daily/service/consolidated_view_service.go
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/helpers/apperr"
)

/* ===============================
   Bentuk view
=================================*/

type ModificationDetails struct {
	ModifiedBy string `json:"modified_by"`
	Reason     string `json:"reason"`
	ModifiedAt string `json:"modified_at"`
}

type CourseAttendanceEntry struct {
	RecordID    uuid.UUID `json:"record_id"`
	CourseID    uuid.UUID `json:"course_id"`
	CourseName  string    `json:"course_name"`
	CourseColor string    `json:"course_color"`
	RecordedBy  uuid.UUID `json:"recorded_by"`

	OriginalStatusID   int    `json:"original_status_id"`
	OriginalStatusName string `json:"original_status_name"`
	CurrentStatusID    int    `json:"current_status_id"`
	CurrentStatusName  string `json:"current_status_name"`
	CurrentStatusColor string `json:"current_status_color"`

	HasModifications bool                 `json:"has_modifications"`
	Modification     *ModificationDetails `json:"modification,omitempty"`
}

type StudentAttendance struct {
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`

	Courses []CourseAttendanceEntry `json:"courses"`

	// "uniform": semua mapel berstatus current sama → Summary ringkas.
	// "mixed": beda-beda → StatusCounts per nama status.
	SummaryKind  string         `json:"summary_kind"`
	Summary      string         `json:"summary"`
	StatusCounts map[string]int `json:"status_counts,omitempty"`

	HasModifications bool `json:"has_modifications"`
}

type ConsolidatedView struct {
	SectionID uuid.UUID           `json:"section_id"`
	Date      string              `json:"date"`
	Students  []StudentAttendance `json:"students"`
	Total     int                 `json:"total_records"`
}

/* ===============================
   Service
=================================*/

type ConsolidatedViewService struct {
	Store AttendanceStore
}

func NewConsolidatedViewService(store AttendanceStore) *ConsolidatedViewService {
	return &ConsolidatedViewService{Store: store}
}

// Refresh membangun ulang view dari nol (full rebuild, idempoten) —
// dipanggil setelah registrasi maupun setelah koreksi status.
func (s *ConsolidatedViewService) Refresh(ctx context.Context, sectionID uuid.UUID, date time.Time) (ConsolidatedView, error) {
	rows, err := s.Store.ConsolidatedRows(ctx, sectionID, date)
	if err != nil {
		return ConsolidatedView{}, apperr.NewService("Gagal memuat absensi terkonsolidasi", err)
	}
	return s.Build(sectionID, date, rows)
}

// Build menyusun rows flat jadi view per siswa. Ringkasan per siswa
// dihitung dari status CURRENT saja; status original ikut ditampilkan
// tapi tidak mempengaruhi ringkasan.
func (s *ConsolidatedViewService) Build(sectionID uuid.UUID, date time.Time, rows []ConsolidatedRow) (ConsolidatedView, error) {
	view := ConsolidatedView{
		SectionID: sectionID,
		Date:      date.Format(dateOnly),
		Students:  []StudentAttendance{},
		Total:     len(rows),
	}

	byStudent := map[uuid.UUID]*StudentAttendance{}
	order := []uuid.UUID{}

	for _, r := range rows {
		if r.RecordID == uuid.Nil {
			// Baris tanpa id record tidak bisa dikoreksi nanti — defect
			// data, bukan kesalahan user.
			return ConsolidatedView{}, apperr.NewConfiguration(
				fmt.Sprintf("record absensi tanpa id (enrollment %s, mapel %s)", r.EnrollmentID, r.CourseID))
		}

		st, ok := byStudent[r.EnrollmentID]
		if !ok {
			st = &StudentAttendance{
				EnrollmentID: r.EnrollmentID,
				StudentID:    r.StudentID,
				StudentName:  r.StudentName,
			}
			byStudent[r.EnrollmentID] = st
			order = append(order, r.EnrollmentID)
		}

		entry := CourseAttendanceEntry{
			RecordID:           r.RecordID,
			CourseID:           r.CourseID,
			CourseName:         r.CourseName,
			CourseColor:        r.CourseColor,
			RecordedBy:         r.RecordedBy,
			OriginalStatusID:   r.OriginalStatusID,
			OriginalStatusName: r.OriginalStatusName,
			CurrentStatusID:    r.CurrentStatusID,
			CurrentStatusName:  r.CurrentStatusName,
			CurrentStatusColor: r.CurrentStatusColor,
		}
		if len(r.Modification) > 0 {
			entry.HasModifications = true
			entry.Modification = &ModificationDetails{
				ModifiedBy: asString(r.Modification["modified_by"]),
				Reason:     asString(r.Modification["reason"]),
				ModifiedAt: asString(r.Modification["modified_at"]),
			}
			st.HasModifications = true
		}
		st.Courses = append(st.Courses, entry)
	}

	for _, enrollmentID := range order {
		st := byStudent[enrollmentID]
		sort.Slice(st.Courses, func(i, j int) bool {
			return st.Courses[i].CourseName < st.Courses[j].CourseName
		})
		summarize(st)
		view.Students = append(view.Students, *st)
	}
	sort.Slice(view.Students, func(i, j int) bool {
		return view.Students[i].StudentName < view.Students[j].StudentName
	})
	return view, nil
}

func summarize(st *StudentAttendance) {
	uniform := true
	first := ""
	counts := map[string]int{}
	for i, c := range st.Courses {
		counts[c.CurrentStatusName]++
		if i == 0 {
			first = c.CurrentStatusName
		} else if c.CurrentStatusName != first {
			uniform = false
		}
	}
	if uniform {
		st.SummaryKind = "uniform"
		st.Summary = fmt.Sprintf("%s (%d mapel)", first, len(st.Courses))
		return
	}
	st.SummaryKind = "mixed"
	st.Summary = "Campuran"
	st.StatusCounts = counts
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
