// file: internals/features/school/attendance/daily/service/consolidated_view_service_test.go
package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/helpers/apperr"
)

func viewDate() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func rowFor(student string, enrollmentID uuid.UUID, course, status string) ConsolidatedRow {
	return ConsolidatedRow{
		RecordID:           uuid.New(),
		EnrollmentID:       enrollmentID,
		StudentName:        student,
		CourseID:           uuid.New(),
		CourseName:         course,
		OriginalStatusID:   1,
		OriginalStatusName: "Hadir",
		CurrentStatusID:    1,
		CurrentStatusName:  status,
	}
}

func TestBuild_UniformSummary(t *testing.T) {
	svc := NewConsolidatedViewService(&fakeAttendanceStore{})
	enr := uuid.New()
	rows := []ConsolidatedRow{
		rowFor("Ana", enr, "Matematika", "Hadir"),
		rowFor("Ana", enr, "Bahasa", "Hadir"),
		rowFor("Ana", enr, "IPA", "Hadir"),
	}

	view, err := svc.Build(uuid.New(), viewDate(), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Students) != 1 {
		t.Fatalf("want 1 student, got %d", len(view.Students))
	}
	st := view.Students[0]
	if st.SummaryKind != "uniform" || st.Summary != "Hadir (3 mapel)" {
		t.Fatalf("uniform summary wrong: kind=%s summary=%q", st.SummaryKind, st.Summary)
	}
	if st.StatusCounts != nil {
		t.Fatalf("uniform summary must not carry counts")
	}
	// Mapel urut nama.
	if st.Courses[0].CourseName != "Bahasa" || st.Courses[2].CourseName != "Matematika" {
		t.Fatalf("courses not sorted: %+v", st.Courses)
	}
}

func TestBuild_MixedSummaryCountsSumToTotal(t *testing.T) {
	svc := NewConsolidatedViewService(&fakeAttendanceStore{})
	enr := uuid.New()
	rows := []ConsolidatedRow{
		rowFor("Beto", enr, "Matematika", "Hadir"),
		rowFor("Beto", enr, "Bahasa", "Terlambat"),
		rowFor("Beto", enr, "IPA", "Hadir"),
	}

	view, err := svc.Build(uuid.New(), viewDate(), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := view.Students[0]
	if st.SummaryKind != "mixed" {
		t.Fatalf("want mixed, got %s", st.SummaryKind)
	}
	total := 0
	for _, n := range st.StatusCounts {
		total += n
	}
	if total != len(st.Courses) {
		t.Fatalf("counts must sum to course total: %d vs %d", total, len(st.Courses))
	}
	if st.StatusCounts["Hadir"] != 2 || st.StatusCounts["Terlambat"] != 1 {
		t.Fatalf("unexpected counts: %v", st.StatusCounts)
	}
}

func TestBuild_ModificationsSurface(t *testing.T) {
	svc := NewConsolidatedViewService(&fakeAttendanceStore{})
	enr := uuid.New()
	modified := rowFor("Cira", enr, "Matematika", "Izin")
	modified.Modification = datatypes.JSONMap{
		"modified_by": "a3f0b2c1",
		"reason":      "surat dokter",
		"modified_at": "2026-03-10T15:04:05Z",
	}
	rows := []ConsolidatedRow{modified, rowFor("Cira", enr, "Bahasa", "Hadir")}

	view, err := svc.Build(uuid.New(), viewDate(), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := view.Students[0]
	if !st.HasModifications {
		t.Fatalf("student with a corrected record must flag HasModifications")
	}
	var entry *CourseAttendanceEntry
	for i := range st.Courses {
		if st.Courses[i].Modification != nil {
			entry = &st.Courses[i]
		}
	}
	if entry == nil {
		t.Fatalf("modification details missing")
	}
	if entry.Modification.Reason != "surat dokter" || entry.Modification.ModifiedAt == "" {
		t.Fatalf("unexpected modification details: %+v", entry.Modification)
	}
}

func TestBuild_NilRecordIDIsConfigurationDefect(t *testing.T) {
	svc := NewConsolidatedViewService(&fakeAttendanceStore{})
	bad := rowFor("Dian", uuid.New(), "Matematika", "Hadir")
	bad.RecordID = uuid.Nil

	_, err := svc.Build(uuid.New(), viewDate(), []ConsolidatedRow{bad})
	if !apperr.IsConfiguration(err) {
		t.Fatalf("want configuration error, got %v", err)
	}
}

func TestBuild_DeterministicAndSorted(t *testing.T) {
	svc := NewConsolidatedViewService(&fakeAttendanceStore{})
	enrA, enrB := uuid.New(), uuid.New()
	rows := []ConsolidatedRow{
		rowFor("Zara", enrB, "Bahasa", "Hadir"),
		rowFor("Ana", enrA, "Matematika", "Hadir"),
	}

	first, err := svc.Build(uuid.New(), viewDate(), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Students[0].StudentName != "Ana" {
		t.Fatalf("students must be sorted by name, got %s first", first.Students[0].StudentName)
	}

	second, _ := svc.Build(first.SectionID, viewDate(), rows)
	second.SectionID = first.SectionID
	if !reflect.DeepEqual(first.Students, second.Students) {
		t.Fatalf("rebuild from the same rows must be identical")
	}
}
