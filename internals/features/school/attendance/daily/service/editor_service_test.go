// file: internals/features/school/attendance/daily/service/editor_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	attmodel "sekolahku_backend/internals/features/school/attendance/daily/model"
	"sekolahku_backend/internals/helpers/apperr"
)

func storedRecord() attmodel.ClassAttendanceModel {
	return attmodel.ClassAttendanceModel{
		ClassAttendanceID:               uuid.New(),
		ClassAttendanceSectionID:        uuid.New(),
		ClassAttendanceEnrollmentID:     uuid.New(),
		ClassAttendanceCourseID:         uuid.New(),
		ClassAttendanceDate:             time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		ClassAttendanceOriginalStatusID: 1,
		ClassAttendanceCurrentStatusID:  1,
		ClassAttendanceRecordedBy:       uuid.New(),
	}
}

func TestUpdateStatus_NilRecordIDIsConfigurationDefect(t *testing.T) {
	store := &fakeAttendanceStore{}
	svc := NewEditorService(store)

	_, err := svc.UpdateStatus(context.Background(), uuid.Nil, 2, "salah klik", uuid.New())
	if !apperr.IsConfiguration(err) {
		t.Fatalf("want configuration error, got %v", err)
	}
	if len(store.updated) != 0 {
		t.Fatalf("store must not be called when record id is missing")
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewEditorService(&fakeAttendanceStore{})
	for _, bad := range []int{0, -1} {
		_, err := svc.UpdateStatus(context.Background(), uuid.New(), bad, "", uuid.New())
		if !apperr.IsValidation(err) {
			t.Fatalf("statusID=%d: want validation error, got %v", bad, err)
		}
	}
}

func TestUpdateStatus_OriginalStaysUntouched(t *testing.T) {
	rec := storedRecord()
	store := &fakeAttendanceStore{records: map[uuid.UUID]attmodel.ClassAttendanceModel{rec.ClassAttendanceID: rec}}
	svc := NewEditorService(store)
	editor := uuid.New()

	got, err := svc.UpdateStatus(context.Background(), rec.ClassAttendanceID, 3, "  datang terlambat  ", editor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ClassAttendanceOriginalStatusID != 1 {
		t.Fatalf("original status must never change, got %d", got.ClassAttendanceOriginalStatusID)
	}
	if got.ClassAttendanceCurrentStatusID != 3 {
		t.Fatalf("current status not updated, got %d", got.ClassAttendanceCurrentStatusID)
	}

	if len(store.updated) != 1 {
		t.Fatalf("want one store update, got %d", len(store.updated))
	}
	mod := store.updated[0].ClassAttendanceModification
	if mod["modified_by"] != editor.String() {
		t.Fatalf("modified_by wrong: %v", mod["modified_by"])
	}
	if mod["reason"] != "datang terlambat" {
		t.Fatalf("reason must be trimmed, got %q", mod["reason"])
	}
	if s, _ := mod["modified_at"].(string); s == "" {
		t.Fatalf("modified_at missing")
	} else if _, perr := time.Parse(time.RFC3339, s); perr != nil {
		t.Fatalf("modified_at not RFC3339: %q", s)
	}
}

func TestUpdateStatus_MissingRecord(t *testing.T) {
	svc := NewEditorService(&fakeAttendanceStore{records: map[uuid.UUID]attmodel.ClassAttendanceModel{}})
	_, err := svc.UpdateStatus(context.Background(), uuid.New(), 2, "", uuid.New())
	if !apperr.IsValidation(err) {
		t.Fatalf("missing record: want validation error, got %v", err)
	}
}

func TestUpdateStatus_StoreFailureBecomesService(t *testing.T) {
	rec := storedRecord()
	store := &fakeAttendanceStore{
		records:   map[uuid.UUID]attmodel.ClassAttendanceModel{rec.ClassAttendanceID: rec},
		updateErr: errors.New("conn reset"),
	}
	svc := NewEditorService(store)

	_, err := svc.UpdateStatus(context.Background(), rec.ClassAttendanceID, 2, "", uuid.New())
	if !apperr.IsService(err) {
		t.Fatalf("want service error, got %v", err)
	}
}
