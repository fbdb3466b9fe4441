// file: internals/features/school/attendance/daily/service/registration_service_test.go
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

/* ===== fake store (dipakai juga oleh test view & editor) ===== */

type fakeAttendanceStore struct {
	scheduled    []uuid.UUID
	scheduledErr error

	insertErr error
	inserted  [][]attmodel.ClassAttendanceModel

	rows    []ConsolidatedRow
	rowsErr error

	records   map[uuid.UUID]attmodel.ClassAttendanceModel
	recordErr error

	updated   []attmodel.ClassAttendanceModel
	updateErr error
}

func (f *fakeAttendanceStore) ScheduledCourseIDs(context.Context, uuid.UUID, int) ([]uuid.UUID, error) {
	return f.scheduled, f.scheduledErr
}

func (f *fakeAttendanceStore) InsertBatch(_ context.Context, rows []attmodel.ClassAttendanceModel) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, rows)
	return nil
}

func (f *fakeAttendanceStore) ConsolidatedRows(context.Context, uuid.UUID, time.Time) ([]ConsolidatedRow, error) {
	return f.rows, f.rowsErr
}

func (f *fakeAttendanceStore) RecordByID(_ context.Context, id uuid.UUID) (attmodel.ClassAttendanceModel, error) {
	if f.recordErr != nil {
		return attmodel.ClassAttendanceModel{}, f.recordErr
	}
	rec, ok := f.records[id]
	if !ok {
		return attmodel.ClassAttendanceModel{}, ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceStore) UpdateRecord(_ context.Context, rec attmodel.ClassAttendanceModel) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, rec)
	return nil
}

/* ===== tests ===== */

func TestFilterSelections(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	got := FilterSelections(map[uuid.UUID]int{a: 1, b: 0, c: -2})
	if len(got) != 1 || got[a] != 1 {
		t.Fatalf("want only the positive selection, got %v", got)
	}
}

func validInput() RegistrationInput {
	return RegistrationInput{
		SectionID:  uuid.New(),
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Selections: map[uuid.UUID]int{uuid.New(): 1, uuid.New(): 2},
		RecordedBy: uuid.New(),
	}
}

func TestRegister_LocalPreconditions(t *testing.T) {
	store := &fakeAttendanceStore{scheduled: []uuid.UUID{uuid.New()}}
	svc := NewRegistrationService(store)

	in := validInput()
	in.SectionID = uuid.Nil
	if _, err := svc.Register(context.Background(), in); !apperr.IsValidation(err) {
		t.Fatalf("nil section: want validation, got %v", err)
	}

	in = validInput()
	in.Date = time.Time{}
	if _, err := svc.Register(context.Background(), in); !apperr.IsValidation(err) {
		t.Fatalf("zero date: want validation, got %v", err)
	}

	in = validInput()
	in.Selections = map[uuid.UUID]int{uuid.New(): 0, uuid.New(): -1}
	if _, err := svc.Register(context.Background(), in); !apperr.IsValidation(err) {
		t.Fatalf("all-filtered selections: want validation, got %v", err)
	}

	if len(store.inserted) != 0 {
		t.Fatalf("store must not be written on local precondition failure")
	}
}

func TestRegister_NoScheduledCourses(t *testing.T) {
	store := &fakeAttendanceStore{scheduled: nil}
	svc := NewRegistrationService(store)

	_, err := svc.Register(context.Background(), validInput())
	if !apperr.IsValidation(err) {
		t.Fatalf("no scheduled courses: want validation, got %v", err)
	}
	if len(store.inserted) != 0 {
		t.Fatalf("no rows must be written")
	}
}

func TestRegister_ExpandsPerScheduledCourse(t *testing.T) {
	courses := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	store := &fakeAttendanceStore{scheduled: courses}
	svc := NewRegistrationService(store)

	in := validInput() // 2 siswa
	n, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 6 {
		t.Fatalf("want 2 siswa x 3 mapel = 6 records, got %d", n)
	}
	if len(store.inserted) != 1 || len(store.inserted[0]) != 6 {
		t.Fatalf("want one batch of 6 rows")
	}
	for _, row := range store.inserted[0] {
		if row.ClassAttendanceOriginalStatusID != row.ClassAttendanceCurrentStatusID {
			t.Fatalf("fresh record must start with original == current")
		}
		if row.ClassAttendanceRecordedBy != in.RecordedBy {
			t.Fatalf("recorded_by not propagated")
		}
		if want := in.Selections[row.ClassAttendanceEnrollmentID]; row.ClassAttendanceOriginalStatusID != want {
			t.Fatalf("status %d does not match selection %d", row.ClassAttendanceOriginalStatusID, want)
		}
	}
}

func TestRegister_StoreErrors(t *testing.T) {
	store := &fakeAttendanceStore{scheduled: []uuid.UUID{uuid.New()}, insertErr: errors.New("down")}
	svc := NewRegistrationService(store)
	if _, err := svc.Register(context.Background(), validInput()); !apperr.IsService(err) {
		t.Fatalf("insert failure: want service error, got %v", err)
	}

	store = &fakeAttendanceStore{scheduled: []uuid.UUID{uuid.New()}, insertErr: ErrDuplicateRegistration}
	svc = NewRegistrationService(store)
	if _, err := svc.Register(context.Background(), validInput()); !apperr.IsValidation(err) {
		t.Fatalf("duplicate: want validation error, got %v", err)
	}

	store = &fakeAttendanceStore{scheduledErr: errors.New("timeout")}
	svc = NewRegistrationService(store)
	if _, err := svc.Register(context.Background(), validInput()); !apperr.IsService(err) {
		t.Fatalf("schedule lookup failure: want service error, got %v", err)
	}
}
