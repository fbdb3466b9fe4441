// file: internals/features/school/attendance/daily/controller/daily_controller_test.go
package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	attmodel "sekolahku_backend/internals/features/school/attendance/daily/model"
	attsvc "sekolahku_backend/internals/features/school/attendance/daily/service"
	statmodel "sekolahku_backend/internals/features/school/attendance/statuses/model"
	statsvc "sekolahku_backend/internals/features/school/attendance/statuses/service"
)

/* ===== fakes ===== */

type fakeDailyStore struct {
	courses []uuid.UUID
	rows    []attsvc.ConsolidatedRow

	scheduleCalls int
	insertCalls   int
	inserted      []attmodel.ClassAttendanceModel
}

func (f *fakeDailyStore) ScheduledCourseIDs(context.Context, uuid.UUID, int) ([]uuid.UUID, error) {
	f.scheduleCalls++
	return f.courses, nil
}

func (f *fakeDailyStore) InsertBatch(_ context.Context, rows []attmodel.ClassAttendanceModel) error {
	f.insertCalls++
	f.inserted = append(f.inserted, rows...)
	return nil
}

func (f *fakeDailyStore) ConsolidatedRows(context.Context, uuid.UUID, time.Time) ([]attsvc.ConsolidatedRow, error) {
	return f.rows, nil
}

func (f *fakeDailyStore) RecordByID(context.Context, uuid.UUID) (attmodel.ClassAttendanceModel, error) {
	return attmodel.ClassAttendanceModel{}, attsvc.ErrRecordNotFound
}

func (f *fakeDailyStore) UpdateRecord(context.Context, attmodel.ClassAttendanceModel) error {
	return nil
}

type fakeGrantStore struct {
	allowed []statmodel.AttendanceStatusModel
}

func (f *fakeGrantStore) ListAllowedByRole(context.Context, int) ([]statmodel.AttendanceStatusModel, error) {
	return f.allowed, nil
}

func (f *fakeGrantStore) ListActive(context.Context) ([]statmodel.AttendanceStatusModel, error) {
	return f.allowed, nil
}

/* ===== harness ===== */

func newDailyApp(store *fakeDailyStore, grants *fakeGrantStore) *fiber.App {
	ctl := &DailyAttendanceController{
		Validator:    validator.New(),
		Registration: attsvc.NewRegistrationService(store),
		View:         attsvc.NewConsolidatedViewService(store),
		Editor:       attsvc.NewEditorService(store),
		Catalog:      statsvc.NewStatusCatalogService(grants),
	}

	app := fiber.New()
	app.Post("/attendance/daily", func(c *fiber.Ctx) error {
		// Klaim yang normalnya diisi middleware auth.
		c.Locals("user_id", uuid.New().String())
		c.Locals("role_id", 2)
		return ctl.RegisterDaily(c)
	})
	return app
}

func postDaily(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/attendance/daily", strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	var payload map[string]any
	_ = json.Unmarshal(raw, &payload)
	return resp.StatusCode, payload
}

func dailyBody(sectionID, enrollmentID uuid.UUID, statusID int) string {
	return fmt.Sprintf(`{"section_id":%q,"date":"2026-03-10","statuses":{%q:%d}}`,
		sectionID, enrollmentID, statusID)
}

/* ===== tests ===== */

// Role tanpa grant status ditolak 403 SEBELUM service registrasi
// menyentuh store — tidak ada lookup jadwal, tidak ada insert.
func TestRegisterDaily_EmptyGrantRejectsBeforeStore(t *testing.T) {
	store := &fakeDailyStore{}
	app := newDailyApp(store, &fakeGrantStore{})

	code, _ := postDaily(t, app, dailyBody(uuid.New(), uuid.New(), 1))
	if code != fiber.StatusForbidden {
		t.Fatalf("empty grant: want 403, got %d", code)
	}
	if store.scheduleCalls != 0 || store.insertCalls != 0 {
		t.Fatalf("empty grant must not touch the store (schedule=%d insert=%d)",
			store.scheduleCalls, store.insertCalls)
	}
}

func TestRegisterDaily_DisallowedStatusRejected(t *testing.T) {
	store := &fakeDailyStore{}
	grants := &fakeGrantStore{allowed: []statmodel.AttendanceStatusModel{
		{AttendanceStatusID: 1, AttendanceStatusCode: "PRESENT", AttendanceStatusName: "Hadir"},
	}}
	app := newDailyApp(store, grants)

	code, _ := postDaily(t, app, dailyBody(uuid.New(), uuid.New(), 9))
	if code != fiber.StatusBadRequest {
		t.Fatalf("disallowed status: want 400, got %d", code)
	}
	if store.insertCalls != 0 {
		t.Fatalf("disallowed status must not insert")
	}
}

func TestRegisterDaily_CreatesRecordsAndReturnsView(t *testing.T) {
	sectionID := uuid.New()
	enrollmentID := uuid.New()
	courseID := uuid.New()

	store := &fakeDailyStore{
		courses: []uuid.UUID{courseID},
		rows: []attsvc.ConsolidatedRow{{
			RecordID:           uuid.New(),
			EnrollmentID:       enrollmentID,
			StudentName:        "Ana Quispe",
			CourseID:           courseID,
			CourseName:         "Matematika",
			OriginalStatusID:   1,
			OriginalStatusName: "Hadir",
			CurrentStatusID:    1,
			CurrentStatusName:  "Hadir",
		}},
	}
	grants := &fakeGrantStore{allowed: []statmodel.AttendanceStatusModel{
		{AttendanceStatusID: 1, AttendanceStatusCode: "PRESENT", AttendanceStatusName: "Hadir"},
	}}
	app := newDailyApp(store, grants)

	code, payload := postDaily(t, app, dailyBody(sectionID, enrollmentID, 1))
	if code != fiber.StatusCreated {
		t.Fatalf("want 201, got %d (%v)", code, payload)
	}
	if store.insertCalls != 1 || len(store.inserted) != 1 {
		t.Fatalf("want one batch with one record, got calls=%d rows=%d",
			store.insertCalls, len(store.inserted))
	}

	data, _ := payload["data"].(map[string]any)
	if n, _ := data["records_created"].(float64); int(n) != 1 {
		t.Fatalf("records_created: want 1, got %v", data["records_created"])
	}
	if _, ok := data["view"]; !ok {
		t.Fatalf("response must carry the rebuilt view")
	}
}
