// file: internals/features/school/attendance/statuses/service/status_catalog_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	statmodel "sekolahku_backend/internals/features/school/attendance/statuses/model"
	"sekolahku_backend/internals/helpers/apperr"
)

type fakeStatusStore struct {
	byRole map[int][]statmodel.AttendanceStatusModel
	active []statmodel.AttendanceStatusModel
	err    error

	roleCalls int
}

func (f *fakeStatusStore) ListAllowedByRole(_ context.Context, roleID int) ([]statmodel.AttendanceStatusModel, error) {
	f.roleCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.byRole[roleID], nil
}

func (f *fakeStatusStore) ListActive(context.Context) ([]statmodel.AttendanceStatusModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.active, nil
}

func TestResolveForRole_InvalidRole(t *testing.T) {
	store := &fakeStatusStore{}
	svc := NewStatusCatalogService(store)

	for _, roleID := range []int{0, -3} {
		_, err := svc.ResolveForRole(context.Background(), roleID)
		if !apperr.IsPermission(err) {
			t.Fatalf("roleID=%d: want permission error, got %v", roleID, err)
		}
	}
	if store.roleCalls != 0 {
		t.Fatalf("store should not be called for invalid role, got %d calls", store.roleCalls)
	}
}

func TestResolveForRole_EmptyGrantIsNotAnError(t *testing.T) {
	svc := NewStatusCatalogService(&fakeStatusStore{byRole: map[int][]statmodel.AttendanceStatusModel{}})

	rows, err := svc.ResolveForRole(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("want empty slice, got %d rows", len(rows))
	}
}

func TestResolveForRole_StoreFailureBecomesService(t *testing.T) {
	svc := NewStatusCatalogService(&fakeStatusStore{err: errors.New("conn refused")})

	_, err := svc.ResolveForRole(context.Background(), 2)
	if !apperr.IsService(err) {
		t.Fatalf("want service error, got %v", err)
	}
}

func TestListSelector_FallsBackWhenEmpty(t *testing.T) {
	svc := NewStatusCatalogService(&fakeStatusStore{})

	rows, err := svc.ListSelector(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("want 4 fallback statuses, got %d", len(rows))
	}
	if rows[0].AttendanceStatusCode != "PRESENT" {
		t.Fatalf("want PRESENT first, got %s", rows[0].AttendanceStatusCode)
	}
}

func TestListSelector_PrefersStoreRows(t *testing.T) {
	seeded := []statmodel.AttendanceStatusModel{
		{AttendanceStatusID: 10, AttendanceStatusCode: "CUSTOM", AttendanceStatusIsActive: true},
	}
	svc := NewStatusCatalogService(&fakeStatusStore{active: seeded})

	rows, err := svc.ListSelector(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].AttendanceStatusCode != "CUSTOM" {
		t.Fatalf("want seeded catalog, got %+v", rows)
	}
}
