// file: internals/features/school/attendance/validation/service/eligibility_pipeline_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	calmodel "sekolahku_backend/internals/features/school/academics/calendar/model"
	"sekolahku_backend/internals/helpers/apperr"
)

/* ===== fakes ===== */

type fakeCalendar struct {
	bimester Lookup[BimesterInfo]
	holiday  Lookup[HolidayInfo]
	week     Lookup[AcademicWeekInfo]

	bimesterErr error
	holidayErr  error
	weekErr     error
}

func (f *fakeCalendar) BimesterByDate(context.Context, uuid.UUID, time.Time) (Lookup[BimesterInfo], error) {
	return f.bimester, f.bimesterErr
}
func (f *fakeCalendar) HolidayByDate(context.Context, uuid.UUID, time.Time) (Lookup[HolidayInfo], error) {
	return f.holiday, f.holidayErr
}
func (f *fakeCalendar) AcademicWeekByDate(context.Context, uuid.UUID, time.Time) (Lookup[AcademicWeekInfo], error) {
	return f.week, f.weekErr
}

type fakeSchedules struct {
	absence     Lookup[TeacherAbsenceInfo]
	teacherOK   bool
	sectionOK   bool
	absenceErr  error
	teacherErr  error
	sectionErr  error
	teacherGate chan struct{} // kalau non-nil, TeacherScheduleExists nunggu channel ditutup
}

func (f *fakeSchedules) TeacherAbsenceByDate(context.Context, uuid.UUID, time.Time) (Lookup[TeacherAbsenceInfo], error) {
	return f.absence, f.absenceErr
}
func (f *fakeSchedules) TeacherScheduleExists(context.Context, uuid.UUID, int, uuid.UUID) (bool, error) {
	if f.teacherGate != nil {
		<-f.teacherGate
	}
	return f.teacherOK, f.teacherErr
}
func (f *fakeSchedules) SectionScheduleExists(context.Context, uuid.UUID, int) (bool, error) {
	return f.sectionOK, f.sectionErr
}

type fakeRoleStatus struct {
	has bool
	err error
}

func (f *fakeRoleStatus) RoleHasStatuses(context.Context, int) (bool, error) { return f.has, f.err }

type fakeConfig struct {
	cfg Lookup[ConfigInfo]
	err error
}

func (f *fakeConfig) ActiveConfig(context.Context, uuid.UUID) (Lookup[ConfigInfo], error) {
	return f.cfg, f.err
}

/* ===== helpers ===== */

func passingPipeline() (*EligibilityPipeline, *fakeCalendar, *fakeSchedules) {
	cal := &fakeCalendar{
		bimester: Found(BimesterInfo{ID: uuid.New(), Name: "Bimester 1"}),
		holiday:  NotFound[HolidayInfo](),
		week:     Found(AcademicWeekInfo{ID: uuid.New(), Number: 3, Type: calmodel.AcademicWeekTypeRegular}),
	}
	sch := &fakeSchedules{
		absence:   NotFound[TeacherAbsenceInfo](),
		teacherOK: true,
		sectionOK: true,
	}
	return NewEligibilityPipeline(cal, sch, &fakeRoleStatus{has: true}, &fakeConfig{cfg: NotFound[ConfigInfo]()}), cal, sch
}

func fullParams() EligibilityParams {
	bimID := uuid.New()
	teacherID := uuid.New()
	sectionID := uuid.New()
	n := 25
	return EligibilityParams{
		CycleID:      uuid.New(),
		Date:         time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		BimesterID:   &bimID,
		TeacherID:    &teacherID,
		SectionID:    &sectionID,
		RoleID:       2,
		StudentCount: &n,
	}
}

func findCheck(t *testing.T, res EligibilityResult, id string) CheckResult {
	t.Helper()
	for _, c := range res.Checks {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("check %q not in result (got %d checks)", id, len(res.Checks))
	return CheckResult{}
}

/* ===== tests ===== */

func TestRun_RequiresCycleAndDate(t *testing.T) {
	p, _, _ := passingPipeline()

	_, err := p.Run(context.Background(), EligibilityParams{Date: time.Now()})
	if !apperr.IsValidation(err) {
		t.Fatalf("missing cycle: want validation error, got %v", err)
	}

	_, err = p.Run(context.Background(), EligibilityParams{CycleID: uuid.New()})
	if !apperr.IsValidation(err) {
		t.Fatalf("missing date: want validation error, got %v", err)
	}
}

func TestRun_AllPassing(t *testing.T) {
	p, _, _ := passingPipeline()

	res, err := p.Run(context.Background(), fullParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OverallStatus != OverallSuccess {
		t.Fatalf("want success, got %s (%+v)", res.OverallStatus, res.Checks)
	}
	if !res.IsComplete {
		t.Fatalf("want complete result")
	}
	if len(res.Checks) != 8 {
		t.Fatalf("want 8 checks, got %d", len(res.Checks))
	}
}

func TestRun_HolidayPresenceFails(t *testing.T) {
	p, cal, _ := passingPipeline()
	cal.holiday = Found(HolidayInfo{ID: uuid.New(), Description: "Fiestas Patrias"})

	res, err := p.Run(context.Background(), fullParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OverallStatus != OverallFailed {
		t.Fatalf("holiday present: want failed, got %s", res.OverallStatus)
	}
	c := findCheck(t, res, CheckHoliday)
	if c.Passed {
		t.Fatalf("holiday check should fail when a holiday exists")
	}
	if c.Message != "Tanggal adalah hari libur: Fiestas Patrias" {
		t.Fatalf("unexpected message: %q", c.Message)
	}
}

func TestRun_TeacherAbsencePresenceFails(t *testing.T) {
	p, _, sch := passingPipeline()
	sch.absence = Found(TeacherAbsenceInfo{ID: uuid.New(), Reason: "izin sakit"})

	res, err := p.Run(context.Background(), fullParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OverallStatus != OverallFailed {
		t.Fatalf("absence present: want failed, got %s", res.OverallStatus)
	}
	c := findCheck(t, res, CheckTeacherAbsence)
	if c.Passed {
		t.Fatalf("absence check should fail when an absence record exists")
	}
	if c.Message != "Guru tidak tersedia: izin sakit" {
		t.Fatalf("unexpected message: %q", c.Message)
	}

	// Polaritas kebalikan: tanpa record → lulus.
	sch.absence = NotFound[TeacherAbsenceInfo]()
	res, _ = p.Run(context.Background(), fullParams())
	if !findCheck(t, res, CheckTeacherAbsence).Passed {
		t.Fatalf("no absence record should pass the availability check")
	}
}

func TestRun_BimesterAbsenceFails(t *testing.T) {
	p, cal, _ := passingPipeline()
	cal.bimester = NotFound[BimesterInfo]()

	res, err := p.Run(context.Background(), fullParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if findCheck(t, res, CheckBimester).Passed {
		t.Fatalf("no bimester for date should fail")
	}
	if res.OverallStatus != OverallFailed {
		t.Fatalf("want failed overall")
	}
}

func TestRun_AcademicWeek(t *testing.T) {
	p, cal, _ := passingPipeline()

	cal.week = NotFound[AcademicWeekInfo]()
	res, _ := p.Run(context.Background(), fullParams())
	c := findCheck(t, res, CheckAcademicWeek)
	if c.Passed || c.Message != "Tanggal di luar minggu akademik" {
		t.Fatalf("outside weeks: got passed=%v msg=%q", c.Passed, c.Message)
	}

	cal.week = Found(AcademicWeekInfo{Number: 5, Type: calmodel.AcademicWeekTypeBreak})
	res, _ = p.Run(context.Background(), fullParams())
	if findCheck(t, res, CheckAcademicWeek).Passed {
		t.Fatalf("break week should fail")
	}

	cal.week = Found(AcademicWeekInfo{Number: 5, Type: calmodel.AcademicWeekTypeEvaluation})
	res, _ = p.Run(context.Background(), fullParams())
	if !findCheck(t, res, CheckAcademicWeek).Passed {
		t.Fatalf("evaluation week should pass")
	}
}

func TestRun_CycleOnlyRunsSubset(t *testing.T) {
	p, _, _ := passingPipeline()

	res, err := p.Run(context.Background(), EligibilityParams{
		CycleID: uuid.New(),
		Date:    time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		RoleID:  2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Hanya bimester + status role + konfigurasi yang applicable.
	if len(res.Checks) != 3 {
		t.Fatalf("want 3 checks, got %d: %+v", len(res.Checks), res.Checks)
	}
	findCheck(t, res, CheckBimester)
	findCheck(t, res, CheckRoleStatuses)
	findCheck(t, res, CheckActiveConfig)
}

func TestRun_GatewayErrorIsContained(t *testing.T) {
	p, cal, _ := passingPipeline()
	cal.holidayErr = errors.New("timeout")

	res, err := p.Run(context.Background(), fullParams())
	if err != nil {
		t.Fatalf("pipeline must not abort on a single check error: %v", err)
	}
	if !res.IsComplete {
		t.Fatalf("all checks returned (errored one as a failure), result is complete")
	}
	if findCheck(t, res, CheckHoliday).Passed {
		t.Fatalf("errored check reports as failed")
	}
	// Cek lain tetap jalan.
	if !findCheck(t, res, CheckBimester).Passed {
		t.Fatalf("other checks must still run")
	}
	if res.OverallStatus != OverallFailed {
		t.Fatalf("want failed overall")
	}
}

func TestRun_AllCheckersDownSetsGlobalError(t *testing.T) {
	boom := errors.New("connection refused")
	cal := &fakeCalendar{bimesterErr: boom, holidayErr: boom, weekErr: boom}
	sch := &fakeSchedules{absenceErr: boom, teacherErr: boom, sectionErr: boom}
	p := NewEligibilityPipeline(cal, sch, &fakeRoleStatus{err: boom}, &fakeConfig{err: boom})

	res, err := p.Run(context.Background(), fullParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.GlobalError == "" {
		t.Fatalf("every check errored: want a global error")
	}
	if !res.IsComplete {
		t.Fatalf("every check still returned; result is complete")
	}
	if res.OverallStatus != OverallFailed {
		t.Fatalf("want failed overall")
	}

	// Satu cek error saja bukan kegagalan sistemik.
	p2, cal2, _ := passingPipeline()
	cal2.holidayErr = boom
	res2, _ := p2.Run(context.Background(), fullParams())
	if res2.GlobalError != "" {
		t.Fatalf("single errored check must not set global error, got %q", res2.GlobalError)
	}
}

func TestRun_CancelledContextClearsIsComplete(t *testing.T) {
	p, _, _ := passingPipeline()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.Run(ctx, fullParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsComplete {
		t.Fatalf("cancelled context: result must not be complete")
	}
	if res.GlobalError == "" {
		t.Fatalf("cancelled context: want a global error")
	}
}

func TestRun_ActiveConfigIsInformational(t *testing.T) {
	p, _, _ := passingPipeline() // config NotFound

	res, err := p.Run(context.Background(), fullParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := findCheck(t, res, CheckActiveConfig)
	if c.Passed || !c.Informational {
		t.Fatalf("missing config: want informational non-pass, got %+v", c)
	}
	if res.OverallStatus != OverallSuccess {
		t.Fatalf("informational check must not fail overall, got %s", res.OverallStatus)
	}
}

func TestRun_EmptySectionRosterFails(t *testing.T) {
	p, _, _ := passingPipeline()
	params := fullParams()
	zero := 0
	params.StudentCount = &zero

	res, _ := p.Run(context.Background(), params)
	c := findCheck(t, res, CheckSectionSchedule)
	if c.Passed || c.Message != "Section tidak punya siswa aktif" {
		t.Fatalf("empty roster: got passed=%v msg=%q", c.Passed, c.Message)
	}
}

func TestRunner_StaleRunDoesNotOverwriteSnapshot(t *testing.T) {
	p, _, slowSch := passingPipeline()
	gate := make(chan struct{})
	slowSch.teacherGate = gate
	runner := NewEligibilityRunner(p)

	slowParams := fullParams()
	done := make(chan EligibilityResult, 1)
	go func() {
		res, err := runner.Run(context.Background(), slowParams)
		if err != nil {
			t.Errorf("slow run: %v", err)
		}
		done <- res
	}()

	// Run kedua (tanpa teacher → tidak kena gate) selesai duluan.
	fast := EligibilityParams{
		CycleID: uuid.New(),
		Date:    time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC),
		RoleID:  2,
	}
	// Pastikan run lambat sudah mengambil nomor generasinya dulu.
	time.Sleep(20 * time.Millisecond)
	fastRes, err := runner.Run(context.Background(), fast)
	if err != nil {
		t.Fatalf("fast run: %v", err)
	}
	if len(fastRes.Checks) != 3 {
		t.Fatalf("fast run: want 3 checks, got %d", len(fastRes.Checks))
	}

	// Lepaskan run lambat; hasilnya basi dan tidak boleh jadi snapshot.
	close(gate)
	slowRes := <-done
	if len(slowRes.Checks) != 8 {
		t.Fatalf("slow run still returns its own result, got %d checks", len(slowRes.Checks))
	}

	snap, ok := runner.Snapshot()
	if !ok {
		t.Fatalf("want a snapshot")
	}
	if len(snap.Checks) != 3 {
		t.Fatalf("snapshot must be the newest run (3 checks), got %d", len(snap.Checks))
	}
}
