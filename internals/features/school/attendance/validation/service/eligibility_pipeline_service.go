// file: internals/features/school/attendance/validation/service/eligibility_pipeline_service.go
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	calmodel "sekolahku_backend/internals/features/school/academics/calendar/model"
	"sekolahku_backend/internals/helpers/apperr"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* ===============================
   Params & hasil
=================================*/

// EligibilityParams: konteks pendaftaran yang sedang disusun user.
// CycleID & Date wajib; sisanya opsional — cek yang inputnya belum ada
// dilewati (bukan lulus, bukan gagal: tidak masuk agregasi).
type EligibilityParams struct {
	CycleID uuid.UUID
	Date    time.Time

	BimesterID *uuid.UUID
	TeacherID  *uuid.UUID
	SectionID  *uuid.UUID

	RoleID       int
	StudentCount *int
}

type CheckResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`

	// Informational: dilaporkan tapi tidak pernah mempengaruhi
	// OverallStatus (cek konfigurasi aktif).
	Informational bool `json:"informational"`
}

type EligibilityResult struct {
	Checks        []CheckResult `json:"checks"`
	OverallStatus string        `json:"overall_status"` // "success" | "failed"

	// IsComplete true begitu SEMUA cek applicable sudah kembali — cek
	// yang error dilaporkan sebagai gagal dan tetap dihitung kembali.
	// Klien tidak boleh membaca OverallStatus selama flag ini false;
	// false hanya untuk context yang keburu habis/dibatalkan.
	IsComplete bool `json:"is_complete"`

	// GlobalError terisi hanya untuk kegagalan sistemik (context habis,
	// atau SEMUA cek error). Kegagalan per-cek biasa tidak mengisinya.
	GlobalError string `json:"global_error,omitempty"`
}

const (
	OverallSuccess = "success"
	OverallFailed  = "failed"
)

const (
	CheckBimester        = "bimester"
	CheckHoliday         = "holiday"
	CheckAcademicWeek    = "academic_week"
	CheckTeacherAbsence  = "teacher_absence"
	CheckTeacherSchedule = "teacher_schedule"
	CheckSectionSchedule = "section_schedule"
	CheckRoleStatuses    = "role_statuses"
	CheckActiveConfig    = "active_config"
)

/* ===============================
   Pipeline
=================================*/

type EligibilityPipeline struct {
	Calendar   CalendarGateway
	Schedules  ScheduleGateway
	RoleStatus RoleStatusGateway
	Config     ConfigGateway
}

func NewEligibilityPipeline(cal CalendarGateway, sch ScheduleGateway, rs RoleStatusGateway, cfg ConfigGateway) *EligibilityPipeline {
	return &EligibilityPipeline{Calendar: cal, Schedules: sch, RoleStatus: rs, Config: cfg}
}

type checkOutcome struct {
	result  CheckResult
	errored bool
}

type checkFn func(ctx context.Context) checkOutcome

// Run menjalankan semua cek yang applicable secara paralel. Error satu
// cek tidak menghentikan yang lain: cek itu dicatat gagal dengan pesan
// errornya, dan hasil tetap complete selama semua cek sempat kembali.
func (p *EligibilityPipeline) Run(ctx context.Context, params EligibilityParams) (EligibilityResult, error) {
	if params.CycleID == uuid.Nil {
		return EligibilityResult{}, apperr.NewValidation("Cycle belum dipilih")
	}
	if params.Date.IsZero() {
		return EligibilityResult{}, apperr.NewValidation("Tanggal belum dipilih")
	}

	isoDay := dbtime.ISODayInSchool(params.Date)

	var checks []checkFn

	// 1. Tanggal jatuh di dalam bimester cycle (keberadaan = lulus).
	checks = append(checks, func(ctx context.Context) checkOutcome {
		lk, err := p.Calendar.BimesterByDate(ctx, params.CycleID, params.Date)
		if err != nil {
			return failedToRun(CheckBimester, "Bimester", err)
		}
		if !lk.Found {
			return outcome(CheckBimester, "Bimester", false, "Tanggal di luar semua bimester cycle ini")
		}
		return outcome(CheckBimester, "Bimester", true, fmt.Sprintf("Masuk %s", lk.Value.Name))
	})

	// 2. Hari libur: KEBERADAAN record = gagal.
	if params.BimesterID != nil {
		bimID := *params.BimesterID
		checks = append(checks, func(ctx context.Context) checkOutcome {
			lk, err := p.Calendar.HolidayByDate(ctx, bimID, params.Date)
			if err != nil {
				return failedToRun(CheckHoliday, "Hari libur", err)
			}
			if lk.Found {
				return outcome(CheckHoliday, "Hari libur", false, fmt.Sprintf("Tanggal adalah hari libur: %s", lk.Value.Description))
			}
			return outcome(CheckHoliday, "Hari libur", true, "Bukan hari libur")
		})

		// 3. Minggu akademik: harus ada dan bukan tipe break.
		checks = append(checks, func(ctx context.Context) checkOutcome {
			lk, err := p.Calendar.AcademicWeekByDate(ctx, bimID, params.Date)
			if err != nil {
				return failedToRun(CheckAcademicWeek, "Minggu akademik", err)
			}
			if !lk.Found {
				return outcome(CheckAcademicWeek, "Minggu akademik", false, "Tanggal di luar minggu akademik")
			}
			if lk.Value.Type == calmodel.AcademicWeekTypeBreak {
				return outcome(CheckAcademicWeek, "Minggu akademik", false, fmt.Sprintf("Minggu ke-%d adalah minggu break", lk.Value.Number))
			}
			return outcome(CheckAcademicWeek, "Minggu akademik", true, fmt.Sprintf("Minggu ke-%d (%s)", lk.Value.Number, lk.Value.Type))
		})
	}

	if params.TeacherID != nil {
		teacherID := *params.TeacherID

		// 4. Ketidakhadiran guru: KEBERADAAN record = gagal.
		checks = append(checks, func(ctx context.Context) checkOutcome {
			lk, err := p.Schedules.TeacherAbsenceByDate(ctx, teacherID, params.Date)
			if err != nil {
				return failedToRun(CheckTeacherAbsence, "Ketersediaan guru", err)
			}
			if lk.Found {
				return outcome(CheckTeacherAbsence, "Ketersediaan guru", false, fmt.Sprintf("Guru tidak tersedia: %s", lk.Value.Reason))
			}
			return outcome(CheckTeacherAbsence, "Ketersediaan guru", true, "Guru tersedia")
		})

		// 5. Jadwal mengajar guru pada hari ISO tsb (keberadaan = lulus).
		checks = append(checks, func(ctx context.Context) checkOutcome {
			var sectionID uuid.UUID
			if params.SectionID != nil {
				sectionID = *params.SectionID
			}
			ok, err := p.Schedules.TeacherScheduleExists(ctx, teacherID, isoDay, sectionID)
			if err != nil {
				return failedToRun(CheckTeacherSchedule, "Jadwal guru", err)
			}
			if !ok {
				return outcome(CheckTeacherSchedule, "Jadwal guru", false, "Guru tidak punya jadwal di hari ini")
			}
			return outcome(CheckTeacherSchedule, "Jadwal guru", true, "Guru terjadwal")
		})
	}

	// 6. Jadwal section + roster tidak kosong.
	if params.SectionID != nil {
		sectionID := *params.SectionID
		checks = append(checks, func(ctx context.Context) checkOutcome {
			ok, err := p.Schedules.SectionScheduleExists(ctx, sectionID, isoDay)
			if err != nil {
				return failedToRun(CheckSectionSchedule, "Jadwal section", err)
			}
			if !ok {
				return outcome(CheckSectionSchedule, "Jadwal section", false, "Section tidak punya mapel terjadwal di hari ini")
			}
			if params.StudentCount != nil && *params.StudentCount == 0 {
				return outcome(CheckSectionSchedule, "Jadwal section", false, "Section tidak punya siswa aktif")
			}
			return outcome(CheckSectionSchedule, "Jadwal section", true, "Section terjadwal")
		})
	}

	// 7. Role punya status absensi.
	if params.RoleID > 0 {
		roleID := params.RoleID
		checks = append(checks, func(ctx context.Context) checkOutcome {
			ok, err := p.RoleStatus.RoleHasStatuses(ctx, roleID)
			if err != nil {
				return failedToRun(CheckRoleStatuses, "Status absensi role", err)
			}
			if !ok {
				return outcome(CheckRoleStatuses, "Status absensi role", false, "Role ini tidak punya status absensi")
			}
			return outcome(CheckRoleStatuses, "Status absensi role", true, "Role punya status absensi")
		})
	}

	// 8. Konfigurasi aktif — informasional, tidak mempengaruhi overall.
	checks = append(checks, func(ctx context.Context) checkOutcome {
		lk, err := p.Config.ActiveConfig(ctx, params.CycleID)
		if err != nil {
			out := failedToRun(CheckActiveConfig, "Konfigurasi absensi", err)
			out.result.Informational = true
			return out
		}
		if !lk.Found {
			return infoOutcome(CheckActiveConfig, "Konfigurasi absensi", false, "Belum ada konfigurasi absensi aktif untuk cycle ini")
		}
		return infoOutcome(CheckActiveConfig, "Konfigurasi absensi", true,
			fmt.Sprintf("Jam pencatatan %s–%s, jendela edit %d hari", lk.Value.OpenTime, lk.Value.CloseTime, lk.Value.EditWindowDays))
	})

	outcomes := make([]checkOutcome, len(checks))
	var wg sync.WaitGroup
	for i, fn := range checks {
		wg.Add(1)
		go func(i int, fn checkFn) {
			defer wg.Done()
			outcomes[i] = fn(ctx)
		}(i, fn)
	}
	wg.Wait()

	res := EligibilityResult{
		Checks:     make([]CheckResult, 0, len(outcomes)),
		IsComplete: true,
	}
	allPassed := true
	erroredCount := 0
	for _, o := range outcomes {
		res.Checks = append(res.Checks, o.result)
		if o.errored {
			erroredCount++
		}
		if !o.result.Informational && !o.result.Passed {
			allPassed = false
		}
	}
	if ctx.Err() != nil {
		res.IsComplete = false
		res.GlobalError = fmt.Sprintf("Validasi terhenti: %v", ctx.Err())
	} else if erroredCount == len(outcomes) {
		res.GlobalError = "Semua cek gagal dijalankan — layanan data kemungkinan sedang bermasalah"
	}
	if allPassed {
		res.OverallStatus = OverallSuccess
	} else {
		res.OverallStatus = OverallFailed
	}
	return res, nil
}

func outcome(id, name string, passed bool, msg string) checkOutcome {
	return checkOutcome{result: CheckResult{ID: id, Name: name, Passed: passed, Message: msg}}
}

func infoOutcome(id, name string, passed bool, msg string) checkOutcome {
	return checkOutcome{result: CheckResult{ID: id, Name: name, Passed: passed, Message: msg, Informational: true}}
}

func failedToRun(id, name string, err error) checkOutcome {
	return checkOutcome{
		result: CheckResult{
			ID:      id,
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("Gagal memeriksa: %v", err),
		},
		errored: true,
	}
}
