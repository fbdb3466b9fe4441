// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	statmodel "sekolahku_backend/internals/features/school/attendance/statuses/model"
	statsvc "sekolahku_backend/internals/features/school/attendance/statuses/service"
)

// Role id numerik mengikuti klaim token dari layanan auth eksternal.
const (
	roleIDTeacher   = 2
	roleIDAuxiliary = 3
	roleIDAdmin     = 4
)

// RunAllSeeds mengisi katalog status absensi + grant role dasar.
// Idempoten: baris yang sudah ada dilewati, tidak ditimpa.
func RunAllSeeds(db *gorm.DB) {
	seedAttendanceStatuses(db)
	seedRoleGrants(db)
}

func seedAttendanceStatuses(db *gorm.DB) {
	for _, st := range statsvc.DefaultStatuses() {
		var existing statmodel.AttendanceStatusModel
		err := db.Where("attendance_status_code = ?", st.AttendanceStatusCode).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("[SEED] cek status %s gagal: %v", st.AttendanceStatusCode, err)
			continue
		}
		st.AttendanceStatusID = 0 // biar autoIncrement yang kasih id
		if err := db.Create(&st).Error; err != nil {
			log.Printf("[SEED] insert status %s gagal: %v", st.AttendanceStatusCode, err)
		}
	}
}

func seedRoleGrants(db *gorm.DB) {
	var statuses []statmodel.AttendanceStatusModel
	if err := db.Where("attendance_status_is_active = TRUE").Find(&statuses).Error; err != nil {
		log.Printf("[SEED] load statuses gagal: %v", err)
		return
	}

	// Teacher & admin dapat semua status; auxiliary tidak dapat status
	// excused (koreksi izin lewat admin).
	for _, st := range statuses {
		grantIfMissing(db, roleIDTeacher, st.AttendanceStatusID)
		grantIfMissing(db, roleIDAdmin, st.AttendanceStatusID)
		if !st.AttendanceStatusIsExcused {
			grantIfMissing(db, roleIDAuxiliary, st.AttendanceStatusID)
		}
	}
}

func grantIfMissing(db *gorm.DB, roleID, statusID int) {
	var n int64
	db.Model(&statmodel.RoleAttendanceStatusModel{}).
		Where("role_attendance_status_role_id = ? AND role_attendance_status_status_id = ?", roleID, statusID).
		Count(&n)
	if n > 0 {
		return
	}
	grant := statmodel.RoleAttendanceStatusModel{
		RoleAttendanceStatusRoleID:   roleID,
		RoleAttendanceStatusStatusID: statusID,
	}
	if err := db.Create(&grant).Error; err != nil {
		log.Printf("[SEED] grant role=%d status=%d gagal: %v", roleID, statusID, err)
	}
}
