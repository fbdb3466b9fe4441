// file: internals/features/school/attendance/statuses/model/role_attendance_status_model.go
package model

import "time"

// Grant status per role: role hanya boleh memakai status yang punya baris
// di tabel ini. Tidak ada baris untuk sebuah role = role itu tidak boleh
// mencatat absensi sama sekali.
type RoleAttendanceStatusModel struct {
	RoleAttendanceStatusID int `gorm:"primaryKey;autoIncrement;column:role_attendance_status_id" json:"role_attendance_status_id"`

	RoleAttendanceStatusRoleID   int `gorm:"not null;uniqueIndex:uq_role_status;column:role_attendance_status_role_id"   json:"role_attendance_status_role_id"`
	RoleAttendanceStatusStatusID int `gorm:"not null;uniqueIndex:uq_role_status;column:role_attendance_status_status_id" json:"role_attendance_status_status_id"`

	RoleAttendanceStatusCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:role_attendance_status_created_at" json:"role_attendance_status_created_at"`
}

func (RoleAttendanceStatusModel) TableName() string {
	return "role_attendance_statuses"
}
