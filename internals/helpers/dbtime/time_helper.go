// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"time"

	"sekolahku_backend/internals/configs"
)

// ToSchoolTime mengonversi waktu (biasanya dari DB = UTC) ke timezone sekolah.
// Kalau t.IsZero() → dikembalikan apa adanya.
func ToSchoolTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(configs.SchoolLocation())
}

// Versi pointer, biar gampang dipakai di DTO yg pakai *time.Time
func ToSchoolTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := ToSchoolTime(*t)
	return &v
}

// NowInSchool: "sekarang" menurut timezone sekolah.
func NowInSchool() time.Time {
	return time.Now().In(configs.SchoolLocation())
}

// ISODayInSchool: ISO day-of-week (Senin=1 .. Minggu=7) untuk tanggal t,
// dihitung PADA timezone sekolah. Jangan pakai Weekday() dari zona server:
// selisih zona bisa menggeser hari yang dicek jadwalnya.
func ISODayInSchool(t time.Time) int {
	wd := t.In(configs.SchoolLocation()).Weekday()
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}
