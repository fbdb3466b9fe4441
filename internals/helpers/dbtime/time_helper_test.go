// file: internals/helpers/dbtime/time_helper_test.go
package dbtime

import (
	"testing"
	"time"
)

func TestISODayInSchool(t *testing.T) {
	// Default timezone sekolah: America/Lima (UTC-5).
	cases := map[string]struct {
		in   time.Time
		want int
	}{
		"senin siang UTC": {
			in:   time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC), // Senin di Lima juga
			want: 1,
		},
		"minggu": {
			in:   time.Date(2026, 3, 8, 15, 0, 0, 0, time.UTC),
			want: 7,
		},
		// 03:00 UTC Jumat = 22:00 Kamis di Lima → hari jadwalnya Kamis.
		"geser hari karena zona": {
			in:   time.Date(2024, 3, 15, 3, 0, 0, 0, time.UTC),
			want: 4,
		},
	}

	for name, tc := range cases {
		if got := ISODayInSchool(tc.in); got != tc.want {
			t.Fatalf("%s: want %d, got %d", name, tc.want, got)
		}
	}
}

func TestTodParseAndValue(t *testing.T) {
	tod, err := Parse("07:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v, err := tod.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "07:30:00" {
		t.Fatalf("want 07:30:00, got %v", v)
	}

	if _, err := Parse("25:99"); err == nil {
		t.Fatalf("invalid time must fail to parse")
	}
}
