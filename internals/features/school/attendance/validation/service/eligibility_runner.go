// file: internals/features/school/attendance/validation/service/eligibility_runner.go
package service

import (
	"context"
	"sync"
	"sync/atomic"
)

// EligibilityRunner menjaga supaya hasil run lama tidak menimpa hasil
// run baru: tiap Run dapat nomor generasi; hasil hanya disimpan kalau
// generasinya masih yang terbaru saat selesai. Pola untuk UI yang
// memvalidasi ulang setiap kali user mengubah dropdown pendaftaran.
type EligibilityRunner struct {
	Pipeline *EligibilityPipeline

	gen atomic.Int64

	mu     sync.Mutex
	latest *EligibilityResult
}

func NewEligibilityRunner(p *EligibilityPipeline) *EligibilityRunner {
	return &EligibilityRunner{Pipeline: p}
}

// Run menjalankan pipeline dan mengembalikan hasilnya ke pemanggil.
// Hasil run yang sudah basi tetap dikembalikan ke pemanggilnya sendiri,
// tapi tidak disimpan sebagai snapshot terbaru.
func (r *EligibilityRunner) Run(ctx context.Context, params EligibilityParams) (EligibilityResult, error) {
	myGen := r.gen.Add(1)

	res, err := r.Pipeline.Run(ctx, params)
	if err != nil {
		return EligibilityResult{}, err
	}

	if r.gen.Load() == myGen {
		r.mu.Lock()
		if r.gen.Load() == myGen {
			cp := res
			r.latest = &cp
		}
		r.mu.Unlock()
	}
	return res, nil
}

// Snapshot: hasil run terbaru yang selesai tanpa disalip run lain.
func (r *EligibilityRunner) Snapshot() (EligibilityResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.latest == nil {
		return EligibilityResult{}, false
	}
	return *r.latest, true
}
