package poll

import (
	"sync/atomic"

	"github.com/pranshuparmar/memtop/pkg/model"
)

// Holder keeps the most recently published scan. One goroutine writes, any
// number read; a publish replaces the previous value outright.
type Holder struct {
	latest atomic.Pointer[model.ScanResult]
}

// Latest returns the last published scan. ok is false until the first
// publish.
func (h *Holder) Latest() (result model.ScanResult, ok bool) {
	p := h.latest.Load()
	if p == nil {
		return model.ScanResult{}, false
	}
	return *p, true
}

func (h *Holder) publish(result model.ScanResult) {
	h.latest.Store(&result)
}
