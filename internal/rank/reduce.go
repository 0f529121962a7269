package rank

import (
	"context"
	"encoding/binary"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/pranshuparmar/memtop/internal/proc"
	"github.com/pranshuparmar/memtop/pkg/model"
)

// DefaultLimit is how many processes a scan keeps.
const DefaultLimit = 10

// keySpace namespaces the per-scan record keys.
var keySpace = uuid.MustParse("6f1c58a4-3b0e-4c8e-9a53-2f7d1e4b9c10")

// Reduce drops failed results, ranks the rest by footprint (largest first,
// ties kept in enumeration order) and keeps at most limit records.
//
// Output depends only on cycle and the results slice, so the same input
// always produces the same records and keys.
func Reduce(cycle uint64, results []proc.Result, limit int) model.ScanResult {
	out := model.ScanResult{
		Cycle:   cycle,
		Records: []model.ProcessRecord{},
		Stats:   model.ScanStats{Enumerated: len(results)},
	}

	kept := make([]proc.Result, 0, len(results))
	for _, r := range results {
		if !r.OK() {
			if out.Stats.Failures == nil {
				out.Stats.Failures = make(map[string]int)
			}
			out.Stats.Failures[failureLabel(r.Err)]++
			continue
		}
		kept = append(kept, r)
	}
	out.Stats.Collected = len(kept)

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Usage.PhysFootprint > kept[j].Usage.PhysFootprint
	})

	if limit <= 0 {
		return out
	}
	if len(kept) > limit {
		kept = kept[:limit]
	}

	out.Records = make([]model.ProcessRecord, len(kept))
	for i, r := range kept {
		out.Records[i] = toRecord(cycle, i, r)
	}
	return out
}

func toRecord(cycle uint64, rank int, r proc.Result) model.ProcessRecord {
	u := r.Usage
	return model.ProcessRecord{
		Key:        recordKey(cycle, rank, r.Process.PID()),
		PID:        int32(r.Process.PID()),
		Name:       r.Name,
		Footprint:  u.PhysFootprint,
		Resident:   u.ResidentSize,
		UserTime:   u.UserTime,
		SystemTime: u.SystemTime,
		Pageins:    u.Pageins,
		DiskRead:   u.DiskioBytesRead,
		DiskWrite:  u.DiskioBytesWritten,
	}
}

// recordKey derives a name-based UUID from the scan cycle, rank position and
// pid. A new cycle always yields new keys.
func recordKey(cycle uint64, rank int, pid proc.PID) string {
	var b [20]byte
	binary.BigEndian.PutUint64(b[0:8], cycle)
	binary.BigEndian.PutUint64(b[8:16], uint64(rank))
	binary.BigEndian.PutUint32(b[16:20], uint32(pid))
	return uuid.NewSHA1(keySpace, b[:]).String()
}

func failureLabel(err error) string {
	var ue *proc.UsageError
	if errors.As(err, &ue) {
		return ue.Kind.String()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "cancelled"
	}
	return proc.KindUnknown.String()
}
