package proc

import "testing"

func TestTimebaseNanos(t *testing.T) {
	tests := []struct {
		name  string
		tb    Timebase
		ticks uint64
		want  uint64
	}{
		{"intel", Timebase{1, 1}, 12345, 12345},
		{"zero denom", Timebase{}, 99, 99},
		{"apple silicon", Timebase{125, 3}, 24_000_000, 1_000_000_000},
		{"wide product", Timebase{125, 3}, 3 << 57, 125 << 57},
		{"saturates", Timebase{125, 3}, ^uint64(0), ^uint64(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tb.Nanos(tt.ticks); got != tt.want {
				t.Errorf("Nanos(%d) = %d, want %d", tt.ticks, got, tt.want)
			}
		})
	}
}

func TestScaleTimes(t *testing.T) {
	info := RusageInfo{
		UserTime:         24,
		SystemTime:       48,
		RunnableTime:     3,
		ProcStartAbstime: 24,
		PhysFootprint:    24,
	}
	Timebase{125, 3}.scaleTimes(&info)

	if info.UserTime != 1000 || info.SystemTime != 2000 || info.RunnableTime != 125 {
		t.Errorf("durations not scaled: user=%d system=%d runnable=%d", info.UserTime, info.SystemTime, info.RunnableTime)
	}
	if info.ProcStartAbstime != 24 || info.PhysFootprint != 24 {
		t.Errorf("non-duration fields changed: start=%d footprint=%d", info.ProcStartAbstime, info.PhysFootprint)
	}
}
