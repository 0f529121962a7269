package proc

import "math/bits"

// Timebase is the mach_timebase_info ratio that converts mach absolute-time
// ticks into nanoseconds. It is 1/1 on Intel Macs and 125/3 on Apple Silicon.
type Timebase struct {
	Numer uint32
	Denom uint32
}

// Nanos converts ticks to nanoseconds without overflowing the intermediate
// product. A zero Denom is treated as 1/1.
func (tb Timebase) Nanos(ticks uint64) uint64 {
	if tb.Denom == 0 || tb.Numer == tb.Denom {
		return ticks
	}
	hi, lo := bits.Mul64(ticks, uint64(tb.Numer))
	if hi >= uint64(tb.Denom) {
		return ^uint64(0)
	}
	q, _ := bits.Div64(hi, lo, uint64(tb.Denom))
	return q
}

// scaleTimes rewrites every tick-valued duration in info as nanoseconds.
// The *Abstime fields are timestamps and stay in ticks.
func (tb Timebase) scaleTimes(info *RusageInfo) {
	for _, f := range []*uint64{
		&info.UserTime,
		&info.SystemTime,
		&info.ChildUserTime,
		&info.ChildSystemTime,
		&info.CPUTimeQOSDefault,
		&info.CPUTimeQOSMaintenance,
		&info.CPUTimeQOSBackground,
		&info.CPUTimeQOSUtility,
		&info.CPUTimeQOSLegacy,
		&info.CPUTimeQOSUserInitiated,
		&info.CPUTimeQOSUserInteractive,
		&info.BilledSystemTime,
		&info.ServicedSystemTime,
		&info.RunnableTime,
	} {
		*f = tb.Nanos(*f)
	}
}
