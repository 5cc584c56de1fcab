package core

import "time"

// Speed slider bounds. The tick delay is SpeedCeiling minus the slider value,
// so a faster setting means a shorter wait between ticks.
const (
	SpeedMin     = 100
	SpeedMax     = 1900
	SpeedStep    = 100
	SpeedDefault = 1000
	SpeedCeiling = 2000
)

// ClampSpeed bounds a speed setting to [SpeedMin, SpeedMax].
func ClampSpeed(speed int) int {
	if speed < SpeedMin {
		return SpeedMin
	}
	if speed > SpeedMax {
		return SpeedMax
	}
	return speed
}

// TickDelay converts a speed setting into the wait between two ticks.
func TickDelay(speed int) time.Duration {
	return time.Duration(SpeedCeiling-ClampSpeed(speed)) * time.Millisecond
}

// FixedStep helps run simulation updates with a steady delay between ticks.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller that fires once per delay.
// The first call to ShouldStep fires immediately.
func NewFixedStep(delay time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetDelay(delay)
	fs.accumulator = fs.step
	return fs
}

// NewFixedStepTPS constructs a FixedStep controller targeting the given TPS.
func NewFixedStepTPS(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return NewFixedStep(time.Second / time.Duration(tps))
}

// SetDelay changes the wait between ticks. It is safe to call from the main loop.
func (f *FixedStep) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = time.Second / 60
	}
	f.step = delay
}

// Delay reports the current wait between ticks.
func (f *FixedStep) Delay() time.Duration { return f.step }

// Restart drops accumulated time so the next tick waits a full delay.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
