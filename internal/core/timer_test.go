package core

import (
	"testing"
	"time"
)

func TestTickDelayFollowsSpeed(t *testing.T) {
	cases := []struct {
		speed int
		want  time.Duration
	}{
		{speed: SpeedDefault, want: 1000 * time.Millisecond},
		{speed: SpeedMin, want: 1900 * time.Millisecond},
		{speed: SpeedMax, want: 100 * time.Millisecond},
		{speed: 0, want: 1900 * time.Millisecond},
		{speed: 5000, want: 100 * time.Millisecond},
	}
	for _, tc := range cases {
		if got := TickDelay(tc.speed); got != tc.want {
			t.Fatalf("TickDelay(%d) = %v, expected %v", tc.speed, got, tc.want)
		}
	}
}

func TestFixedStepFiresOncePerDelay(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should fire immediately")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not fire before the delay elapsed")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should fire once the delay elapsed")
	}

	fs.SetDelay(time.Second)
	clock = clock.Add(500 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("longer delay should hold the next tick back")
	}
	clock = clock.Add(500 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should fire after the new delay")
	}
}

func TestFixedStepDoesNotBurstAfterStall(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10 * time.Millisecond)
	fs.now = func() time.Time { return clock }
	fs.Restart()
	fs.ShouldStep()

	clock = clock.Add(time.Second)
	fired := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired > 2 {
		t.Fatalf("expected at most 2 catch-up ticks after a stall, got %d", fired)
	}
}

func TestNewFixedStepTPS(t *testing.T) {
	if got := NewFixedStepTPS(20).Delay(); got != 50*time.Millisecond {
		t.Fatalf("expected 50ms delay for 20 TPS, got %v", got)
	}
	if got := NewFixedStepTPS(0).Delay(); got != time.Second/60 {
		t.Fatalf("expected default 60 TPS, got %v", got)
	}
}
