package lifecycle

import (
	"testing"

	"lifecycle-ca/internal/core"
)

func TestFromMapDefaults(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("nil map should yield defaults, got %+v", got)
	}
	c := DefaultConfig()
	if c.Size != 20 || c.Speed != 1000 || c.Weights != (Weights{25, 25, 25, 25}) {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestFromMapParsesValues(t *testing.T) {
	c := FromMap(map[string]string{
		"size":  "32",
		"seed":  "-9",
		"speed": "5000",
		"off":   "10",
		"young": "70",
	})
	if c.Size != 32 {
		t.Fatalf("expected size 32, got %d", c.Size)
	}
	if c.Seed != -9 {
		t.Fatalf("expected seed -9, got %d", c.Seed)
	}
	if c.Speed != core.SpeedMax {
		t.Fatalf("expected speed clamped to %d, got %d", core.SpeedMax, c.Speed)
	}
	if want := (Weights{4, 70, 13, 13}); c.Weights != want {
		t.Fatalf("expected weights %v, got %v", want, c.Weights)
	}
}

func TestFromMapIgnoresGarbage(t *testing.T) {
	c := FromMap(map[string]string{
		"size":  "-3",
		"seed":  "abc",
		"speed": "fast",
		"adult": "lots",
	})
	if c != DefaultConfig() {
		t.Fatalf("invalid values should be ignored, got %+v", c)
	}
}

func TestConfigMapRoundTrip(t *testing.T) {
	c := DefaultConfig()
	c.Size = 12
	c.Seed = 77
	c.Speed = 1500
	c.Weights = Weights{40, 20, 20, 20}
	if got := FromMap(c.Map()); got != c {
		t.Fatalf("expected %+v, got %+v", c, got)
	}
}
