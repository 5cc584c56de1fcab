package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-size", "32", "-seed", "9", "-speed", "1500", "-scale", "10"}))

	assert.Equal(t, 32, cfg.Size)
	assert.Equal(t, 10, cfg.Scale)
	assert.Equal(t, map[string]string{"size": "32", "seed": "9", "speed": "1500"}, cfg.SimParams())
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "lifecycle", cfg.Sim)
	assert.Equal(t, 20, cfg.Size)
	assert.Equal(t, 1000, cfg.Speed)
}
