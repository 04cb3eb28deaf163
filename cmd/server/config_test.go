package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Millisecond, cfg.TickPeriod)
	assert.Equal(t, 16, cfg.MaxConsoles)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LADDERS_TICK", "5ms")
	t.Setenv("LADDERS_SEED", "77")
	t.Setenv("LADDERS_LAYOUT_FILE", "/tmp/board.txt")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 5*time.Millisecond, cfg.TickPeriod)
	assert.Equal(t, int64(77), cfg.Seed)
	assert.Equal(t, "/tmp/board.txt", cfg.LayoutFile)
}

func TestLoadConfigRejectsBadTick(t *testing.T) {
	t.Setenv("LADDERS_TICK", "0s")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("LADDERS_TICK", "soon")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	s := Server{}
	s.routes()
	assert.NotNil(t, s.router)
}
