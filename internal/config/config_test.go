package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultGameYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("spawn:\n  period: 2500ms\nscoring:\n  policy: classic\n"))
	require.NoError(t, err)

	assert.Equal(t, 2500*time.Millisecond, cfg.Spawn.Period)
	assert.Equal(t, ScoringClassic, cfg.Scoring.Policy)
	assert.Equal(t, 4, cfg.Spawn.InitialCount, "unset fields keep defaults")
	assert.Equal(t, 800.0, cfg.World.Width)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("world: [not, a, map"))
	assert.Error(t, err)
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  width: 1024\n  height: 768\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, cfg.World.Width)
	assert.Equal(t, 768.0, cfg.World.Height)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("collision:\n  broadphase: quadtree\nloop:\n  tick_rate: 0\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "quadtree")
	assert.Contains(t, err.Error(), "tick_rate")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero world", func(c *Config) { c.World.Width = 0 }, true},
		{"negative period", func(c *Config) { c.Spawn.Period = -time.Second }, true},
		{"period disabled", func(c *Config) { c.Spawn.Period = 0 }, false},
		{"no retries", func(c *Config) { c.Spawn.MaxRetries = 0 }, true},
		{"unknown scoring", func(c *Config) { c.Scoring.Policy = "double" }, true},
		{"flat needs per kill", func(c *Config) { c.Scoring.PerKill = 0 }, true},
		{"classic ignores per kill", func(c *Config) {
			c.Scoring.Policy = ScoringClassic
			c.Scoring.PerKill = 0
		}, false},
		{"grid broadphase", func(c *Config) { c.Collision.Broadphase = BroadphaseGrid }, false},
		{"zero lifetime", func(c *Config) { c.Projectile.Lifetime = 0 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvBroadphase, BroadphaseGrid)

	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg))
	assert.Equal(t, int64(42), cfg.Loop.Seed)
	assert.Equal(t, BroadphaseGrid, cfg.Collision.Broadphase)
	assert.Equal(t, ScoringFlat, cfg.Scoring.Policy)

	t.Setenv(EnvSeed, "forty-two")
	assert.ErrorIs(t, ApplyEnv(&cfg), ErrInvalid)
}

func TestFrameTime(t *testing.T) {
	assert.Equal(t, time.Second/60, LoopConfig{TickRate: 60}.FrameTime())
	assert.Equal(t, time.Second/60, LoopConfig{}.FrameTime())
	assert.Equal(t, 100*time.Millisecond, LoopConfig{TickRate: 10}.FrameTime())
}
