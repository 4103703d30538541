package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed       = "DRIFTROCKS_SEED"
	EnvBroadphase = "DRIFTROCKS_BROADPHASE"
	EnvScoring    = "DRIFTROCKS_SCORING"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ApplyEnv overrides selected fields from DRIFTROCKS_* environment variables.
// The result still has to pass Validate.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvSeed, v, err)
		}
		cfg.Loop.Seed = seed
	}
	cfg.Collision.Broadphase = GetEnv(EnvBroadphase, cfg.Collision.Broadphase)
	cfg.Scoring.Policy = GetEnv(EnvScoring, cfg.Scoring.Policy)
	return nil
}
