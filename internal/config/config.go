// Package config loads process configuration from environment variables.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/riftline/encounter-engine/internal/errors"
)

// Config holds everything the CLI harness needs to wire the engine
type Config struct {
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// ProfilePath points at a yaml profile document; empty means the
	// built-in combat profile.
	ProfilePath string `env:"PROFILE_PATH"`

	// NarratorName is the transcript speaker identity used for summaries.
	NarratorName string `env:"NARRATOR_NAME" envDefault:"Narrator"`
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &cfg, nil
}
