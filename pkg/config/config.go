// Package config loads the engine's ambient configuration — worker
// count, batch cadence, PBKDF2 iteration default, and log
// format/level — via an optional .env file
// (github.com/joho/godotenv) followed by struct population
// (github.com/kelseyhightower/envconfig). No transaction business
// field (amount, currency, card token, ...) is ever sourced from the
// environment; EngineConfig configures the process, never a payment
// instruction.
package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EngineConfig holds the engine's tunables.
type EngineConfig struct {
	// WorkerCount is the number of worker goroutines the pool starts.
	WorkerCount int `envconfig:"WORKER_COUNT" default:"4"`

	// DequeueTimeout bounds how long a worker blocks on an empty queue
	// before re-checking the running flag.
	DequeueTimeout time.Duration `envconfig:"DEQUEUE_TIMEOUT" default:"100ms"`

	// BatchInterval is the default auto-flush cadence for the batch
	// accumulator.
	BatchInterval time.Duration `envconfig:"BATCH_INTERVAL" default:"30s"`

	// PBKDF2Iterations is the default iteration count callers are
	// handed when they don't pick their own; 100,000+ is the advised
	// floor for PBKDF2-HMAC-SHA256.
	PBKDF2Iterations int `envconfig:"PBKDF2_ITERATIONS" default:"100000"`

	// LogFormat and LogLevel feed pkg/logging.
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file (missing is not an error) and then
// populates an EngineConfig from the process environment under the
// PAYCORE_ prefix (e.g. PAYCORE_WORKER_COUNT).
func Load(logger *slog.Logger) (*EngineConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using system environment variables")
	}

	var cfg EngineConfig
	if err := envconfig.Process("paycore", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
