// Package config loads the tracewatch settings from TRACEWATCH_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/tracewatch/internal/pkg/validator"
	"github.com/gabapcia/tracewatch/internal/transfertrace"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. TRACEWATCH_RPC_URL.
const Prefix = "TRACEWATCH"

// Config holds every runtime setting.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"tracewatch" validate:"required"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	RPCURL       string        `envconfig:"RPC_URL" default:"http://localhost:8545" validate:"required,url"`
	RPCTimeout   time.Duration `envconfig:"RPC_TIMEOUT" default:"30s" validate:"gt=0"`
	RPCRetryMax  int           `envconfig:"RPC_RETRY_MAX" default:"0" validate:"min=0"`
	TraceTimeout string        `envconfig:"TRACE_TIMEOUT" default:"10s" validate:"required,tracer_timeout"`

	WatchedAddress       string `envconfig:"WATCHED_ADDRESS" default:"0x47ce0c6ed5b0ce3d3a51fdb1c52dc66a7c3c2936" validate:"required,eth_addr"`
	MalformedValuePolicy string `envconfig:"MALFORMED_VALUE_POLICY" default:"zero" validate:"oneof=zero fail"`
	ScanConcurrency      int    `envconfig:"SCAN_CONCURRENCY" default:"4" validate:"min=1"`
	ScanMaxBlockRange    uint64 `envconfig:"SCAN_MAX_BLOCK_RANGE" default:"1000" validate:"min=1"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS" validate:"dive,hostname_port"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"tracewatch.transfers" validate:"required"`
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Policy returns the parsed malformed value policy.
func (c Config) Policy() (transfertrace.MalformedValuePolicy, error) {
	return transfertrace.ParseMalformedValuePolicy(c.MalformedValuePolicy)
}

// KafkaEnabled reports whether transfers should be published to Kafka.
func (c Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
