// Package config loads server configuration from the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-battle/internal/engine/ai"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the full server configuration
type Config struct {
	GRPCPort     int    `env:"RPG_BATTLE_GRPC_PORT"     envDefault:"50051"`
	SpectateAddr string `env:"RPG_BATTLE_SPECTATE_ADDR" envDefault:":8080"`

	// RedisAddr selects the Redis battle store. Battles are kept in memory
	// when it is empty.
	RedisAddr string        `env:"RPG_BATTLE_REDIS_ADDR"`
	RedisTLS  bool          `env:"RPG_BATTLE_REDIS_TLS"`
	BattleTTL time.Duration `env:"RPG_BATTLE_BATTLE_TTL" envDefault:"24h"`

	HistoryPath string `env:"RPG_BATTLE_HISTORY_PATH" envDefault:"data/history.db"`
	// DatasetDir replaces the embedded dataset when set
	DatasetDir  string `env:"RPG_BATTLE_DATASET_DIR"`

	Strategy string `env:"RPG_BATTLE_STRATEGY" envDefault:"scored"`
	// Seed makes every battle reproducible when non-zero
	Seed     uint64 `env:"RPG_BATTLE_SEED"`

	LogLevel  string `env:"RPG_BATTLE_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"RPG_BATTLE_LOG_FORMAT" envDefault:"text"`

	OTelEnabled  bool   `env:"RPG_BATTLE_OTEL_ENABLED"  envDefault:"true"`
	OTelEndpoint string `env:"RPG_BATTLE_OTEL_ENDPOINT"`
	ServiceName  string `env:"RPG_BATTLE_SERVICE_NAME"  envDefault:"rpg-battle"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	vb.Range("GRPCPort", c.GRPCPort, 1, 65535)
	if c.BattleTTL <= 0 {
		vb.InvalidField("BattleTTL", "must be positive")
	}
	if strings.TrimSpace(c.HistoryPath) == "" {
		vb.RequiredField("HistoryPath")
	}
	switch c.Strategy {
	case ai.StrategyFirstUsable, ai.StrategyScored:
	default:
		vb.InvalidField("Strategy", "must be "+ai.StrategyFirstUsable+" or "+ai.StrategyScored)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.InvalidField("LogLevel", "must be debug, info, warn or error")
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		vb.InvalidField("LogFormat", "must be text or json")
	}

	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
