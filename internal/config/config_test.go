package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, ":8080", cfg.SpectateAddr)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.BattleTTL)
	assert.Equal(t, "scored", cfg.Strategy)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.True(t, cfg.OTelEnabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RPG_BATTLE_GRPC_PORT", "6000")
	t.Setenv("RPG_BATTLE_REDIS_ADDR", "localhost:6379")
	t.Setenv("RPG_BATTLE_BATTLE_TTL", "90m")
	t.Setenv("RPG_BATTLE_STRATEGY", "first-usable")
	t.Setenv("RPG_BATTLE_SEED", "42")
	t.Setenv("RPG_BATTLE_LOG_LEVEL", "DEBUG")
	t.Setenv("RPG_BATTLE_LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 90*time.Minute, cfg.BattleTTL)
	assert.Equal(t, "first-usable", cfg.Strategy)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, config.LogFormatJSON, cfg.LogFormat)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "RPG_BATTLE_GRPC_PORT", value: "70000"},
		{name: "unparseable port", key: "RPG_BATTLE_GRPC_PORT", value: "abc"},
		{name: "unknown strategy", key: "RPG_BATTLE_STRATEGY", value: "random"},
		{name: "unknown log level", key: "RPG_BATTLE_LOG_LEVEL", value: "loud"},
		{name: "unknown log format", key: "RPG_BATTLE_LOG_FORMAT", value: "xml"},
		{name: "zero ttl", key: "RPG_BATTLE_BATTLE_TTL", value: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}
