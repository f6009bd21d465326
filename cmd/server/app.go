package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/clients/dex"
	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/engine/ai"
	"github.com/KirkDiggler/rpg-battle/internal/engine/turn"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-battle/internal/redis"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battles"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/history"
)

// app holds the wired service and everything that must be closed with it
type app struct {
	dex      dex.Client
	service  battle.Service
	eventBus events.EventBus
	closers  []io.Closer
}

func (a *app) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func newRandom(cfg *config.Config) rng.Source {
	if cfg.Seed != 0 {
		return rng.NewSeeded(cfg.Seed)
	}
	return rng.NewDice(nil)
}

func newBattleRepo(ctx context.Context, cfg *config.Config, clk clock.Clock, a *app) (battles.Repository, error) {
	if cfg.RedisAddr == "" {
		slog.Info("battles kept in memory")
		return battles.NewInMemory(clk), nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{UseTLS: cfg.RedisTLS})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client)
	if err := redis.Ping(ctx, client, 5*time.Second); err != nil {
		return nil, err
	}

	slog.Info("battles stored in redis", "addr", cfg.RedisAddr, "ttl", cfg.BattleTTL)
	return battles.NewRedisRepository(&battles.Config{Client: client, Clock: clk, TTL: cfg.BattleTTL})
}

// newApp wires the battle service from configuration
func newApp(ctx context.Context, cfg *config.Config) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	dexCfg := &dex.Config{}
	if cfg.DatasetDir != "" {
		dexCfg.FS = os.DirFS(cfg.DatasetDir)
	}
	a.dex, err = dex.New(dexCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dataset")
	}

	clk := clock.New()
	random := newRandom(cfg)

	battleRepo, err := newBattleRepo(ctx, cfg, clk, a)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create battle repository")
	}

	if dir := filepath.Dir(cfg.HistoryPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errors.Wrap(err, "failed to create history directory")
		}
	}
	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open history store")
	}
	a.closers = append(a.closers, store)

	strategy, err := ai.New(cfg.Strategy, a.dex, random)
	if err != nil {
		return nil, err
	}
	engine, err := turn.NewEngine(&turn.Config{Chart: a.dex, Random: random, Strategy: strategy})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create turn engine")
	}

	a.eventBus = events.NewBus()
	a.service, err = battle.NewOrchestrator(&battle.Config{
		Dex:         a.dex,
		BattleRepo:  battleRepo,
		HistoryRepo: store,
		Engine:      engine,
		Random:      random,
		IDGenerator: idgen.NewUUID("battle"),
		Clock:       clk,
		EventBus:    a.eventBus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create battle service")
	}
	return a, nil
}
