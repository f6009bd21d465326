// Package battle implements the battle orchestrator. It loads and stores
// battles around the turn engine and records finished ones.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-battle/internal/clients/dex"
	"github.com/KirkDiggler/rpg-battle/internal/engine/turn"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battles"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/history"
)

const tracerName = "github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"

// Service defines the battle operations
type Service interface {
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)
	// PlayTurn resolves one turn. Turns on the same battle never overlap.
	PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error)
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)

	ListSpecies(ctx context.Context, input *ListSpeciesInput) (*ListSpeciesOutput, error)
	GetTypeAdvantages(ctx context.Context, input *GetTypeAdvantagesInput) (*GetTypeAdvantagesOutput, error)
	ListHistory(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error)
}

// TurnPlayer resolves a single turn of a battle
type TurnPlayer interface {
	PlayTurn(b *turn.Battle, playerMove string) (*turn.Report, error)
}

var _ TurnPlayer = (*turn.Engine)(nil)

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Dex         dex.Client
	BattleRepo  battles.Repository
	HistoryRepo history.Repository
	Engine      TurnPlayer
	Random      rng.Source
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// EventBus receives battle events when set
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Dex == nil {
		vb.RequiredField("Dex")
	}
	if c.BattleRepo == nil {
		vb.RequiredField("BattleRepo")
	}
	if c.HistoryRepo == nil {
		vb.RequiredField("HistoryRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}

	return vb.Build()
}

type orchestrator struct {
	dex         dex.Client
	battleRepo  battles.Repository
	historyRepo history.Repository
	engine      TurnPlayer
	rng         rng.Source
	idGen       idgen.Generator
	clock       clock.Clock
	eventBus    events.EventBus
	tracer      trace.Tracer
	locks       *keyedMutex
}

// NewOrchestrator creates a new battle orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		dex:         cfg.Dex,
		battleRepo:  cfg.BattleRepo,
		historyRepo: cfg.HistoryRepo,
		engine:      cfg.Engine,
		rng:         cfg.Random,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		eventBus:    cfg.EventBus,
		tracer:      otel.Tracer(tracerName),
		locks:       newKeyedMutex(),
	}, nil
}

// moveKey turns display text like "Quick Attack" into a move name
func moveKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// StartBattle builds both combatants and stores the new battle
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (_ *StartBattleOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "battle.StartBattle")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(input.PlayerSpecies) == "" {
		vb.RequiredField("PlayerSpecies")
	}
	if input.Level != 0 {
		vb.Range("Level", input.Level, 1, 100)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	battleID := o.idGen.Generate()
	span.SetAttributes(attribute.String("battle.id", battleID))

	player, err := o.dex.BuildCombatant(ctx, &dex.BuildCombatantInput{
		ID:       battleID + "-player",
		Species:  input.PlayerSpecies,
		Nickname: input.PlayerNickname,
		Level:    input.Level,
		Moves:    input.PlayerMoves,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build player combatant")
	}

	opponentSpecies := input.OpponentSpecies
	if strings.TrimSpace(opponentSpecies) == "" {
		species, err := o.dex.RandomSpecies(ctx, o.rng, player.Species)
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick opponent")
		}
		opponentSpecies = species.Name
	}

	opponent, err := o.dex.BuildCombatant(ctx, &dex.BuildCombatantInput{
		ID:      battleID + "-opponent",
		Species: opponentSpecies,
		Level:   input.Level,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build opponent combatant")
	}

	b, err := turn.NewBattle(player, opponent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create battle")
	}
	b.ID = battleID

	if _, err := o.battleRepo.Create(ctx, &battles.CreateInput{Battle: b}); err != nil {
		return nil, errors.Wrap(err, "failed to save battle")
	}

	span.SetAttributes(
		attribute.String("battle.player", player.Species),
		attribute.String("battle.opponent", opponent.Species),
	)
	slog.InfoContext(ctx, "battle started",
		"battle_id", b.ID,
		"player", player.Species,
		"opponent", opponent.Species)
	o.publish(ctx, EventBattleStarted, b, nil)

	return &StartBattleOutput{Battle: b}, nil
}

// PlayTurn loads the battle, resolves the turn and stores the result
func (o *orchestrator) PlayTurn(ctx context.Context, input *PlayTurnInput) (_ *PlayTurnOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "battle.PlayTurn")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.BattleID == "" {
		vb.RequiredField("BattleID")
	}
	if strings.TrimSpace(input.Move) == "" {
		vb.RequiredField("Move")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("battle.id", input.BattleID),
		attribute.String("battle.move", input.Move),
	)

	unlock := o.locks.Lock(input.BattleID)
	defer unlock()

	got, err := o.battleRepo.Get(ctx, &battles.GetInput{ID: input.BattleID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get battle %s", input.BattleID)
	}
	b := got.Record.Battle

	report, err := o.engine.PlayTurn(b, moveKey(input.Move))
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("battle.turn", report.Turn),
		attribute.Bool("battle.over", report.BattleOver),
	)

	if _, err := o.battleRepo.Update(ctx, &battles.UpdateInput{Battle: b}); err != nil {
		return nil, errors.Wrap(err, "failed to save battle")
	}

	slog.DebugContext(ctx, "turn played",
		"battle_id", b.ID,
		"turn", report.Turn,
		"first", report.First,
		"player_damage", report.PlayerDamage,
		"opponent_damage", report.OpponentDamage)

	if report.BattleOver {
		o.recordHistory(ctx, b)
	}
	o.publish(ctx, EventTurnPlayed, b, report)

	return &PlayTurnOutput{Battle: b, Report: report}, nil
}

// recordHistory stores a finished battle. The battle itself is already
// saved so a failure here is logged rather than returned.
func (o *orchestrator) recordHistory(ctx context.Context, b *turn.Battle) {
	_, err := o.historyRepo.Record(ctx, &history.RecordInput{Entry: history.NewEntry(b, o.clock.Now())})
	if err != nil {
		slog.ErrorContext(ctx, "failed to record battle history",
			"battle_id", b.ID,
			"error", err)
		return
	}
	slog.InfoContext(ctx, "battle finished",
		"battle_id", b.ID,
		"turns", b.Turn,
		"result", b.Result(),
		"winner", b.Winner())
}

// GetBattle loads a battle
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (_ *GetBattleOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "battle.GetBattle")
	defer func() { endSpan(span, err) }()

	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}
	span.SetAttributes(attribute.String("battle.id", input.BattleID))

	got, err := o.battleRepo.Get(ctx, &battles.GetInput{ID: input.BattleID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get battle %s", input.BattleID)
	}
	return &GetBattleOutput{Battle: got.Record.Battle}, nil
}

// ListSpecies lists the selectable species
func (o *orchestrator) ListSpecies(ctx context.Context, _ *ListSpeciesInput) (*ListSpeciesOutput, error) {
	species, err := o.dex.ListSpecies(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list species")
	}
	return &ListSpeciesOutput{Species: species}, nil
}

// GetTypeAdvantages describes what a type is strong and weak against
func (o *orchestrator) GetTypeAdvantages(_ context.Context, input *GetTypeAdvantagesInput) (*GetTypeAdvantagesOutput, error) {
	if input == nil || input.Type == "" {
		return nil, errors.InvalidArgument("type is required")
	}
	adv, err := o.dex.GetTypeAdvantages(input.Type)
	if err != nil {
		return nil, err
	}
	return &GetTypeAdvantagesOutput{Advantages: adv}, nil
}

// ListHistory lists finished battles, newest first
func (o *orchestrator) ListHistory(ctx context.Context, input *ListHistoryInput) (_ *ListHistoryOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "battle.ListHistory")
	defer func() { endSpan(span, err) }()

	if input == nil {
		input = &ListHistoryInput{}
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit must not be negative")
	}

	out, err := o.historyRepo.List(ctx, &history.ListInput{Species: input.Species, Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list history")
	}
	return &ListHistoryOutput{Entries: out.Entries}, nil
}
