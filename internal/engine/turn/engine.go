// Package turn sequences one battle turn: status ticks, move ordering,
// move execution and the faint checks between them.
package turn

//go:generate mockgen -destination=mock/mock_strategy.go -package=turnmock github.com/KirkDiggler/rpg-battle/internal/engine/turn Strategy

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/engine/moves"
	"github.com/KirkDiggler/rpg-battle/internal/engine/priority"
	"github.com/KirkDiggler/rpg-battle/internal/engine/status"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
)

// Strategy picks the opponent's move each turn. ok is false when it has
// nothing usable.
type Strategy interface {
	ChooseMove(self, opponent *combat.Combatant) (name string, ok bool)
}

// Config holds the turn engine dependencies
type Config struct {
	Chart    moves.TypeChart
	Random   rng.Source
	Strategy Strategy
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Chart == nil {
		vb.RequiredField("Chart")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.Strategy == nil {
		vb.RequiredField("Strategy")
	}
	return vb.Build()
}

// Engine plays turns. It holds no battle state and is safe to share as long
// as callers never run two turns of the same battle at once.
type Engine struct {
	status   *status.Engine
	resolver *priority.Resolver
	pipeline *moves.Pipeline
	strategy Strategy
}

// NewEngine wires the status engine, resolver and pipeline to one random
// source.
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	pipeline, err := moves.NewPipeline(&moves.Config{Chart: cfg.Chart, Random: cfg.Random})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create move pipeline")
	}

	return &Engine{
		status:   status.NewEngine(cfg.Random),
		resolver: priority.NewResolver(cfg.Random),
		pipeline: pipeline,
		strategy: cfg.Strategy,
	}, nil
}

// turnState is the working set of one PlayTurn call
type turnState struct {
	battle   *Battle
	report   *Report
	player   engine.Combatant
	opponent engine.Combatant
	slots    map[priority.Side]*combat.MoveSlot
}

// sided pairs a combatant with the side it fights for
type sided struct {
	side priority.Side
	c    engine.Combatant
}

// fighters lists both sides in the fixed player-then-opponent order
func (t *turnState) fighters() []sided {
	return []sided{
		{side: priority.SidePlayer, c: t.player},
		{side: priority.SideOpponent, c: t.opponent},
	}
}

// PlayTurn resolves one full turn for playerMove. An unknown move or one
// without PP is rejected before anything changes, as is any turn after the
// battle has ended.
func (e *Engine) PlayTurn(b *Battle, playerMove string) (*Report, error) {
	if b.IsOver() {
		return nil, errors.FailedPrecondition("battle is over")
	}

	slot, ok := b.Player.Slot(playerMove)
	if !ok {
		return nil, errors.InvalidArgumentf("%s does not know %q", b.Player.DisplayName(), playerMove)
	}
	if !slot.Usable() {
		return nil, errors.FailedPreconditionf("%s has no PP left", slot.Move.DisplayName()).
			WithMeta("move", playerMove)
	}

	b.Turn++
	t := &turnState{
		battle:   b,
		report:   &Report{Turn: b.Turn},
		player:   engine.NewFighter(b.Player, e.status),
		opponent: engine.NewFighter(b.Opponent, e.status),
		slots:    map[priority.Side]*combat.MoveSlot{priority.SidePlayer: slot},
	}

	if !e.turnStart(t) {
		actions := e.actions(t)
		order := e.order(t, actions)
		if !e.execute(t, order) {
			e.turnEnd(t)
		}
	}

	b.IsOver()
	t.report.BattleOver = b.Over
	t.report.Result = b.Result()
	b.Log = append(b.Log, t.report.Events...)
	return t.report, nil
}

// turnStart runs the start-of-turn hooks and reports whether anyone fainted
func (e *Engine) turnStart(t *turnState) bool {
	for _, f := range t.fighters() {
		for _, tick := range f.c.ProcessTurnStart() {
			t.report.add(Event{Type: EventStatus, Side: f.side, Message: tick.Text, Status: tick.Kind})
		}
	}
	return e.faintCheck(t)
}

func (e *Engine) actions(t *turnState) []*priority.Action {
	playerSlot := t.slots[priority.SidePlayer]
	actions := []*priority.Action{
		priority.NewAction(priority.SidePlayer, t.player, t.opponent, playerSlot.Move),
	}

	name, ok := e.strategy.ChooseMove(t.battle.Opponent, t.battle.Player)
	if !ok {
		return actions
	}
	oppSlot, ok := t.battle.Opponent.Slot(name)
	if !ok || !oppSlot.Usable() {
		return actions
	}
	t.slots[priority.SideOpponent] = oppSlot
	return append(actions, priority.NewAction(priority.SideOpponent, t.opponent, t.player, oppSlot.Move))
}

func (e *Engine) order(t *turnState, actions []*priority.Action) []*priority.Action {
	order := e.resolver.ResolveOrder(actions...)
	t.report.First = order[0].Side

	if explanation := priority.Explain(order); explanation.Text != "" {
		t.report.add(Event{Type: EventPriority, Side: order[0].Side, Message: explanation.Text})
	}
	for _, a := range order {
		if a.Counter != priority.CounterSucceeded {
			continue
		}
		t.report.add(Event{
			Type:     EventCounterSuccess,
			Side:     a.Side,
			Message:  priority.CounterSuccessMessage(a),
			Attacker: a.Actor.Name(),
			Defender: a.Target.Name(),
			Move:     a.Move.Name,
		})
	}
	return order
}

// execute runs the ordered actions and reports whether the battle ended
func (e *Engine) execute(t *turnState, order []*priority.Action) bool {
	for _, a := range order {
		if a.Actor.Fainted() {
			continue
		}
		if !a.Executable() {
			t.report.add(Event{
				Type:     EventCounterFailure,
				Side:     a.Side,
				Message:  fmt.Sprintf("%s used %s! %s", a.Actor.Name(), a.Move.DisplayName(), priority.CounterFailureMessage(a)),
				Attacker: a.Actor.Name(),
				Move:     a.Move.Name,
			})
			continue
		}
		if canAct, msg := a.Actor.CanAct(); !canAct {
			t.report.add(Event{Type: EventPrevented, Side: a.Side, Message: msg, Attacker: a.Actor.Name(), Move: a.Move.Name})
			continue
		}

		out := e.pipeline.Use(a.Move, a.Actor, a.Target)
		if out.Prevented {
			t.report.add(Event{Type: EventPrevented, Side: a.Side, Message: out.Summary, Attacker: a.Actor.Name(), Move: a.Move.Name})
			continue
		}
		t.slots[a.Side].Spend()
		e.record(t, a, out)

		if e.faintCheck(t) {
			return true
		}
	}
	return false
}

func (e *Engine) record(t *turnState, a *priority.Action, out *moves.Outcome) {
	if a.Side == priority.SidePlayer {
		t.report.PlayerDamage += out.Damage
	} else {
		t.report.OpponentDamage += out.Damage
	}

	headline := fmt.Sprintf("%s used %s!", a.Actor.Name(), a.Move.DisplayName())
	if out.Missed || (out.Summary != "" && a.Move.DealsDamage()) {
		headline = strings.Join([]string{headline, out.Summary}, " ")
	}
	t.report.add(Event{
		Type:       EventMoveUsed,
		Side:       a.Side,
		Message:    headline,
		Attacker:   a.Actor.Name(),
		Defender:   a.Target.Name(),
		Move:       a.Move.Name,
		Damage:     out.Damage,
		AttackerHP: a.Actor.HP(),
		DefenderHP: a.Target.HP(),
	})

	if out.EffectivenessMessage != "" {
		t.report.add(Event{Type: EventEffectiveness, Side: a.Side, Message: out.EffectivenessMessage, Move: a.Move.Name})
	}
	if out.SecondaryMessage != "" {
		evType := EventEffect
		if out.StatusApplied != combat.StatusNone {
			evType = EventStatusApplied
		}
		t.report.add(Event{
			Type:    evType,
			Side:    a.Side,
			Message: out.SecondaryMessage,
			Move:    a.Move.Name,
			Status:  out.StatusApplied,
		})
	}
}

func (e *Engine) turnEnd(t *turnState) {
	for _, f := range t.fighters() {
		for _, tick := range f.c.ProcessTurnEnd() {
			t.report.add(Event{
				Type:       EventStatusDamage,
				Side:       f.side,
				Message:    tick.Text,
				Damage:     tick.Damage,
				DefenderHP: f.c.HP(),
				Status:     tick.Kind,
			})
		}
	}
	e.faintCheck(t)
}

// faintCheck appends one faint event per fallen side and reports whether
// the battle is over
func (e *Engine) faintCheck(t *turnState) bool {
	ended := false
	for _, f := range t.fighters() {
		if !f.c.Fainted() {
			continue
		}
		ended = true
		t.report.add(Event{Type: EventFaint, Side: f.side, Message: fmt.Sprintf("%s fainted!", f.c.Name())})
	}
	return ended
}
