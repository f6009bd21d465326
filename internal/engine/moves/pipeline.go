// Package moves resolves a single move: accuracy, damage, and the secondary
// effects that follow.
package moves

//go:generate mockgen -destination=mock/mock_type_chart.go -package=movesmock github.com/KirkDiggler/rpg-battle/internal/engine/moves TypeChart

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
)

// TypeChart looks up how one attacking type fares against one defending
// type. ok is false when the pair is not charted.
type TypeChart interface {
	Effectiveness(attacking, defending combat.ElementType) (float64, bool)
}

// Outcome is everything one use of a move produced
type Outcome struct {
	// Damage is the summed damage of every hit that landed
	Damage int
	Hits   int

	Missed    bool
	NoEffect  bool
	Critical  bool
	Prevented bool

	Effectiveness float64

	// Summary is the headline for moves that did not go through the damage
	// formula: a miss, a status move, or a prevented attempt
	Summary              string
	EffectivenessMessage string
	SecondaryMessage     string

	StatusApplied combat.StatusKind
	Healed        int
	Recoil        int
}

// Config holds the pipeline dependencies
type Config struct {
	Chart  TypeChart
	Random rng.Source
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
	return vb.Build()
}

// Pipeline resolves moves against a type chart and a random source
type Pipeline struct {
	chart TypeChart
	rng   rng.Source
}

// NewPipeline creates a pipeline
func NewPipeline(cfg *Config) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Pipeline{chart: cfg.Chart, rng: cfg.Random}, nil
}

// Use resolves move from attacker against target and applies the results to
// both. A fainted attacker, or one held by sleep or freeze, is reported as
// prevented without drawing any randomness; the turn loop is the primary
// place that check happens.
func (p *Pipeline) Use(move combat.Move, attacker, target engine.Combatant) *Outcome {
	if attacker.Fainted() {
		return &Outcome{Prevented: true}
	}
	if held, msg := attacker.Held(); held {
		return &Outcome{Prevented: true, Summary: msg}
	}

	if !p.hits(move) {
		return &Outcome{Missed: true, Summary: fmt.Sprintf("%s's attack missed!", attacker.Name())}
	}

	out := &Outcome{Effectiveness: 1}
	if !move.DealsDamage() {
		out.Summary = fmt.Sprintf("%s used %s!", attacker.Name(), move.DisplayName())
		p.secondary(move, attacker, target, out)
		return out
	}

	if target.Fainted() {
		out.Summary = "But there was no target..."
		return out
	}

	out.Effectiveness = p.Effectiveness(move.Type, target.Types())
	if out.Effectiveness == 0 {
		out.NoEffect = true
		out.EffectivenessMessage = "It had no effect!"
		return out
	}

	p.strike(move, attacker, target, out)
	out.EffectivenessMessage = effectivenessMessage(out)
	p.secondary(move, attacker, target, out)
	return out
}

// hits rolls accuracy in [1, 100]
func (p *Pipeline) hits(move combat.Move) bool {
	if move.NeverMisses() {
		return true
	}
	return rng.Roll(p.rng, 100) <= move.Accuracy
}

// strike lands every hit of the move. Hits after the first re-roll accuracy
// independently; a missed hit deals nothing and the sequence carries on.
func (p *Pipeline) strike(move combat.Move, attacker, target engine.Combatant, out *Outcome) {
	count := 1
	if move.Effects.MultiHit != nil {
		count = p.hitCount(move.Effects.MultiHit)
	}

	for i := range count {
		if target.Fainted() {
			break
		}
		if i > 0 && !p.hits(move) {
			continue
		}

		dmg, crit := p.Damage(move, attacker, target, out.Effectiveness)
		target.TakeDamage(dmg)
		out.Damage += dmg
		out.Hits++
		out.Critical = out.Critical || crit
	}
}

func effectivenessMessage(out *Outcome) string {
	var parts []string
	if out.Critical {
		parts = append(parts, "A critical hit!")
	}
	switch {
	case out.Effectiveness < 1:
		parts = append(parts, "It's not very effective...")
	case out.Effectiveness > 1:
		parts = append(parts, "It's super effective!")
	}
	if out.Hits > 1 {
		parts = append(parts, fmt.Sprintf("Hit %d time(s)!", out.Hits))
	}
	return strings.Join(parts, " ")
}
