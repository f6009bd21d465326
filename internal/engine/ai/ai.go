// Package ai holds the opponent move strategies.
package ai

import (
	"github.com/KirkDiggler/rpg-battle/internal/engine/moves"
	"github.com/KirkDiggler/rpg-battle/internal/engine/turn"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
)

// Strategy names accepted by New
const (
	StrategyFirstUsable = "first-usable"
	StrategyScored      = "scored"
)

// BestMoveChance is how often Scored picks its top move
const BestMoveChance = 0.8

// FirstUsable always picks the first move, in learned order, that has PP
type FirstUsable struct{}

var _ turn.Strategy = FirstUsable{}

// ChooseMove implements turn.Strategy
func (FirstUsable) ChooseMove(self, _ *combat.Combatant) (string, bool) {
	usable := self.UsableMoves()
	if len(usable) == 0 {
		return "", false
	}
	return usable[0].Move.Name, true
}

// Scored usually picks the move with the highest power times effectiveness
// against the opponent, and otherwise a random usable move.
type Scored struct {
	chart moves.TypeChart
	rng   rng.Source
}

var _ turn.Strategy = (*Scored)(nil)

// NewScored creates a scored strategy
func NewScored(chart moves.TypeChart, src rng.Source) *Scored {
	return &Scored{chart: chart, rng: src}
}

// ChooseMove implements turn.Strategy
func (s *Scored) ChooseMove(self, opponent *combat.Combatant) (string, bool) {
	usable := self.UsableMoves()
	if len(usable) == 0 {
		return "", false
	}
	if !rng.Probability(s.rng, BestMoveChance) {
		return usable[s.rng.Intn(len(usable))].Move.Name, true
	}

	best, bestScore := usable[0], -1.0
	for _, slot := range usable {
		if score := s.Score(slot.Move, opponent); score > bestScore {
			best, bestScore = slot, score
		}
	}
	return best.Move.Name, true
}

// Score rates move against opponent. Non-damaging moves score zero.
func (s *Scored) Score(move combat.Move, opponent *combat.Combatant) float64 {
	if !move.DealsDamage() {
		return 0
	}
	return float64(move.Power) * moves.ChartEffectiveness(s.chart, move.Type, opponent.Types)
}

// New returns the named strategy
func New(name string, chart moves.TypeChart, src rng.Source) (turn.Strategy, error) {
	switch name {
	case StrategyFirstUsable:
		return FirstUsable{}, nil
	case "", StrategyScored:
		if chart == nil || src == nil {
			return nil, errors.InvalidArgument("scored strategy needs a type chart and a random source")
		}
		return NewScored(chart, src), nil
	default:
		return nil, errors.InvalidArgumentf("unknown strategy %q", name).WithMeta("strategy", name)
	}
}
