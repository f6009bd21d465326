package priority

import (
	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
)

// FailedCounterPriority sorts a failed counter below every legal tier
const FailedCounterPriority = -999

// CounterOutcome records how a priority counter resolved this turn
type CounterOutcome int

// Counter outcomes
const (
	CounterNone CounterOutcome = iota
	CounterSucceeded
	CounterFailed
)

// Side names which half of the battle an action belongs to
type Side string

// Sides
const (
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

// Action is one combatant's move for the current turn
type Action struct {
	Side   Side
	Actor  engine.Combatant
	Target engine.Combatant
	Move   combat.Move

	EffectivePriority int
	Counter           CounterOutcome
	// Countered is the opposing move a successful counter read
	Countered *combat.Move
}

// NewAction creates an action at the move's clamped priority
func NewAction(side Side, actor, target engine.Combatant, move combat.Move) *Action {
	return &Action{
		Side:              side,
		Actor:             actor,
		Target:            target,
		Move:              move,
		EffectivePriority: move.ClampedPriority(),
	}
}

// Executable is false only for a failed counter
func (a *Action) Executable() bool {
	return a.Counter != CounterFailed
}
