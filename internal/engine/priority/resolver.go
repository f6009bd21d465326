// Package priority decides who moves first in a turn: priority tiers, then
// speed, then a fresh coin flip, with priority counters resolved up front.
package priority

import (
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
)

// Resolver orders the actions of one turn
type Resolver struct {
	rng rng.Source
}

// NewResolver creates a resolver drawing tiebreaks from src
func NewResolver(src rng.Source) *Resolver {
	return &Resolver{rng: src}
}

// ResolveOrder resolves priority counters and returns the actions in
// execution order. Failed counters stay in the result, sorted last, so the
// caller can report them. A lone action is returned as is: with nothing to
// react to, a counter runs like any other move.
func (r *Resolver) ResolveOrder(actions ...*Action) []*Action {
	ordered := append([]*Action(nil), actions...)
	if len(ordered) < 2 {
		return ordered
	}
	r.resolveCounters(ordered)

	first, second := ordered[0], ordered[1]
	if r.goesFirst(second, first) {
		ordered[0], ordered[1] = second, first
	}
	return ordered
}

// goesFirst reports whether a acts before b. A successful counter always
// beats the move it read. Exact ties draw a new coin flip on every call;
// heads keeps b first.
func (r *Resolver) goesFirst(a, b *Action) bool {
	if a.Counter == CounterSucceeded && b.Counter != CounterSucceeded {
		return true
	}
	if b.Counter == CounterSucceeded && a.Counter != CounterSucceeded {
		return false
	}
	if a.EffectivePriority != b.EffectivePriority {
		return a.EffectivePriority > b.EffectivePriority
	}
	speedA, speedB := a.Actor.EffectiveStat(combat.StatSpeed), b.Actor.EffectiveStat(combat.StatSpeed)
	if speedA != speedB {
		return speedA > speedB
	}
	return r.rng.Intn(2) == 1
}

// resolveCounters runs the counter check for a full pair of actions. A
// successful counter is lifted above the move it read, up to MaxPriority.
func (r *Resolver) resolveCounters(actions []*Action) {
	for i, action := range actions {
		counter := action.Move.Effects.Counter
		if counter == nil {
			continue
		}

		opposing := opposingAction(actions, i)
		if opposing == nil || !counter.Succeeds(opposing.Move.Category) {
			action.EffectivePriority = FailedCounterPriority
			action.Counter = CounterFailed
			action.Countered = nil
			continue
		}

		lifted := max(counter.PriorityOnSuccess, opposing.Move.ClampedPriority()+1)
		action.EffectivePriority = min(max(lifted, combat.MinPriority), combat.MaxPriority)
		action.Counter = CounterSucceeded
		countered := opposing.Move
		action.Countered = &countered
	}
}

func opposingAction(actions []*Action, self int) *Action {
	for i, other := range actions {
		if i != self {
			return other
		}
	}
	return nil
}
