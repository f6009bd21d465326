package priority

import (
	"fmt"

	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
)

// Reason is why the first action went first
type Reason string

// Ordering reasons
const (
	ReasonAlone    Reason = "alone"
	ReasonPriority Reason = "priority"
	ReasonSpeed    Reason = "speed"
	ReasonRandom   Reason = "random"
)

// Explanation describes a resolved order
type Explanation struct {
	Reason Reason
	Text   string
}

// Explain describes why order holds. It draws no randomness. Text is empty
// when there is nothing worth saying.
func Explain(order []*Action) Explanation {
	if len(order) < 2 {
		return Explanation{Reason: ReasonAlone}
	}

	first, second := order[0], order[1]
	firstName, secondName := first.Actor.Name(), second.Actor.Name()
	switch {
	case first.Counter == CounterSucceeded && first.EffectivePriority == second.EffectivePriority:
		// the counter message says why
		return Explanation{Reason: ReasonPriority}
	case first.EffectivePriority != second.EffectivePriority:
		// a failed counter is reported on its own
		if !second.Executable() {
			return Explanation{Reason: ReasonPriority}
		}
		return Explanation{
			Reason: ReasonPriority,
			Text:   fmt.Sprintf("%s's %s has higher priority!", firstName, first.Move.DisplayName()),
		}
	case first.Actor.EffectiveStat(combat.StatSpeed) != second.Actor.EffectiveStat(combat.StatSpeed):
		return Explanation{
			Reason: ReasonSpeed,
			Text:   fmt.Sprintf("%s is faster than %s!", firstName, secondName),
		}
	default:
		return Explanation{
			Reason: ReasonRandom,
			Text:   fmt.Sprintf("%s and %s are equally fast! %s moved first by chance.", firstName, secondName, firstName),
		}
	}
}

// priorityMoves are the quick strikes a counter can read
var priorityMoves = map[string]bool{
	"quick-attack": true,
	"aqua-jet":     true,
	"bullet-punch": true,
	"mach-punch":   true,
}

// CounterSuccessMessage is the flavor line for a successful counter
func CounterSuccessMessage(a *Action) string {
	if a.Countered == nil {
		return ""
	}
	attacker, target := a.Actor.Name(), a.Target.Name()
	counterName := a.Move.DisplayName()

	switch {
	case priorityMoves[a.Countered.Name]:
		return fmt.Sprintf("%s anticipated %s's priority move and struck first with %s!", attacker, target, counterName)
	case a.Countered.Name == "extreme-speed":
		return fmt.Sprintf("%s intercepted %s's Extreme Speed with a perfectly timed %s!", attacker, target, counterName)
	case a.Move.Name == "sucker-punch":
		return fmt.Sprintf("%s read %s's attack and countered with %s!", attacker, target, counterName)
	default:
		return fmt.Sprintf("%s intercepted %s's %s!", attacker, target, a.Countered.DisplayName())
	}
}

// CounterFailureMessage is the line for a counter that found nothing to read
func CounterFailureMessage(a *Action) string {
	if a.Move.Effects.Counter == nil {
		return ""
	}
	return a.Move.Effects.Counter.Failure()
}
