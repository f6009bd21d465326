// Package status runs the major status state machine: applying conditions,
// ticking them at turn boundaries, gating move usage and modifying stats.
package status

import (
	"fmt"

	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
)

// Tick is one message produced at a turn boundary
type Tick struct {
	Kind      combat.StatusKind
	Text      string
	Damage    int
	Recovered bool
}

// Engine applies status rules using a single random source
type Engine struct {
	rng rng.Source
}

// NewEngine creates a status engine drawing from src
func NewEngine(src rng.Source) *Engine {
	return &Engine{rng: src}
}

// CanApply reports whether kind may be installed on c
func (e *Engine) CanApply(c *combat.Combatant, kind combat.StatusKind) bool {
	if !kind.Valid() || c.Fainted() {
		return false
	}
	if c.Status.Major != combat.StatusNone || c.Status.Has(kind) {
		return false
	}
	// a poisoned combatant cannot be badly poisoned
	if kind == combat.StatusToxic && c.Status.Has(combat.StatusPoison) {
		return false
	}
	return true
}

// Apply installs kind on c and returns the application message. It returns
// an empty string and changes nothing when the condition cannot be applied.
func (e *Engine) Apply(c *combat.Combatant, kind combat.StatusKind) string {
	if !e.CanApply(c, kind) {
		return ""
	}
	b := behaviors[kind]

	cond := &combat.Condition{Kind: kind}
	if kind == combat.StatusSleep {
		cond.SleepTurns = rng.Between(e.rng, b.SleepMin, b.SleepMax)
	}
	c.Status.Install(cond)
	return fmt.Sprintf(b.ApplyMessage, c.DisplayName())
}

// Remove clears kind from c, including the major reference
func (e *Engine) Remove(c *combat.Combatant, kind combat.StatusKind) {
	c.Status.Remove(kind)
}

// Cure clears every condition from c
func (e *Engine) Cure(c *combat.Combatant) {
	for _, kind := range c.Status.Kinds() {
		c.Status.Remove(kind)
	}
}

// ProcessTurnStart counts sleep down and rolls freeze recovery
func (e *Engine) ProcessTurnStart(c *combat.Combatant) []Tick {
	if c.Fainted() {
		return nil
	}

	var ticks []Tick
	for _, kind := range c.Status.Kinds() {
		cond, _ := c.Status.Get(kind)
		b := behaviors[kind]

		recovered := false
		switch kind {
		case combat.StatusSleep:
			cond.SleepTurns--
			recovered = cond.SleepTurns <= 0
		default:
			recovered = b.RecoverChance > 0 && rng.Probability(e.rng, b.RecoverChance)
		}
		if !recovered {
			continue
		}

		e.Remove(c, kind)
		ticks = append(ticks, Tick{
			Kind:      kind,
			Text:      fmt.Sprintf(b.RecoverMessage, c.DisplayName()),
			Recovered: true,
		})
	}
	return ticks
}

// ProcessTurnEnd applies per-turn status damage straight to HP
func (e *Engine) ProcessTurnEnd(c *combat.Combatant) []Tick {
	if c.Fainted() {
		return nil
	}

	var ticks []Tick
	for _, kind := range c.Status.Kinds() {
		b := behaviors[kind]
		if b.DamageDivisor == 0 {
			continue
		}

		dmg := e.turnEndDamage(c, kind, b)
		if dmg <= 0 {
			continue
		}
		ticks = append(ticks, Tick{
			Kind:   kind,
			Text:   fmt.Sprintf(b.DamageMessage, c.DisplayName()),
			Damage: c.LoseHP(dmg),
		})
		if c.Fainted() {
			break
		}
	}
	return ticks
}

func (e *Engine) turnEndDamage(c *combat.Combatant, kind combat.StatusKind, b Behavior) int {
	dmg := max(c.MaxHP/b.DamageDivisor, 1)
	if b.Escalating {
		cond, _ := c.Status.Get(kind)
		cond.ToxicCounter++
		dmg = max(c.MaxHP*cond.ToxicCounter/b.DamageDivisor, 1)
	}
	if b.KeepsOneHP {
		dmg = min(dmg, c.HP-1)
	}
	return dmg
}

// AffectsMoveUsage reports whether c loses its move this attempt. Paralysis
// rolls on every call; sleep and freeze hold unconditionally.
func (e *Engine) AffectsMoveUsage(c *combat.Combatant) (bool, string) {
	for _, kind := range c.Status.Kinds() {
		b := behaviors[kind]
		prevented := b.PreventChance >= 1 ||
			(b.PreventChance > 0 && rng.Probability(e.rng, b.PreventChance))
		if prevented {
			return true, fmt.Sprintf(b.PreventMessage, c.DisplayName())
		}
	}
	return false, ""
}

// Holds reports, without drawing randomness, whether c is held by a status
// that prevents every move.
func (e *Engine) Holds(c *combat.Combatant) (bool, string) {
	for _, kind := range c.Status.Kinds() {
		if b := behaviors[kind]; b.PreventChance >= 1 {
			return true, fmt.Sprintf(b.PreventMessage, c.DisplayName())
		}
	}
	return false, ""
}

// ModifyStat applies every active status multiplier to value
func ModifyStat(conds *combat.Conditions, stat combat.Stat, value int) int {
	out := float64(value)
	for _, kind := range conds.Kinds() {
		if mult, ok := behaviors[kind].StatMultipliers[stat]; ok {
			out *= mult
		}
	}
	return int(out)
}
