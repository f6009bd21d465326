// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
)

// CombatantBuilder provides a fluent interface for building test combatants
type CombatantBuilder struct {
	spec   combat.Spec
	stats  *combat.Stats
	hp     *int
	status *combat.Condition
}

// NewCombatant creates a builder for a level 50 normal type combatant with
// every base stat at 100 and Tackle as its only move.
func NewCombatant(name string) *CombatantBuilder {
	base := make(map[combat.Stat]int, len(combat.AllStats))
	for _, stat := range combat.AllStats {
		base[stat] = 100
	}
	return &CombatantBuilder{
		spec: combat.Spec{
			ID:        name + "-id",
			Name:      name,
			Species:   name,
			Level:     50,
			Types:     []combat.ElementType{"normal"},
			BaseStats: base,
		},
	}
}

// WithTypes sets the elemental types
func (b *CombatantBuilder) WithTypes(types ...combat.ElementType) *CombatantBuilder {
	b.spec.Types = types
	return b
}

// WithLevel sets the level
func (b *CombatantBuilder) WithLevel(level int) *CombatantBuilder {
	b.spec.Level = level
	return b
}

// WithMoves replaces the move list
func (b *CombatantBuilder) WithMoves(moves ...combat.Move) *CombatantBuilder {
	b.spec.Moves = moves
	return b
}

// WithStats overrides the derived stats after construction. MaxHP follows
// stats.HP.
func (b *CombatantBuilder) WithStats(stats combat.Stats) *CombatantBuilder {
	b.stats = &stats
	return b
}

// WithSpeed overrides only the derived speed
func (b *CombatantBuilder) WithSpeed(speed int) *CombatantBuilder {
	if b.stats == nil {
		derived := b.baseStats().AtLevel(b.spec.Level)
		b.stats = &derived
	}
	b.stats.Speed = speed
	return b
}

// WithHP sets current HP
func (b *CombatantBuilder) WithHP(hp int) *CombatantBuilder {
	b.hp = &hp
	return b
}

// WithStatus installs a condition directly
func (b *CombatantBuilder) WithStatus(cond combat.Condition) *CombatantBuilder {
	b.status = &cond
	return b
}

func (b *CombatantBuilder) baseStats() combat.Stats {
	var s combat.Stats
	for stat, v := range b.spec.BaseStats {
		s.Set(stat, v)
	}
	return s
}

// Build returns the combatant and panics on invalid construction data
func (b *CombatantBuilder) Build() *combat.Combatant {
	spec := b.spec
	if len(spec.Moves) == 0 {
		spec.Moves = []combat.Move{{
			Name: "tackle", Type: "normal", Category: combat.CategoryPhysical, Power: 40, PP: 35, Accuracy: 100,
		}}
	}

	c, err := combat.New(spec)
	if err != nil {
		panic(fmt.Sprintf("builders: %v", err))
	}
	if b.stats != nil {
		c.Stats = *b.stats
		c.MaxHP = b.stats.HP
		c.HP = c.MaxHP
	}
	if b.hp != nil {
		c.HP = *b.hp
	}
	if b.status != nil {
		cond := *b.status
		c.Status.Install(&cond)
	}
	return c
}
