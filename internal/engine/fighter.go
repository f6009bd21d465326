package engine

import (
	"github.com/KirkDiggler/rpg-battle/internal/engine/status"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
)

// Fighter is the Combatant backed by a combat record and the status engine
type Fighter struct {
	c      *combat.Combatant
	status *status.Engine
}

// NewFighter binds c to the status rules
func NewFighter(c *combat.Combatant, st *status.Engine) *Fighter {
	return &Fighter{c: c, status: st}
}

var _ Combatant = (*Fighter)(nil)

func (f *Fighter) GetID() string               { return f.c.GetID() }
func (f *Fighter) GetType() string             { return f.c.GetType() }
func (f *Fighter) Name() string                { return f.c.DisplayName() }
func (f *Fighter) Types() []combat.ElementType { return f.c.Types }
func (f *Fighter) HP() int                     { return f.c.HP }
func (f *Fighter) MaxHP() int                  { return f.c.MaxHP }
func (f *Fighter) Fainted() bool               { return f.c.Fainted() }
func (f *Fighter) State() *combat.Combatant    { return f.c }

// EffectiveStat implements Combatant
func (f *Fighter) EffectiveStat(stat combat.Stat) int {
	if stat == combat.StatHP {
		return f.c.MaxHP
	}
	staged := int(float64(f.c.Stats.Get(stat)) * combat.StageMultiplier(f.c.Stages.Get(stat)))
	return max(status.ModifyStat(&f.c.Status, stat, staged), 1)
}

// ShiftStage implements Combatant
func (f *Fighter) ShiftStage(stat combat.Stat, delta int) int {
	return f.c.Stages.Shift(stat, delta)
}

// TakeDamage implements Combatant
func (f *Fighter) TakeDamage(n int) int {
	return f.c.LoseHP(n)
}

// Heal implements Combatant
func (f *Fighter) Heal(n int) int {
	return f.c.GainHP(n)
}

// ApplyStatus implements Combatant
func (f *Fighter) ApplyStatus(kind combat.StatusKind) string {
	return f.status.Apply(f.c, kind)
}

// ProcessTurnStart implements Combatant
func (f *Fighter) ProcessTurnStart() []status.Tick {
	return f.status.ProcessTurnStart(f.c)
}

// ProcessTurnEnd implements Combatant
func (f *Fighter) ProcessTurnEnd() []status.Tick {
	return f.status.ProcessTurnEnd(f.c)
}

// CanAct implements Combatant
func (f *Fighter) CanAct() (bool, string) {
	if f.c.Fainted() {
		return false, ""
	}
	prevented, msg := f.status.AffectsMoveUsage(f.c)
	return !prevented, msg
}

// Held implements Combatant
func (f *Fighter) Held() (bool, string) {
	return f.status.Holds(f.c)
}
