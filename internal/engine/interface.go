// Package engine defines the capability surface the battle rules act on.
// Ordering, move resolution and turn sequencing only ever see a Combatant.
package engine

//go:generate mockgen -destination=mock/mock_combatant.go -package=enginemock github.com/KirkDiggler/rpg-battle/internal/engine Combatant

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-battle/internal/engine/status"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
)

// Combatant is one side of a battle as seen by the rules
type Combatant interface {
	core.Entity

	Name() string
	Types() []combat.ElementType
	HP() int
	MaxHP() int
	Fainted() bool

	// EffectiveStat applies stat stages then status modifiers
	EffectiveStat(stat combat.Stat) int
	// ShiftStage moves a stat stage and returns the change applied
	ShiftStage(stat combat.Stat, delta int) int

	// TakeDamage removes up to n HP and returns the amount removed
	TakeDamage(n int) int
	// Heal restores up to n HP and returns the amount restored
	Heal(n int) int

	// ApplyStatus returns the application message, or empty when refused
	ApplyStatus(kind combat.StatusKind) string
	ProcessTurnStart() []status.Tick
	ProcessTurnEnd() []status.Tick

	// CanAct rolls any move-preventing status. It returns the prevention
	// message when the combatant cannot act.
	CanAct() (bool, string)
	// Held reports a status that blocks every move without drawing
	// randomness
	Held() (bool, string)

	// State exposes the underlying record for persistence and move slots
	State() *combat.Combatant
}
