package status

import "github.com/KirkDiggler/rpg-battle/internal/entities/combat"

// Behavior is the declarative rule set for one status kind. Message
// templates take the combatant display name.
type Behavior struct {
	// DamageDivisor is the end of turn damage as 1/DamageDivisor of max HP.
	// Zero means no damage.
	DamageDivisor int
	// Escalating multiplies the damage by a counter that grows each tick
	Escalating bool
	// KeepsOneHP clamps status damage so it never faints on its own
	KeepsOneHP bool

	StatMultipliers map[combat.Stat]float64

	// PreventChance is the chance per move attempt that the move is lost.
	// 1 prevents unconditionally.
	PreventChance float64
	// RecoverChance is rolled at turn start
	RecoverChance float64
	// SleepMin and SleepMax bound the sleep countdown drawn on apply
	SleepMin, SleepMax int

	ApplyMessage   string
	DamageMessage  string
	PreventMessage string
	RecoverMessage string
}

var behaviors = map[combat.StatusKind]Behavior{
	combat.StatusBurn: {
		DamageDivisor:   16,
		StatMultipliers: map[combat.Stat]float64{combat.StatAttack: 0.5},
		ApplyMessage:    "%s was burned!",
		DamageMessage:   "%s is hurt by its burn!",
	},
	combat.StatusParalysis: {
		StatMultipliers: map[combat.Stat]float64{combat.StatSpeed: 0.5},
		PreventChance:   0.25,
		ApplyMessage:    "%s is paralyzed! It may be unable to move!",
		PreventMessage:  "%s is paralyzed! It can't move!",
	},
	combat.StatusFreeze: {
		PreventChance:  1,
		RecoverChance:  0.2,
		ApplyMessage:   "%s was frozen solid!",
		PreventMessage: "%s is frozen solid!",
		RecoverMessage: "%s thawed out!",
	},
	combat.StatusSleep: {
		PreventChance:  1,
		SleepMin:       1,
		SleepMax:       3,
		ApplyMessage:   "%s fell asleep!",
		PreventMessage: "%s is fast asleep.",
		RecoverMessage: "%s woke up!",
	},
	combat.StatusPoison: {
		DamageDivisor: 8,
		KeepsOneHP:    true,
		ApplyMessage:  "%s was poisoned!",
		DamageMessage: "%s is hurt by poison!",
	},
	combat.StatusToxic: {
		DamageDivisor: 16,
		Escalating:    true,
		KeepsOneHP:    true,
		ApplyMessage:  "%s was badly poisoned!",
		DamageMessage: "%s is hurt by poison!",
	},
}
