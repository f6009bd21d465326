package testutils

import "github.com/KirkDiggler/rpg-battle/internal/entities/combat"

// Tackle is a plain 40 power physical normal move
func Tackle() combat.Move {
	return combat.Move{Name: "tackle", Type: "normal", Category: combat.CategoryPhysical, Power: 40, PP: 35, Accuracy: 100}
}

// Growl lowers the target's attack
func Growl() combat.Move {
	return combat.Move{
		Name: "growl", Type: "normal", Category: combat.CategoryStatus, PP: 40, Accuracy: 100,
		Effects: combat.Effects{StatChanges: []combat.StatChange{
			{Stat: combat.StatAttack, Delta: -1, Target: combat.TargetOpponent},
		}},
	}
}

// Thunderbolt is a special electric move with a 10% paralysis chance
func Thunderbolt() combat.Move {
	return combat.Move{
		Name: "thunderbolt", Type: "electric", Category: combat.CategorySpecial, Power: 90, PP: 15, Accuracy: 100,
		Effects: combat.Effects{Status: &combat.StatusEffect{Kind: combat.StatusParalysis, Chance: 10}},
	}
}

// QuickAttack is a +1 priority physical move
func QuickAttack() combat.Move {
	return combat.Move{Name: "quick-attack", Type: "normal", Category: combat.CategoryPhysical, Power: 40, PP: 30, Accuracy: 100, Priority: 1}
}

// SuckerPunch strikes first only against an attacking move
func SuckerPunch() combat.Move {
	return combat.Move{
		Name: "sucker-punch", Type: "dark", Category: combat.CategoryPhysical, Power: 70, PP: 5, Accuracy: 100,
		Effects: combat.Effects{Counter: &combat.Counter{
			SucceedsAgainst:   []combat.Category{combat.CategoryPhysical, combat.CategorySpecial},
			PriorityOnSuccess: 1,
		}},
	}
}

// ThunderWave always paralyzes
func ThunderWave() combat.Move {
	return combat.Move{
		Name: "thunder-wave", Type: "electric", Category: combat.CategoryStatus, PP: 20, Accuracy: 90,
		Effects: combat.Effects{Status: &combat.StatusEffect{Kind: combat.StatusParalysis}},
	}
}

// Toxic badly poisons
func Toxic() combat.Move {
	return combat.Move{
		Name: "toxic", Type: "poison", Category: combat.CategoryStatus, PP: 10, Accuracy: 90,
		Effects: combat.Effects{Status: &combat.StatusEffect{Kind: combat.StatusToxic}},
	}
}

// Recover heals half of max HP
func Recover() combat.Move {
	return combat.Move{
		Name: "recover", Type: "normal", Category: combat.CategoryStatus, PP: 5, Accuracy: combat.NeverMisses,
		Effects: combat.Effects{Heal: 0.5},
	}
}

// GigaDrain restores half of the damage dealt
func GigaDrain() combat.Move {
	return combat.Move{
		Name: "giga-drain", Type: "grass", Category: combat.CategorySpecial, Power: 75, PP: 10, Accuracy: 100,
		Effects: combat.Effects{Drain: 0.5},
	}
}

// DoubleEdge hurts the user for a third of the damage dealt
func DoubleEdge() combat.Move {
	return combat.Move{
		Name: "double-edge", Type: "normal", Category: combat.CategoryPhysical, Power: 120, PP: 15, Accuracy: 100,
		Effects: combat.Effects{Recoil: 1.0 / 3},
	}
}

// BulletSeed strikes two to five times
func BulletSeed() combat.Move {
	return combat.Move{
		Name: "bullet-seed", Type: "grass", Category: combat.CategoryPhysical, Power: 25, PP: 30, Accuracy: 100,
		Effects: combat.Effects{MultiHit: &combat.MultiHit{Min: 2, Max: 5}},
	}
}

// SwordsDance sharply raises the user's attack
func SwordsDance() combat.Move {
	return combat.Move{
		Name: "swords-dance", Type: "normal", Category: combat.CategoryStatus, PP: 20, Accuracy: combat.NeverMisses,
		Effects: combat.Effects{StatChanges: []combat.StatChange{
			{Stat: combat.StatAttack, Delta: 2, Target: combat.TargetSelf},
		}},
	}
}
