// Package combat holds the battle data model: combatants, moves and status
// conditions. It carries no battle rules beyond clamping and derived stats.
package combat

// ElementType is an elemental typing such as "fire" or "water"
type ElementType string

// Category selects which stat pair a move uses
type Category string

// Move categories
const (
	CategoryPhysical Category = "physical"
	CategorySpecial  Category = "special"
	CategoryStatus   Category = "status"
)

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	switch c {
	case CategoryPhysical, CategorySpecial, CategoryStatus:
		return true
	}
	return false
}

// Stat names one of the six battle stats
type Stat string

// Battle stats
const (
	StatHP             Stat = "hp"
	StatAttack         Stat = "attack"
	StatDefense        Stat = "defense"
	StatSpecialAttack  Stat = "special-attack"
	StatSpecialDefense Stat = "special-defense"
	StatSpeed          Stat = "speed"
)

// AllStats lists the six stats in display order
var AllStats = []Stat{StatHP, StatAttack, StatDefense, StatSpecialAttack, StatSpecialDefense, StatSpeed}

// Label is the stat as it appears in battle messages
func (s Stat) Label() string {
	switch s {
	case StatHP:
		return "HP"
	case StatAttack:
		return "Attack"
	case StatDefense:
		return "Defense"
	case StatSpecialAttack:
		return "Sp. Atk"
	case StatSpecialDefense:
		return "Sp. Def"
	case StatSpeed:
		return "Speed"
	}
	return DisplayName(string(s))
}

// StatusKind is one of the major status conditions
type StatusKind string

// Status kinds
const (
	StatusNone      StatusKind = ""
	StatusBurn      StatusKind = "burn"
	StatusParalysis StatusKind = "paralysis"
	StatusFreeze    StatusKind = "freeze"
	StatusSleep     StatusKind = "sleep"
	StatusPoison    StatusKind = "poison"
	StatusToxic     StatusKind = "toxic"
)

// Valid reports whether k names a known status
func (k StatusKind) Valid() bool {
	switch k {
	case StatusBurn, StatusParalysis, StatusFreeze, StatusSleep, StatusPoison, StatusToxic:
		return true
	}
	return false
}
