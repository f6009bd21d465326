package combat

import "slices"

// NeverMisses is the accuracy sentinel for moves that skip the accuracy roll
const NeverMisses = -1

// Priority tier bounds
const (
	MinPriority = -6
	MaxPriority = 5
)

// Move is an immutable move definition
type Move struct {
	Name     string      `json:"name"`
	Type     ElementType `json:"type"`
	Category Category    `json:"category"`
	Power    int         `json:"power"`
	PP       int         `json:"pp"`
	Accuracy int         `json:"accuracy"`
	Priority int         `json:"priority"`
	Effects  Effects     `json:"effects"`
}

// DisplayName is the move name as shown in battle text
func (m *Move) DisplayName() string {
	return DisplayName(m.Name)
}

// NeverMisses reports whether the move skips the accuracy roll
func (m *Move) NeverMisses() bool {
	return m.Accuracy == NeverMisses
}

// DealsDamage reports whether the move goes through the damage formula
func (m *Move) DealsDamage() bool {
	return m.Category != CategoryStatus && m.Power > 0
}

// ClampedPriority returns the declared priority within the legal tiers
func (m *Move) ClampedPriority() int {
	return min(max(m.Priority, MinPriority), MaxPriority)
}

// Effects are the optional annotations resolved when a move is built
type Effects struct {
	Status      *StatusEffect `json:"status,omitempty"`
	Heal        float64       `json:"heal,omitempty"`
	Drain       float64       `json:"drain,omitempty"`
	MultiHit    *MultiHit     `json:"multi_hit,omitempty"`
	StatChanges []StatChange  `json:"stat_changes,omitempty"`
	Recoil      float64       `json:"recoil,omitempty"`
	Counter     *Counter      `json:"counter,omitempty"`
}

// StatusEffect inflicts Kind with Chance percent. A zero chance means always.
type StatusEffect struct {
	Kind   StatusKind `json:"kind"`
	Chance int        `json:"chance,omitempty"`
}

// Percent returns the effective infliction chance
func (s *StatusEffect) Percent() int {
	if s.Chance <= 0 {
		return 100
	}
	return s.Chance
}

// MultiHit strikes between Min and Max times. Min == Max is a fixed count.
type MultiHit struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Fixed reports whether the hit count never varies
func (m *MultiHit) Fixed() bool {
	return m.Max <= m.Min
}

// StatTarget chooses who a stat change lands on
type StatTarget string

// Stat change targets
const (
	TargetSelf     StatTarget = "self"
	TargetOpponent StatTarget = "opponent"
)

// StatChange shifts one stat stage. A zero chance means always.
type StatChange struct {
	Stat   Stat       `json:"stat"`
	Delta  int        `json:"delta"`
	Target StatTarget `json:"target"`
	Chance int        `json:"chance,omitempty"`
}

// Counter makes a move's priority depend on the category the opponent chose
type Counter struct {
	SucceedsAgainst   []Category `json:"succeeds_against"`
	PriorityOnSuccess int        `json:"priority_on_success"`
	FailureMessage    string     `json:"failure_message,omitempty"`
}

// Succeeds evaluates the counter predicate against the opposing category
func (c *Counter) Succeeds(opposing Category) bool {
	return slices.Contains(c.SucceedsAgainst, opposing)
}

// Failure returns the message shown when the counter fails
func (c *Counter) Failure() string {
	if c.FailureMessage == "" {
		return "But it failed!"
	}
	return c.FailureMessage
}

// MoveSlot is an owned move with its remaining uses
type MoveSlot struct {
	Move Move `json:"move"`
	PP   int  `json:"pp"`
}

// Usable reports whether the slot has uses left
func (s *MoveSlot) Usable() bool {
	return s.PP > 0
}

// Spend consumes one use
func (s *MoveSlot) Spend() {
	if s.PP > 0 {
		s.PP--
	}
}

// DefaultMove is the conservative stand-in for a move missing from data:
// a normal type, 40 power physical hit with no annotations.
func DefaultMove(name string) Move {
	return Move{
		Name:     name,
		Type:     "normal",
		Category: CategoryPhysical,
		Power:    40,
		PP:       35,
		Accuracy: 100,
	}
}
