package combat

import (
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// EntityType is the rpg-toolkit entity type for combatants
const EntityType = "combatant"

// DefaultLevel is used when construction data names no level
const DefaultLevel = 50

// Combatant is one side's creature in a battle
type Combatant struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Species string        `json:"species"`
	Level   int           `json:"level"`
	Types   []ElementType `json:"types"`
	Base    Stats         `json:"base"`
	Stats   Stats         `json:"stats"`
	MaxHP   int           `json:"max_hp"`
	HP      int           `json:"hp"`
	Stages  Stages        `json:"stages"`
	Status  Conditions    `json:"status"`

	Moves     map[string]*MoveSlot `json:"moves"`
	MoveOrder []string             `json:"move_order"`
}

// Spec is the external construction data for a combatant
type Spec struct {
	ID        string
	Name      string
	Species   string
	Level     int
	Types     []ElementType
	BaseStats map[Stat]int
	Moves     []Move
}

// New builds a combatant at full HP. Malformed data fails here rather than
// mid-battle.
func New(spec Spec) (*Combatant, error) {
	vb := errors.NewValidationBuilder()
	if spec.Name == "" {
		vb.RequiredField("Name")
	}
	if len(spec.Types) == 0 || len(spec.Types) > 2 {
		vb.InvalidField("Types", "a combatant has one or two types")
	}
	if len(spec.Moves) == 0 {
		vb.RequiredField("Moves")
	}
	var base Stats
	for _, stat := range AllStats {
		v, ok := spec.BaseStats[stat]
		if !ok || v <= 0 {
			vb.InvalidField("BaseStats", "missing or non-positive "+string(stat))
			continue
		}
		base.Set(stat, v)
	}
	level := spec.Level
	if level == 0 {
		level = DefaultLevel
	}
	vb.Range("Level", level, 1, 100)
	if err := vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "invalid combatant %q", spec.Name)
	}

	c := &Combatant{
		ID:      spec.ID,
		Name:    spec.Name,
		Species: spec.Species,
		Level:   level,
		Types:   append([]ElementType(nil), spec.Types...),
		Base:    base,
		Stats:   base.AtLevel(level),
		Moves:   make(map[string]*MoveSlot, len(spec.Moves)),
	}
	c.MaxHP = c.Stats.HP
	c.HP = c.MaxHP

	for _, m := range spec.Moves {
		if _, dup := c.Moves[m.Name]; dup {
			continue
		}
		c.Moves[m.Name] = &MoveSlot{Move: m, PP: m.PP}
		c.MoveOrder = append(c.MoveOrder, m.Name)
	}
	return c, nil
}

// GetID implements core.Entity
func (c *Combatant) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Combatant) GetType() string {
	return EntityType
}

// DisplayName is the combatant name as shown in battle text
func (c *Combatant) DisplayName() string {
	return DisplayName(c.Name)
}

// Fainted reports whether HP has reached zero
func (c *Combatant) Fainted() bool {
	return c.HP <= 0
}

// HasType reports whether t is one of the combatant's types
func (c *Combatant) HasType(t ElementType) bool {
	for _, own := range c.Types {
		if own == t {
			return true
		}
	}
	return false
}

// LoseHP removes up to n HP and returns the amount removed
func (c *Combatant) LoseHP(n int) int {
	if n <= 0 || c.HP <= 0 {
		return 0
	}
	n = min(n, c.HP)
	c.HP -= n
	return n
}

// GainHP restores up to n HP, never past MaxHP. Fainted combatants stay
// fainted.
func (c *Combatant) GainHP(n int) int {
	if n <= 0 || c.HP <= 0 {
		return 0
	}
	n = min(n, c.MaxHP-c.HP)
	c.HP += n
	return n
}

// Slot returns the owned move slot by name
func (c *Combatant) Slot(name string) (*MoveSlot, bool) {
	slot, ok := c.Moves[name]
	return slot, ok
}

// UsableMoves lists slots with PP left, in learned order
func (c *Combatant) UsableMoves() []*MoveSlot {
	var out []*MoveSlot
	for _, name := range c.MoveOrder {
		if slot := c.Moves[name]; slot != nil && slot.Usable() {
			out = append(out, slot)
		}
	}
	return out
}
