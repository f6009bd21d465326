package dex

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

type typesFile struct {
	Types []combat.ElementType                                  `yaml:"types"`
	Chart map[combat.ElementType]map[combat.ElementType]float64 `yaml:"chart"`
}

type movesFile struct {
	Moves []moveRecord `yaml:"moves"`
}

type speciesFile struct {
	Species []speciesRecord `yaml:"species"`
}

// accuracy accepts a percentage or the word "never"
type accuracy int

func (a *accuracy) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == "never" {
		*a = accuracy(combat.NeverMisses)
		return nil
	}
	v, err := strconv.Atoi(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: accuracy must be a number or \"never\": %w", node.Line, err)
	}
	*a = accuracy(v)
	return nil
}

type moveRecord struct {
	Name     string             `yaml:"name"`
	Type     combat.ElementType `yaml:"type"`
	Category combat.Category    `yaml:"category"`
	Power    int                `yaml:"power"`
	PP       int                `yaml:"pp"`
	Accuracy accuracy           `yaml:"accuracy"`
	Priority int                `yaml:"priority"`
	Effects  effectsRecord      `yaml:"effects"`
}

type effectsRecord struct {
	Status      *statusRecord      `yaml:"status"`
	Heal        float64            `yaml:"heal"`
	Drain       float64            `yaml:"drain"`
	Recoil      float64            `yaml:"recoil"`
	MultiHit    *multiHitRecord    `yaml:"multi_hit"`
	StatChanges []statChangeRecord `yaml:"stat_changes"`
	Counter     *counterRecord     `yaml:"counter"`
}

type statusRecord struct {
	Kind   combat.StatusKind `yaml:"kind"`
	Chance int               `yaml:"chance"`
}

type multiHitRecord struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type statChangeRecord struct {
	Stat   combat.Stat       `yaml:"stat"`
	Delta  int               `yaml:"delta"`
	Target combat.StatTarget `yaml:"target"`
	Chance int               `yaml:"chance"`
}

type counterRecord struct {
	SucceedsAgainst   []combat.Category `yaml:"succeeds_against"`
	PriorityOnSuccess int               `yaml:"priority_on_success"`
	FailureMessage    string            `yaml:"failure_message"`
}

type speciesRecord struct {
	Name      string               `yaml:"name"`
	Types     []combat.ElementType `yaml:"types"`
	BaseStats map[combat.Stat]int  `yaml:"base_stats"`
	Moves     []string             `yaml:"moves"`
}

func validStat(s combat.Stat) bool {
	for _, known := range combat.AllStats {
		if s == known {
			return true
		}
	}
	return false
}

// toMove resolves a record into an immutable move, rejecting anything the
// rules could not act on
func (r *moveRecord) toMove(known map[combat.ElementType]bool) (combat.Move, error) {
	vb := errors.NewValidationBuilder()
	if r.Name == "" {
		vb.RequiredField("name")
	}
	if !known[r.Type] {
		vb.InvalidField("type", fmt.Sprintf("unknown type %q", r.Type))
	}
	if !r.Category.Valid() {
		vb.InvalidField("category", fmt.Sprintf("unknown category %q", r.Category))
	}
	if r.PP <= 0 {
		vb.InvalidField("pp", "must be positive")
	}
	if int(r.Accuracy) != combat.NeverMisses {
		vb.Range("accuracy", int(r.Accuracy), 1, 100)
	}
	vb.Range("priority", r.Priority, combat.MinPriority, combat.MaxPriority)

	move := combat.Move{
		Name:     r.Name,
		Type:     r.Type,
		Category: r.Category,
		Power:    r.Power,
		PP:       r.PP,
		Accuracy: int(r.Accuracy),
		Priority: r.Priority,
		Effects: combat.Effects{
			Heal:   r.Effects.Heal,
			Drain:  r.Effects.Drain,
			Recoil: r.Effects.Recoil,
		},
	}

	e := r.Effects
	if e.Status != nil {
		if !e.Status.Kind.Valid() {
			vb.InvalidField("effects.status.kind", fmt.Sprintf("unknown status %q", e.Status.Kind))
		}
		move.Effects.Status = &combat.StatusEffect{Kind: e.Status.Kind, Chance: e.Status.Chance}
	}
	if e.MultiHit != nil {
		if e.MultiHit.Min < 1 || e.MultiHit.Max < e.MultiHit.Min {
			vb.InvalidField("effects.multi_hit", "needs 1 <= min <= max")
		}
		move.Effects.MultiHit = &combat.MultiHit{Min: e.MultiHit.Min, Max: e.MultiHit.Max}
	}
	for _, sc := range e.StatChanges {
		if !validStat(sc.Stat) || sc.Stat == combat.StatHP {
			vb.InvalidField("effects.stat_changes", fmt.Sprintf("unknown stat %q", sc.Stat))
		}
		if sc.Target != combat.TargetSelf && sc.Target != combat.TargetOpponent {
			vb.InvalidField("effects.stat_changes", fmt.Sprintf("unknown target %q", sc.Target))
		}
		move.Effects.StatChanges = append(move.Effects.StatChanges, combat.StatChange{
			Stat:   sc.Stat,
			Delta:  sc.Delta,
			Target: sc.Target,
			Chance: sc.Chance,
		})
	}
	if e.Counter != nil {
		for _, c := range e.Counter.SucceedsAgainst {
			if !c.Valid() {
				vb.InvalidField("effects.counter", fmt.Sprintf("unknown category %q", c))
			}
		}
		move.Effects.Counter = &combat.Counter{
			SucceedsAgainst:   append([]combat.Category(nil), e.Counter.SucceedsAgainst...),
			PriorityOnSuccess: e.Counter.PriorityOnSuccess,
			FailureMessage:    e.Counter.FailureMessage,
		}
	}

	if err := vb.Build(); err != nil {
		return combat.Move{}, errors.Wrapf(err, "move %q", r.Name)
	}
	return move, nil
}
