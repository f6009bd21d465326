package turn

import (
	"github.com/KirkDiggler/rpg-battle/internal/engine/priority"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
)

// EventType classifies a turn event
type EventType string

// Event types
const (
	EventMoveUsed       EventType = "move_used"
	EventEffectiveness  EventType = "effectiveness"
	EventEffect         EventType = "effect"
	EventStatusApplied  EventType = "status_applied"
	EventStatus         EventType = "status"
	EventStatusDamage   EventType = "status_damage"
	EventPrevented      EventType = "prevented"
	EventFaint          EventType = "faint"
	EventPriority       EventType = "priority"
	EventCounterSuccess EventType = "counter_success"
	EventCounterFailure EventType = "counter_failure"
)

// Event is one entry of the turn log. Events are never changed once
// appended.
type Event struct {
	Type    EventType     `json:"type"`
	Side    priority.Side `json:"side,omitempty"`
	Message string        `json:"message"`

	Attacker   string            `json:"attacker,omitempty"`
	Defender   string            `json:"defender,omitempty"`
	Move       string            `json:"move,omitempty"`
	Damage     int               `json:"damage,omitempty"`
	AttackerHP int               `json:"attacker_hp"`
	DefenderHP int               `json:"defender_hp"`
	Status     combat.StatusKind `json:"status,omitempty"`
}

// Result texts
const (
	ResultOngoing    = "ongoing"
	ResultPlayerWon  = "You won!"
	ResultPlayerLost = "You lost!"
)

// Report is the outcome of one turn
type Report struct {
	Turn   int     `json:"turn"`
	Events []Event `json:"events"`

	// First is the side whose action was ordered first, empty when no move
	// was attempted
	First          priority.Side `json:"first,omitempty"`
	PlayerDamage   int           `json:"player_damage"`
	OpponentDamage int           `json:"opponent_damage"`
	BattleOver     bool          `json:"battle_over"`
	Result         string        `json:"result"`
}

func (r *Report) add(e Event) {
	r.Events = append(r.Events, e)
}

// Messages flattens the log into display lines
func (r *Report) Messages() []string {
	out := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		if e.Message != "" {
			out = append(out, e.Message)
		}
	}
	return out
}
