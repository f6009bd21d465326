package turn

import (
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Battle is the persistent state between turns
type Battle struct {
	ID       string            `json:"id"`
	Player   *combat.Combatant `json:"player"`
	Opponent *combat.Combatant `json:"opponent"`
	Turn     int               `json:"turn"`
	Over     bool              `json:"over"`
	Log      []Event           `json:"log"`
}

// NewBattle pairs two combatants. Both must be able to fight.
func NewBattle(player, opponent *combat.Combatant) (*Battle, error) {
	vb := errors.NewValidationBuilder()
	if player == nil {
		vb.RequiredField("Player")
	} else if player.Fainted() {
		vb.InvalidField("Player", "already fainted")
	}
	if opponent == nil {
		vb.RequiredField("Opponent")
	} else if opponent.Fainted() {
		vb.InvalidField("Opponent", "already fainted")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	return &Battle{Player: player, Opponent: opponent}, nil
}

// IsOver reports whether either side has fainted. Once true it stays true.
func (b *Battle) IsOver() bool {
	if b.Player.Fainted() || b.Opponent.Fainted() {
		b.Over = true
	}
	return b.Over
}

// Result is the fixed result text for the current state
func (b *Battle) Result() string {
	switch {
	case b.Player.Fainted():
		return ResultPlayerLost
	case b.Opponent.Fainted():
		return ResultPlayerWon
	default:
		return ResultOngoing
	}
}

// Winner names the winning side's combatant, or empty while ongoing
func (b *Battle) Winner() string {
	switch b.Result() {
	case ResultPlayerLost:
		return b.Opponent.Name
	case ResultPlayerWon:
		return b.Player.Name
	}
	return ""
}
