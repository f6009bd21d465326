package battle

import (
	"github.com/KirkDiggler/rpg-battle/internal/clients/dex"
	"github.com/KirkDiggler/rpg-battle/internal/engine/turn"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/history"
)

// StartBattleInput contains the request to start a battle
type StartBattleInput struct {
	PlayerSpecies  string
	PlayerNickname string
	// PlayerMoves overrides the species' default move set
	PlayerMoves []string
	// OpponentSpecies is drawn at random when empty
	OpponentSpecies string
	// Level applies to both sides, defaulting to combat.DefaultLevel
	Level int
}

// StartBattleOutput contains the new battle
type StartBattleOutput struct {
	Battle *turn.Battle
}

// PlayTurnInput contains the player's move for the next turn
type PlayTurnInput struct {
	BattleID string
	Move     string
}

// PlayTurnOutput contains the turn report and the updated battle
type PlayTurnOutput struct {
	Battle *turn.Battle
	Report *turn.Report
}

// GetBattleInput names the battle to load
type GetBattleInput struct {
	BattleID string
}

// GetBattleOutput contains the battle state
type GetBattleOutput struct {
	Battle *turn.Battle
}

// ListSpeciesInput is empty
type ListSpeciesInput struct{}

// ListSpeciesOutput contains every selectable species
type ListSpeciesOutput struct {
	Species []*dex.Species
}

// GetTypeAdvantagesInput names the attacking type
type GetTypeAdvantagesInput struct {
	Type combat.ElementType
}

// GetTypeAdvantagesOutput contains the type's matchups
type GetTypeAdvantagesOutput struct {
	Advantages *dex.TypeAdvantages
}

// ListHistoryInput filters finished battles
type ListHistoryInput struct {
	Species string
	Limit   int
}

// ListHistoryOutput contains finished battles, newest first
type ListHistoryOutput struct {
	Entries []*history.Entry
}
