package v1alpha1

// StartBattleRequest starts a battle against a named or random opponent
type StartBattleRequest struct {
	PlayerSpecies   string   `json:"player_species"`
	PlayerNickname  string   `json:"player_nickname,omitempty"`
	PlayerMoves     []string `json:"player_moves,omitempty"`
	OpponentSpecies string   `json:"opponent_species,omitempty"`
	Level           int32    `json:"level,omitempty"`
}

// StartBattleResponse contains the new battle
type StartBattleResponse struct {
	Battle *Battle `json:"battle"`
}

// PlayTurnRequest submits the player's move
type PlayTurnRequest struct {
	BattleId string `json:"battle_id"`
	Move     string `json:"move"`
}

// PlayTurnResponse contains the turn report and resulting state
type PlayTurnResponse struct {
	Battle *Battle     `json:"battle"`
	Turn   *TurnReport `json:"turn"`
}

// GetBattleRequest names a battle
type GetBattleRequest struct {
	BattleId string `json:"battle_id"`
}

// GetBattleResponse contains the battle state
type GetBattleResponse struct {
	Battle *Battle `json:"battle"`
}

// ListSpeciesRequest is empty
type ListSpeciesRequest struct{}

// ListSpeciesResponse lists selectable species
type ListSpeciesResponse struct {
	Species []*Species `json:"species"`
}

// GetTypeAdvantagesRequest names an attacking type
type GetTypeAdvantagesRequest struct {
	Type string `json:"type"`
}

// GetTypeAdvantagesResponse lists a type's matchups
type GetTypeAdvantagesResponse struct {
	Type            string   `json:"type"`
	StrongAgainst   []string `json:"strong_against"`
	WeakAgainst     []string `json:"weak_against"`
	NoEffectAgainst []string `json:"no_effect_against"`
}

// ListHistoryRequest filters finished battles
type ListHistoryRequest struct {
	Species string `json:"species,omitempty"`
	Limit   int32  `json:"limit,omitempty"`
}

// ListHistoryResponse lists finished battles, newest first
type ListHistoryResponse struct {
	Battles []*HistoryEntry `json:"battles"`
}

// Battle is the client view of a battle
type Battle struct {
	Id       string     `json:"id"`
	Turn     int32      `json:"turn"`
	Over     bool       `json:"over"`
	Result   string     `json:"result"`
	Winner   string     `json:"winner,omitempty"`
	Player   *Combatant `json:"player"`
	Opponent *Combatant `json:"opponent"`
}

// Combatant is the client view of one side
type Combatant struct {
	Id      string           `json:"id"`
	Name    string           `json:"name"`
	Species string           `json:"species"`
	Level   int32            `json:"level"`
	Types   []string         `json:"types"`
	Hp      int32            `json:"hp"`
	MaxHp   int32            `json:"max_hp"`
	Status  string           `json:"status,omitempty"`
	Stages  map[string]int32 `json:"stages,omitempty"`
	Moves   []*MoveSlot      `json:"moves"`
}

// MoveSlot is a known move with its remaining uses
type MoveSlot struct {
	Name     string `json:"name"`
	Display  string `json:"display"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Power    int32  `json:"power"`
	Accuracy int32  `json:"accuracy"`
	Priority int32  `json:"priority"`
	Pp       int32  `json:"pp"`
	MaxPp    int32  `json:"max_pp"`
}

// TurnReport is the outcome of one turn
type TurnReport struct {
	Turn           int32    `json:"turn"`
	First          string   `json:"first,omitempty"`
	PlayerDamage   int32    `json:"player_damage"`
	OpponentDamage int32    `json:"opponent_damage"`
	BattleOver     bool     `json:"battle_over"`
	Result         string   `json:"result"`
	Events         []*Event `json:"events"`
}

// Event is one line of the turn log
type Event struct {
	Type    string `json:"type"`
	Side    string `json:"side,omitempty"`
	Message string `json:"message"`
	Damage  int32  `json:"damage,omitempty"`
}

// Species is a selectable species
type Species struct {
	Name      string           `json:"name"`
	Display   string           `json:"display"`
	Types     []string         `json:"types"`
	BaseStats map[string]int32 `json:"base_stats"`
	Moves     []string         `json:"moves"`
}

// HistoryEntry summarizes a finished battle
type HistoryEntry struct {
	BattleId        string `json:"battle_id"`
	PlayerName      string `json:"player_name"`
	PlayerSpecies   string `json:"player_species"`
	OpponentName    string `json:"opponent_name"`
	OpponentSpecies string `json:"opponent_species"`
	Winner          string `json:"winner"`
	Result          string `json:"result"`
	Turns           int32  `json:"turns"`
	FinishedAt      string `json:"finished_at"`
}
