// Package history records finished battles
package history

//go:generate mockgen -destination=mock/mock_repository.go -package=historymock github.com/KirkDiggler/rpg-battle/internal/repositories/history Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/engine/turn"
)

// DefaultListLimit caps List when no limit is given
const DefaultListLimit = 20

// MaxListLimit is the largest page List returns
const MaxListLimit = 100

// Entry is one finished battle
type Entry struct {
	BattleID        string       `json:"battle_id"`
	PlayerName      string       `json:"player_name"`
	PlayerSpecies   string       `json:"player_species"`
	OpponentName    string       `json:"opponent_name"`
	OpponentSpecies string       `json:"opponent_species"`
	Winner          string       `json:"winner"`
	Result          string       `json:"result"`
	Turns           int          `json:"turns"`
	Log             []turn.Event `json:"log"`
	FinishedAt      time.Time    `json:"finished_at"`
}

// NewEntry summarizes a finished battle
func NewEntry(b *turn.Battle, finishedAt time.Time) *Entry {
	return &Entry{
		BattleID:        b.ID,
		PlayerName:      b.Player.Name,
		PlayerSpecies:   b.Player.Species,
		OpponentName:    b.Opponent.Name,
		OpponentSpecies: b.Opponent.Species,
		Winner:          b.Winner(),
		Result:          b.Result(),
		Turns:           b.Turn,
		Log:             b.Log,
		FinishedAt:      finishedAt,
	}
}

// RecordInput contains the entry to store
type RecordInput struct {
	Entry *Entry
}

// RecordOutput is empty on success
type RecordOutput struct{}

// GetInput names the battle to load
type GetInput struct {
	BattleID string
}

// GetOutput contains the stored entry
type GetOutput struct {
	Entry *Entry
}

// ListInput filters and pages entries. Results are newest first.
type ListInput struct {
	// Species matches either side's species when set
	Species string
	Limit   int
}

// ListOutput contains the matching entries without their logs
type ListOutput struct {
	Entries []*Entry
}

// Repository defines the storage interface for finished battles
type Repository interface {
	// Record stores a finished battle. Each battle is recorded once.
	Record(ctx context.Context, input *RecordInput) (*RecordOutput, error)

	// Get loads one finished battle with its full log
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns finished battles newest first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}
