// Package battles stores in-progress battle state between turns
package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/KirkDiggler/rpg-battle/internal/repositories/battles Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/engine/turn"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Record is a stored battle with its bookkeeping timestamps
type Record struct {
	Battle    *turn.Battle `json:"battle"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// CreateInput contains the battle to store
type CreateInput struct {
	Battle *turn.Battle
}

// CreateOutput contains the stored record
type CreateOutput struct {
	Record *Record
}

// GetInput names the battle to load
type GetInput struct {
	ID string
}

// GetOutput contains the loaded record
type GetOutput struct {
	Record *Record
}

// UpdateInput contains the battle state to persist
type UpdateInput struct {
	Battle *turn.Battle
}

// UpdateOutput contains the updated record
type UpdateOutput struct {
	Record *Record
}

// DeleteInput names the battle to remove
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty on success
type DeleteOutput struct{}

// Repository defines the storage interface for battles
type Repository interface {
	// Create stores a new battle. A battle with the same ID must not exist.
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get loads a battle by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces the state of an existing battle
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes a battle
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

const (
	errInputNil   = "input is required"
	errBattleNil  = "battle is required"
	errIDEmpty    = "battle ID is required"
	errNotFound   = "battle not found"
	errDuplicated = "battle already exists"
)

func validateBattle(b *turn.Battle) error {
	if b == nil {
		return errors.InvalidArgument(errBattleNil)
	}
	if b.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}
	return nil
}
