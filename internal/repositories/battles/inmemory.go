package battles

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/rpg-battle/internal/engine/turn"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Record
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]*Record),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// copyBattle deep copies through JSON so callers never share state with the
// store
func copyBattle(b *turn.Battle) (*turn.Battle, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy battle")
	}
	var out turn.Battle
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "failed to copy battle")
	}
	return &out, nil
}

func copyRecord(rec *Record) (*Record, error) {
	b, err := copyBattle(rec.Battle)
	if err != nil {
		return nil, err
	}
	return &Record{Battle: b, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt}, nil
}

// Create stores a new battle
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateBattle(input.Battle); err != nil {
		return nil, err
	}
	b, err := copyBattle(input.Battle)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[b.ID]; exists {
		return nil, errors.AlreadyExists(errDuplicated).WithMeta("battle_id", b.ID)
	}
	now := r.clock.Now()
	rec := &Record{Battle: b, CreatedAt: now, UpdatedAt: now}
	r.store[b.ID] = rec

	out, err := copyRecord(rec)
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Record: out}, nil
}

// Get retrieves a battle by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFound(errNotFound).WithMeta("battle_id", input.ID)
	}
	out, err := copyRecord(rec)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: out}, nil
}

// Update replaces an existing battle
func (r *InMemoryRepository) Update(_ context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateBattle(input.Battle); err != nil {
		return nil, err
	}
	b, err := copyBattle(input.Battle)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.store[b.ID]
	if !exists {
		return nil, errors.NotFound(errNotFound).WithMeta("battle_id", b.ID)
	}
	rec := &Record{Battle: b, CreatedAt: existing.CreatedAt, UpdatedAt: r.clock.Now()}
	r.store[b.ID] = rec

	out, err := copyRecord(rec)
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Record: out}, nil
}

// Delete removes a battle
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFound(errNotFound).WithMeta("battle_id", input.ID)
	}
	delete(r.store, input.ID)
	return &DeleteOutput{}, nil
}
