package game

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/gauntlet/internal/models"
)

// ErrGameNotFound is returned when no snapshot exists for a game id
var ErrGameNotFound = errors.New("game not found")

// memoryRepository implements Repository in process memory. Snapshots are
// cloned on the way in and out so callers can never alias stored state.
type memoryRepository struct {
	mu     sync.RWMutex
	states map[string]*models.GameState
}

// NewMemory creates an empty in-memory repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		states: make(map[string]*models.GameState),
	}
}

// SaveState stores a copy of the snapshot
func (r *memoryRepository) SaveState(ctx context.Context, input *SaveStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}
	if input.State.ID == "" {
		return errors.New("state ID cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[input.State.ID] = input.State.Clone()
	return nil
}

// GetState returns a copy of the stored snapshot
func (r *memoryRepository) GetState(ctx context.Context, input *GetStateInput) (*models.GameState, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.states[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return state.Clone(), nil
}

// DeleteState removes the snapshot. Deleting an unknown game is not an error.
func (r *memoryRepository) DeleteState(ctx context.Context, input *DeleteStateInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, input.GameID)
	return nil
}
