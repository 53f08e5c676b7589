package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gauntlet/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/gauntlet/internal/models"
)

// Repository holds the current snapshot of each game's timeline
type Repository interface {
	// SaveState replaces the stored snapshot for a game
	SaveState(ctx context.Context, input *SaveStateInput) error

	// GetState retrieves the current snapshot for a game
	GetState(ctx context.Context, input *GetStateInput) (*models.GameState, error)

	// DeleteState removes a game
	DeleteState(ctx context.Context, input *DeleteStateInput) error
}
