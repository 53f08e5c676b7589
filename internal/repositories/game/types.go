package game

import "github.com/KirkDiggler/gauntlet/internal/models"

type SaveStateInput struct {
	State *models.GameState
}

type GetStateInput struct {
	GameID string
}

type DeleteStateInput struct {
	GameID string
}
