package game

//go:generate mockgen -package=mocks -destination=mocks/mock_decider.go github.com/KirkDiggler/gauntlet/internal/services/game Decider

import "github.com/KirkDiggler/gauntlet/internal/models"

// Decider makes the shooter's choices when a turn is played through
type Decider interface {
	// ChoosePointNumber picks which remaining number a point hit removes
	ChoosePointNumber(state *models.GameState, remaining []int) int

	// ChooseEscape reports whether to take the escape on snake eyes
	ChooseEscape(state *models.GameState) bool

	// ChooseRevive reports whether to discard the hand to keep fighting
	ChooseRevive(state *models.GameState) bool
}
