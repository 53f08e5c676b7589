package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gauntlet/internal/common/clock"
	"github.com/KirkDiggler/gauntlet/internal/common/uuid"
	"github.com/KirkDiggler/gauntlet/internal/dice"
	"github.com/KirkDiggler/gauntlet/internal/ledger"
	"github.com/KirkDiggler/gauntlet/internal/models"
	gameRepo "github.com/KirkDiggler/gauntlet/internal/repositories/game"
)

// Config holds configuration for the game service
type Config struct {
	// Repository holds the current snapshot of every game
	Repository gameRepo.Repository

	// DiceRoller rolls the shooter's dice
	DiceRoller dice.Roller

	// DeckSource shuffles the deck and marketplace
	DeckSource dice.Source

	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional; nil logs nothing
	Logger *zap.Logger

	// RollDelay is a cosmetic pause before each roll. Zero disables it.
	RollDelay time.Duration
}

// NewGameInput contains parameters for starting a game
type NewGameInput struct {
	// PlayerNames in seat order; the first name shoots first
	PlayerNames []string
}

// NewGameOutput contains the freshly dealt game
type NewGameOutput struct {
	State *models.GameState
}

type GetStateInput struct {
	GameID string
}

type GetStateOutput struct {
	State *models.GameState
}

type RefreshMarketplaceInput struct {
	GameID string
}

type RefreshMarketplaceOutput struct {
	State   *models.GameState
	Payment ledger.Transaction
}

type SkipRefreshInput struct {
	GameID string
}

type SkipRefreshOutput struct {
	State *models.GameState
}

// PurchaseCardInput contains parameters for the shooter buying a card
type PurchaseCardInput struct {
	GameID string
	CardID string
}

// PurchaseCardOutput contains the result of a purchase
type PurchaseCardOutput struct {
	State *models.GameState

	// Card is the card bought
	Card models.Card
}

type FinishShoppingInput struct {
	GameID string
}

type FinishShoppingOutput struct {
	State *models.GameState
}

type RevealCardsInput struct {
	GameID string
}

type RevealCardsOutput struct {
	State *models.GameState
}

// PlaceBetInput contains parameters for a side bet on the shooter
type PlaceBetInput struct {
	GameID   string
	PlayerID string
	Type     models.BetType

	// Amount is validated as a whole number of gold
	Amount float64
}

// PlaceBetOutput contains the recorded bet
type PlaceBetOutput struct {
	State *models.GameState
	Bet   models.Bet
}

type StartRollingInput struct {
	GameID string
}

type StartRollingOutput struct {
	State *models.GameState
}

type RollComeOutInput struct {
	GameID string
}

// RollComeOutOutput contains the come-out roll and what it did
type RollComeOutOutput struct {
	State   *models.GameState
	Dice    []int
	Sum     int
	Outcome dice.ComeOutOutcome

	// TurnEnded is set when the roll finished the turn; EndReason says how
	TurnEnded bool
	EndReason models.TurnEndReason
}

type RollPointInput struct {
	GameID string
}

// RollPointOutput contains a point phase roll and what it did
type RollPointOutput struct {
	State   *models.GameState
	Dice    []int
	Sum     int
	Outcome dice.PointPhaseOutcome

	// Pending is the decision the shooter now owes, if any
	Pending models.Decision

	TurnEnded bool
	EndReason models.TurnEndReason
}

// ResolvePointChoiceInput names the number a point hit crosses off
type ResolvePointChoiceInput struct {
	GameID string
	Number int
}

type ResolvePointChoiceOutput struct {
	State           *models.GameState
	MonsterDefeated bool
	TurnEnded       bool
}

// ResolveEscapeInput answers the snake eyes escape offer
type ResolveEscapeInput struct {
	GameID string
	Escape bool
}

type ResolveEscapeOutput struct {
	State     *models.GameState
	TurnEnded bool
}

// ResolveReviveInput answers the revive offer after a crap out
type ResolveReviveInput struct {
	GameID string
	Revive bool
}

type ResolveReviveOutput struct {
	State     *models.GameState
	TurnEnded bool

	// Discarded lists every card thrown away to revive
	Discarded []models.Card
}

// PlayTurnInput contains parameters for playing the rest of a turn
type PlayTurnInput struct {
	GameID  string
	Decider Decider
}

// PlayTurnOutput contains the finished turn
type PlayTurnOutput struct {
	State     *models.GameState
	Rolls     [][]int
	EndReason models.TurnEndReason
}

type ResetGameInput struct {
	GameID string
}

type ResetGameOutput struct{}

type GetActivePlayerInput struct {
	GameID string
}

// GetActivePlayerOutput holds the shooter, nil when there is none
type GetActivePlayerOutput struct {
	Player *models.Player
}

type GetCurrentMonsterInput struct {
	GameID string
}

// GetCurrentMonsterOutput holds the monster being fought, nil when there is none
type GetCurrentMonsterOutput struct {
	Monster *models.Monster
}

type GetPlayerByIDInput struct {
	GameID   string
	PlayerID string
}

// GetPlayerByIDOutput holds the player, nil when not seated
type GetPlayerByIDOutput struct {
	Player *models.Player
}
