// Package autopilot plays games through the game service without a human at
// the table. It shops, bets and answers every decision with a fixed strategy.
package autopilot

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gauntlet/internal/services/game Service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gauntlet/internal/cards"
	"github.com/KirkDiggler/gauntlet/internal/market"
	"github.com/KirkDiggler/gauntlet/internal/models"
	"github.com/KirkDiggler/gauntlet/internal/services/game"
)

// Config holds the configuration for the autopilot
type Config struct {
	// GameService runs the games
	GameService game.Service

	Logger *zap.Logger

	// EscapeThreshold is the turn damage at which an escape is accepted
	EscapeThreshold int

	// BetAmount is staked FOR the shooter by every other player who can
	// afford it. Zero disables betting.
	BetAmount int

	// MaxTurns stops a game that has not ended on its own
	MaxTurns int
}

// GameResult is a game played to its end or to the turn cap
type GameResult struct {
	State *models.GameState
	Turns int

	// Finished is false when the turn cap was hit first
	Finished bool
}

// Autopilot drives games and implements game.Decider
type Autopilot struct {
	gameService     game.Service
	logger          *zap.Logger
	escapeThreshold int
	betAmount       int
	maxTurns        int
}

// New creates a new autopilot
func New(cfg *Config) (*Autopilot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.MaxTurns < 1 {
		return nil, errors.New("max turns must be at least 1")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Autopilot{
		gameService:     cfg.GameService,
		logger:          logger,
		escapeThreshold: cfg.EscapeThreshold,
		betAmount:       cfg.BetAmount,
		maxTurns:        cfg.MaxTurns,
	}, nil
}

// ChoosePointNumber always crosses off the lowest remaining number
func (a *Autopilot) ChoosePointNumber(_ *models.GameState, remaining []int) int {
	return slices.Min(remaining)
}

// ChooseEscape takes the escape once enough damage is at risk
func (a *Autopilot) ChooseEscape(state *models.GameState) bool {
	return state.TurnState.TurnDamage >= a.escapeThreshold
}

// ChooseRevive always revives
func (a *Autopilot) ChooseRevive(_ *models.GameState) bool {
	return true
}

// PlayGame seats the players and plays turns until the game ends or the
// turn cap is reached. The game stays in the store until Discard is called.
func (a *Autopilot) PlayGame(ctx context.Context, playerNames []string) (*GameResult, error) {
	created, err := a.gameService.NewGame(ctx, &game.NewGameInput{PlayerNames: playerNames})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	state := created.State
	turns := 0
	for !state.IsGameOver && turns < a.maxTurns {
		out, err := a.PlayTurn(ctx, state.ID)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", turns+1, err)
		}
		state = out.State
		turns++
	}

	if !state.IsGameOver {
		a.logger.Warn("turn cap reached",
			zap.String("game_id", state.ID),
			zap.Int("turns", turns))
	}
	return &GameResult{State: state, Turns: turns, Finished: state.IsGameOver}, nil
}

// Discard removes a game from the store once its result has been read
func (a *Autopilot) Discard(ctx context.Context, gameID string) error {
	if _, err := a.gameService.ResetGame(ctx, &game.ResetGameInput{GameID: gameID}); err != nil {
		return fmt.Errorf("failed to discard game %s: %w", gameID, err)
	}
	return nil
}

// PlayTurn shops and bets for the table, then rolls the shooter's turn out
func (a *Autopilot) PlayTurn(ctx context.Context, gameID string) (*game.PlayTurnOutput, error) {
	got, err := a.gameService.GetState(ctx, &game.GetStateInput{GameID: gameID})
	if err != nil {
		return nil, err
	}
	state := got.State

	if state.TurnState.Phase == models.PhaseMarketplaceRefresh {
		if state, err = a.refresh(ctx, state); err != nil {
			return nil, err
		}
	}
	if state.TurnState.Phase == models.PhaseMarketPurchase {
		if state, err = a.shop(ctx, state); err != nil {
			return nil, err
		}
	}
	if state.TurnState.Phase == models.PhaseCardReveal {
		revealed, err := a.gameService.RevealCards(ctx, &game.RevealCardsInput{GameID: gameID})
		if err != nil {
			return nil, err
		}
		state = revealed.State
	}
	if state.TurnState.Phase == models.PhaseBetting {
		if err := a.bet(ctx, state); err != nil {
			return nil, err
		}
		if _, err := a.gameService.StartRolling(ctx, &game.StartRollingInput{GameID: gameID}); err != nil {
			return nil, err
		}
	}

	out, err := a.gameService.PlayTurn(ctx, &game.PlayTurnInput{GameID: gameID, Decider: a})
	if err != nil {
		return nil, err
	}

	a.logger.Info("turn played",
		zap.String("game_id", gameID),
		zap.String("player_id", state.TurnState.ActivePlayerID),
		zap.Int("rolls", len(out.Rolls)),
		zap.String("end_reason", string(out.EndReason)))

	return out, nil
}

// refresh redeals a thin marketplace when the shooter can pay for it
func (a *Autopilot) refresh(ctx context.Context, state *models.GameState) (*models.GameState, error) {
	shooter, _ := state.ActivePlayer()
	if market.IsLow(state.Marketplace) && len(state.CardDeck) > 0 && market.CanRefresh(shooter) {
		out, err := a.gameService.RefreshMarketplace(ctx, &game.RefreshMarketplaceInput{GameID: state.ID})
		if err != nil {
			return nil, err
		}
		return out.State, nil
	}
	out, err := a.gameService.SkipRefresh(ctx, &game.SkipRefreshInput{GameID: state.ID})
	if err != nil {
		return nil, err
	}
	return out.State, nil
}

// shop buys the cheapest card the shooter can both pay for and hold
func (a *Autopilot) shop(ctx context.Context, state *models.GameState) (*models.GameState, error) {
	shooter, _ := state.ActivePlayer()
	if card, ok := cheapestBuyable(shooter, state.Marketplace); ok {
		out, err := a.gameService.PurchaseCard(ctx, &game.PurchaseCardInput{GameID: state.ID, CardID: card.ID})
		if err != nil {
			return nil, err
		}
		state = out.State
	}

	out, err := a.gameService.FinishShopping(ctx, &game.FinishShoppingInput{GameID: state.ID})
	if err != nil {
		return nil, err
	}
	return out.State, nil
}

// bet stakes BetAmount FOR the shooter from every other player who has it
func (a *Autopilot) bet(ctx context.Context, state *models.GameState) error {
	if a.betAmount <= 0 {
		return nil
	}
	for _, p := range state.Players {
		if p.ID == state.TurnState.ActivePlayerID || p.Gold < a.betAmount {
			continue
		}
		_, err := a.gameService.PlaceBet(ctx, &game.PlaceBetInput{
			GameID:   state.ID,
			PlayerID: p.ID,
			Type:     models.BetFor,
			Amount:   float64(a.betAmount),
		})
		if err != nil {
			return fmt.Errorf("bet for %s: %w", p.ID, err)
		}
	}
	return nil
}

func cheapestBuyable(p models.Player, marketplace []models.Card) (models.Card, bool) {
	for _, c := range market.SortByCost(market.AffordableCards(p, marketplace)) {
		if cards.CanHold(p, c) {
			return c, true
		}
	}
	return models.Card{}, false
}
