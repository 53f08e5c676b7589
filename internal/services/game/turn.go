package game

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gauntlet/internal/betting"
	"github.com/KirkDiggler/gauntlet/internal/ledger"
	"github.com/KirkDiggler/gauntlet/internal/market"
	"github.com/KirkDiggler/gauntlet/internal/models"
)

// RefreshMarketplace pays to redeal the marketplace
func (s *service) RefreshMarketplace(ctx context.Context, input *RefreshMarketplaceInput) (*RefreshMarketplaceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var payment ledger.Transaction
	state, err := s.update(ctx, input.GameID, func(state *models.GameState) (*models.GameState, error) {
		if err := checkPhase(state, models.PhaseMarketplaceRefresh); err != nil {
			return nil, err
		}
		shooter, err := activePlayer(state)
		if err != nil {
			return nil, err
		}
		res, err := market.Refresh(shooter, state.Marketplace, state.CardDeck, s.deckSource)
		if err != nil {
			return nil, err
		}
		payment = res.Payment

		s.logger.Debug("marketplace refreshed",
			zap.String("game_id", state.ID),
			zap.String("player_id", shooter.ID),
			zap.Int("gold", res.Player.Gold))

		return reduceAll(state,
			UpdatePlayer{Player: res.Player},
			RefreshMarketplace{Marketplace: res.Marketplace, Deck: res.Deck},
			SetPhase{Phase: models.PhaseMarketPurchase})
	})
	if err != nil {
		return nil, err
	}
	return &RefreshMarketplaceOutput{State: state, Payment: payment}, nil
}

// SkipRefresh keeps the current marketplace
func (s *service) SkipRefresh(ctx context.Context, input *SkipRefreshInput) (*SkipRefreshOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	state, err := s.advancePhase(ctx, input.GameID, models.PhaseMarketplaceRefresh, models.PhaseMarketPurchase)
	if err != nil {
		return nil, err
	}
	return &SkipRefreshOutput{State: state}, nil
}

// PurchaseCard buys a card from the marketplace for the shooter. The
// shooter may buy as many cards as they can pay for.
func (s *service) PurchaseCard(ctx context.Context, input *PurchaseCardInput) (*PurchaseCardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var card models.Card
	state, err := s.update(ctx, input.GameID, func(state *models.GameState) (*models.GameState, error) {
		if err := checkPhase(state, models.PhaseMarketPurchase); err != nil {
			return nil, err
		}
		shooter, err := activePlayer(state)
		if err != nil {
			return nil, err
		}
		res, err := market.Purchase(shooter, state.Marketplace, input.CardID)
		if err != nil {
			return nil, err
		}
		card = res.Card

		s.logger.Debug("card purchased",
			zap.String("game_id", state.ID),
			zap.String("player_id", shooter.ID),
			zap.String("card", card.Name),
			zap.Int("cost", card.Cost))

		return Reduce(state, PurchaseCard{Buyer: res.Player, Marketplace: res.Marketplace})
	})
	if err != nil {
		return nil, err
	}
	return &PurchaseCardOutput{State: state, Card: card}, nil
}

// FinishShopping closes the marketplace for this turn
func (s *service) FinishShopping(ctx context.Context, input *FinishShoppingInput) (*FinishShoppingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	state, err := s.advancePhase(ctx, input.GameID, models.PhaseMarketPurchase, models.PhaseCardReveal)
	if err != nil {
		return nil, err
	}
	return &FinishShoppingOutput{State: state}, nil
}

// RevealCards shows the shooter's hand and opens betting
func (s *service) RevealCards(ctx context.Context, input *RevealCardsInput) (*RevealCardsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	state, err := s.advancePhase(ctx, input.GameID, models.PhaseCardReveal, models.PhaseBetting)
	if err != nil {
		return nil, err
	}
	return &RevealCardsOutput{State: state}, nil
}

// PlaceBet records a side bet from a player other than the shooter
func (s *service) PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var bet models.Bet
	state, err := s.update(ctx, input.GameID, func(state *models.GameState) (*models.GameState, error) {
		if err := checkPhase(state, models.PhaseBetting); err != nil {
			return nil, err
		}
		bettor, ok := state.PlayerByID(input.PlayerID)
		if !ok {
			return nil, fmt.Errorf("bet from %s: %w", input.PlayerID, ErrPlayerNotFound)
		}

		placed, stake, err := betting.PlaceBet(betting.BetInput{
			Bettor:         bettor,
			ActivePlayerID: state.TurnState.ActivePlayerID,
			Type:           input.Type,
			Amount:         input.Amount,
			Bets:           state.Bets,
		})
		if err != nil {
			return nil, err
		}
		bet = placed

		s.logger.Debug("bet placed",
			zap.String("game_id", state.ID),
			zap.String("player_id", bettor.ID),
			zap.String("type", string(bet.Type)),
			zap.Int("amount", bet.Amount))

		return Reduce(state, PlaceBet{Bet: placed, Bettor: ledger.Apply(bettor, stake)})
	})
	if err != nil {
		return nil, err
	}
	return &PlaceBetOutput{State: state, Bet: bet}, nil
}

// StartRolling closes betting and snapshots the monster for crap out rollback
func (s *service) StartRolling(ctx context.Context, input *StartRollingInput) (*StartRollingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	state, err := s.update(ctx, input.GameID, s.startRolling)
	if err != nil {
		return nil, err
	}
	return &StartRollingOutput{State: state}, nil
}

func (s *service) startRolling(state *models.GameState) (*models.GameState, error) {
	if err := checkPhase(state, models.PhaseBetting); err != nil {
		return nil, err
	}
	return reduceAll(state, StoreMonsterSnapshot{}, SetPhase{Phase: models.PhaseComeOutRoll})
}

func (s *service) advancePhase(ctx context.Context, gameID string, from, to models.Phase) (*models.GameState, error) {
	return s.update(ctx, gameID, func(state *models.GameState) (*models.GameState, error) {
		if err := checkPhase(state, from); err != nil {
			return nil, err
		}
		return Reduce(state, SetPhase{Phase: to})
	})
}
