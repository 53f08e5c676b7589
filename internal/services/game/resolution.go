package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gauntlet/internal/betting"
	"github.com/KirkDiggler/gauntlet/internal/cards"
	"github.com/KirkDiggler/gauntlet/internal/ledger"
	"github.com/KirkDiggler/gauntlet/internal/models"
	"github.com/KirkDiggler/gauntlet/internal/monsters"
	"github.com/KirkDiggler/gauntlet/internal/victory"
)

// checkPhase rejects an action unless the turn sits in phase with nothing
// pending
func checkPhase(state *models.GameState, phase models.Phase) error {
	if state.IsGameOver {
		return ErrGameOver
	}
	if state.TurnState.Phase != phase {
		return fmt.Errorf("%w: expected %s, in %s", ErrInvalidPhase, phase, state.TurnState.Phase)
	}
	if state.TurnState.PendingDecision != models.DecisionNone {
		return fmt.Errorf("%w: %s", ErrDecisionPending, state.TurnState.PendingDecision)
	}
	return nil
}

// checkDecision rejects an answer unless that decision is pending
func checkDecision(state *models.GameState, decision models.Decision) error {
	if state.IsGameOver {
		return ErrGameOver
	}
	if state.TurnState.PendingDecision != decision {
		return fmt.Errorf("%w: want %s, pending %q", ErrNoDecisionPending, decision, state.TurnState.PendingDecision)
	}
	return nil
}

func activePlayer(state *models.GameState) (models.Player, error) {
	p, ok := state.ActivePlayer()
	if !ok {
		return models.Player{}, fmt.Errorf("seat %d: %w", state.CurrentPlayerIndex, ErrPlayerNotFound)
	}
	return p, nil
}

// payout credits every resolution back to its bettor
func payout(state *models.GameState, resolutions []betting.Resolution) (*models.GameState, error) {
	for _, r := range resolutions {
		if r.GoldChange == 0 {
			continue
		}
		p, ok := state.PlayerByID(r.PlayerID)
		if !ok {
			return nil, fmt.Errorf("settle bet for %s: %w", r.PlayerID, ErrPlayerNotFound)
		}
		tx, err := ledger.AddGold(p, r.GoldChange)
		if err != nil {
			return nil, err
		}
		state, err = Reduce(state, UpdatePlayer{Player: ledger.Apply(p, tx)})
		if err != nil {
			return nil, err
		}
	}
	return state, nil
}

// settle pays out resolutions and drops every bet they settled
func (s *service) settle(state *models.GameState, resolutions []betting.Resolution) (*models.GameState, error) {
	state, err := payout(state, resolutions)
	if err != nil {
		return nil, err
	}
	if len(resolutions) > 0 {
		s.logger.Debug("bets settled",
			zap.String("game_id", state.ID),
			zap.String("reason", string(resolutions[0].Reason)),
			zap.Int("bets", len(resolutions)),
			zap.Int("paid", betting.TotalPayout(resolutions)))
	}
	return Reduce(state, ClearBets{})
}

// penalize takes the crap out penalty from the shooter
func (s *service) penalize(state *models.GameState) (*models.GameState, error) {
	shooter, err := activePlayer(state)
	if err != nil {
		return nil, err
	}
	tx := ledger.ApplyCrapOutPenalty(shooter)
	s.logger.Debug("crap out penalty",
		zap.String("game_id", state.ID),
		zap.String("player_id", shooter.ID),
		zap.Int("lost", -tx.Delta))
	return Reduce(state, UpdatePlayer{Player: ledger.Apply(shooter, tx)})
}

// defeatMonster settles bets, pays the shooter the monster's rewards and
// the AGAINST pool, commits the turn's damage, draws a card and moves on
func (s *service) defeatMonster(state *models.GameState, resolutions []betting.Resolution, againstPool int) (*models.GameState, models.TurnEndReason, error) {
	monster, ok := state.CurrentMonster()
	if !ok {
		return nil, "", fmt.Errorf("defeat monster %d: %w", state.CurrentMonsterIndex, monsters.ErrInvalidPosition)
	}

	state, err := s.settle(state, resolutions)
	if err != nil {
		return nil, "", err
	}

	shooter, err := activePlayer(state)
	if err != nil {
		return nil, "", err
	}
	reward, err := ledger.AddGold(shooter, monster.GoldReward+againstPool)
	if err != nil {
		return nil, "", err
	}
	shooter = ledger.Apply(shooter, reward)
	shooter.VictoryPoints += monster.Points
	shooter.DamageCount += state.TurnState.TurnDamage

	state, err = reduceAll(state, UpdatePlayer{Player: shooter}, DefeatMonster{})
	if err != nil {
		return nil, "", err
	}
	state, err = s.drawCard(state)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("monster defeated",
		zap.String("game_id", state.ID),
		zap.String("player_id", shooter.ID),
		zap.String("monster", monster.Name),
		zap.Int("points", monster.Points),
		zap.Int("gold", monster.GoldReward),
		zap.Int("against_pool", againstPool),
		zap.Int("turn_damage", state.TurnState.TurnDamage))

	if !monster.IsBoss() {
		state, err = Reduce(state, AdvanceMonster{})
		if err != nil {
			return nil, "", err
		}
	}
	return s.endTurn(state, models.TurnEndDefeated)
}

// drawCard gives the shooter the top card of the deck. A card the shooter
// has no room for goes to the bottom of the deck.
func (s *service) drawCard(state *models.GameState) (*models.GameState, error) {
	drawn, rest := cards.Draw(state.CardDeck, 1)
	if len(drawn) == 0 {
		return state, nil
	}
	card := drawn[0]

	shooter, err := activePlayer(state)
	if err != nil {
		return nil, err
	}
	received, err := cards.Receive(shooter, card)
	if errors.Is(err, cards.ErrHandFull) {
		s.logger.Debug("drawn card returned to deck",
			zap.String("player_id", shooter.ID),
			zap.String("card", card.Name))
		return Reduce(state, SetDeck{Deck: append(rest, card)})
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("card drawn",
		zap.String("player_id", shooter.ID),
		zap.String("card", card.Name),
		zap.String("kind", string(card.Kind)))
	return reduceAll(state, UpdatePlayer{Player: received}, SetDeck{Deck: rest})
}

// endTurn finishes the turn: it recomputes the damage leader, ends the game
// on a win or the boss falling, and otherwise rotates to the next player
func (s *service) endTurn(state *models.GameState, reason models.TurnEndReason) (*models.GameState, models.TurnEndReason, error) {
	leader := victory.DamageLeader(state.Players)
	state, err := reduceAll(state, EndTurn{Reason: reason}, SetDamageLeader{PlayerID: leader})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("turn ended",
		zap.String("game_id", state.ID),
		zap.String("player_id", state.TurnState.ActivePlayerID),
		zap.String("reason", string(reason)),
		zap.Int("rolls", state.TurnState.RollCount),
		zap.String("damage_leader", leader))

	outcome, over := victory.CheckVictory(state.Players, leader)
	if m, ok := state.CurrentMonster(); ok && m.IsBoss() && monsters.IsDefeated(m) {
		outcome, over = victory.Decide(state.Players, leader), true
	}
	if over {
		state, err = reduceAll(state,
			ClearBets{},
			EndGame{WinnerID: outcome.WinnerID, WinnerIDs: outcome.WinnerIDs})
		if err != nil {
			return nil, "", err
		}
		s.logger.Info("game over",
			zap.String("game_id", state.ID),
			zap.String("winner_id", outcome.WinnerID),
			zap.Strings("winner_ids", outcome.WinnerIDs),
			zap.Bool("shared", outcome.Shared))
		return state, reason, nil
	}

	state, err = reduceAll(state, ClearBets{}, NextPlayer{})
	if err != nil {
		return nil, "", err
	}
	return state, reason, nil
}
