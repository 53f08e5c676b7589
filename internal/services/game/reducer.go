package game

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/gauntlet/internal/dice"
	"github.com/KirkDiggler/gauntlet/internal/models"
	"github.com/KirkDiggler/gauntlet/internal/monsters"
)

// Reduce applies action to state and returns the new state. The input is
// never modified. ResetGame yields a nil state; every other action needs a
// non-nil state except Initialize.
func Reduce(state *models.GameState, action Action) (*models.GameState, error) {
	switch a := action.(type) {
	case Initialize:
		if a.State == nil {
			return nil, ErrNilState
		}
		return a.State.Clone(), nil
	case ResetGame:
		return nil, nil
	}

	if state == nil {
		return nil, ErrNilState
	}
	next := state.Clone()

	switch a := action.(type) {
	case SetPhase:
		next.TurnState.Phase = a.Phase

	case NextPlayer:
		if len(next.Players) == 0 {
			return nil, fmt.Errorf("next player: %w", ErrPlayerNotFound)
		}
		next.CurrentPlayerIndex = (next.CurrentPlayerIndex + 1) % len(next.Players)
		next.TurnState = models.NewTurnState(next.Players[next.CurrentPlayerIndex].ID, state.TurnState.HasUsedRevive)

	case UpdatePlayer:
		i := next.PlayerIndex(a.Player.ID)
		if i < 0 {
			return nil, fmt.Errorf("update player %s: %w", a.Player.ID, ErrPlayerNotFound)
		}
		next.Players[i] = a.Player.Clone()

	case UpdateMonster:
		if a.Index < 0 || a.Index >= len(next.Monsters) {
			return nil, fmt.Errorf("update monster %d: %w", a.Index, monsters.ErrInvalidPosition)
		}
		next.Monsters[a.Index] = a.Monster.Clone()

	case RefreshMarketplace:
		next.Marketplace = models.CloneCards(a.Marketplace)
		next.CardDeck = models.CloneCards(a.Deck)

	case PurchaseCard:
		i := next.PlayerIndex(a.Buyer.ID)
		if i < 0 {
			return nil, fmt.Errorf("purchase for %s: %w", a.Buyer.ID, ErrPlayerNotFound)
		}
		next.Players[i] = a.Buyer.Clone()
		next.Marketplace = models.CloneCards(a.Marketplace)

	case PlaceBet:
		i := next.PlayerIndex(a.Bettor.ID)
		if i < 0 {
			return nil, fmt.Errorf("bet from %s: %w", a.Bettor.ID, ErrPlayerNotFound)
		}
		next.Players[i] = a.Bettor.Clone()
		next.Bets = append(next.Bets, a.Bet)

	case ClearBets:
		next.Bets = nil

	case SetPoint:
		if !dice.IsPoint(a.Point) {
			return nil, fmt.Errorf("set point %d: %w", a.Point, dice.ErrInvalidPoint)
		}
		next.TurnState.Point = a.Point

	case AddTurnDamage:
		next.TurnState.TurnDamage += a.Amount

	case ResetTurnDamage:
		next.TurnState.TurnDamage = 0

	case StoreMonsterSnapshot:
		m, ok := next.CurrentMonster()
		if !ok {
			return nil, fmt.Errorf("snapshot monster %d: %w", next.CurrentMonsterIndex, monsters.ErrInvalidPosition)
		}
		next.TurnState.MonsterStateBeforeTurn = monsters.Snapshot(m)

	case ResetMonsterToSnapshot:
		m, ok := monsters.Restore(next.TurnState.MonsterStateBeforeTurn)
		if !ok {
			return nil, ErrMonsterNotSnapshot
		}
		next.Monsters[next.CurrentMonsterIndex] = m

	case SetReviveFlag:
		next.TurnState.HasUsedRevive = a.Used

	case IncrementRollCount:
		next.TurnState.RollCount++
		next.TurnState.LastRoll = slices.Clone(a.Dice)

	case HitMonsterNumber:
		m, ok := next.CurrentMonster()
		if !ok {
			return nil, fmt.Errorf("hit monster %d: %w", next.CurrentMonsterIndex, monsters.ErrInvalidPosition)
		}
		hit, err := monsters.HitNumber(m, a.Number)
		if err != nil {
			return nil, err
		}
		next.Monsters[next.CurrentMonsterIndex] = hit

	case DefeatMonster:
		m, ok := next.CurrentMonster()
		if !ok {
			return nil, fmt.Errorf("defeat monster %d: %w", next.CurrentMonsterIndex, monsters.ErrInvalidPosition)
		}
		next.Monsters[next.CurrentMonsterIndex] = monsters.Defeat(m)

	case AdvanceMonster:
		index, err := monsters.AdvanceIndex(next.CurrentMonsterIndex, len(next.Monsters))
		if err != nil {
			return nil, err
		}
		next.CurrentMonsterIndex = index
		next.TurnState.HasUsedRevive = false
		next.TurnState.MonsterStateBeforeTurn = nil

	case SetPendingDecision:
		next.TurnState.PendingDecision = a.Decision

	case SetDamageLeader:
		next.DamageLeaderID = a.PlayerID

	case SetDeck:
		next.CardDeck = models.CloneCards(a.Deck)

	case EndTurn:
		next.TurnState.Phase = models.PhaseResolution
		next.TurnState.EndReason = a.Reason
		next.TurnState.PendingDecision = models.DecisionNone

	case EndGame:
		next.IsGameOver = true
		next.WinnerID = a.WinnerID
		next.WinnerIDs = slices.Clone(a.WinnerIDs)
		next.TurnState.PendingDecision = models.DecisionNone

	default:
		return nil, fmt.Errorf("unknown action %T", action)
	}

	return next, nil
}

// reduceAll applies actions in order, stopping at the first error
func reduceAll(state *models.GameState, actions ...Action) (*models.GameState, error) {
	var err error
	for _, a := range actions {
		state, err = Reduce(state, a)
		if err != nil {
			return nil, err
		}
	}
	return state, nil
}
