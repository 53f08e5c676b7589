package game

import "github.com/KirkDiggler/gauntlet/internal/models"

// Action is a single state transition understood by Reduce. The set is
// closed; only this package defines actions.
type Action interface {
	isAction()
}

// Initialize installs a freshly built game
type Initialize struct {
	State *models.GameState
}

// SetPhase moves the turn to another phase
type SetPhase struct {
	Phase models.Phase
}

// NextPlayer rotates to the next seat and starts a fresh turn. The revive
// flag carries over; AdvanceMonster is what clears it.
type NextPlayer struct{}

// UpdatePlayer replaces the player with the same id
type UpdatePlayer struct {
	Player models.Player
}

// UpdateMonster replaces the monster at Index
type UpdateMonster struct {
	Index   int
	Monster models.Monster
}

// RefreshMarketplace installs a new offer and draw pile
type RefreshMarketplace struct {
	Marketplace []models.Card
	Deck        []models.Card
}

// PurchaseCard records a completed purchase
type PurchaseCard struct {
	Buyer       models.Player
	Marketplace []models.Card
}

// PlaceBet records a bet whose stake has already left the bettor
type PlaceBet struct {
	Bet    models.Bet
	Bettor models.Player
}

// ClearBets drops every bet
type ClearBets struct{}

// SetPoint establishes the point for the turn
type SetPoint struct {
	Point int
}

// AddTurnDamage accumulates damage for the turn
type AddTurnDamage struct {
	Amount int
}

// ResetTurnDamage discards the damage accumulated this turn
type ResetTurnDamage struct{}

// StoreMonsterSnapshot keeps a copy of the current monster for rollback
type StoreMonsterSnapshot struct{}

// ResetMonsterToSnapshot restores the current monster from the snapshot
type ResetMonsterToSnapshot struct{}

// SetReviveFlag marks whether revive has been used on this monster
type SetReviveFlag struct {
	Used bool
}

// IncrementRollCount records a roll
type IncrementRollCount struct {
	Dice []int
}

// HitMonsterNumber crosses a number off the current monster
type HitMonsterNumber struct {
	Number int
}

// DefeatMonster clears every number on the current monster
type DefeatMonster struct{}

// AdvanceMonster moves on to the next monster and clears the revive flag
type AdvanceMonster struct{}

// SetPendingDecision parks the turn until the shooter decides
type SetPendingDecision struct {
	Decision models.Decision
}

// SetDamageLeader records the recomputed damage leader
type SetDamageLeader struct {
	PlayerID string
}

// SetDeck replaces the draw pile
type SetDeck struct {
	Deck []models.Card
}

// EndTurn moves the turn to resolution
type EndTurn struct {
	Reason models.TurnEndReason
}

// EndGame finishes the game. WinnerID is empty on a shared victory.
type EndGame struct {
	WinnerID  string
	WinnerIDs []string
}

// ResetGame throws the game away
type ResetGame struct{}

func (Initialize) isAction()             {}
func (SetPhase) isAction()               {}
func (NextPlayer) isAction()             {}
func (UpdatePlayer) isAction()           {}
func (UpdateMonster) isAction()          {}
func (RefreshMarketplace) isAction()     {}
func (PurchaseCard) isAction()           {}
func (PlaceBet) isAction()               {}
func (ClearBets) isAction()              {}
func (SetPoint) isAction()               {}
func (AddTurnDamage) isAction()          {}
func (ResetTurnDamage) isAction()        {}
func (StoreMonsterSnapshot) isAction()   {}
func (ResetMonsterToSnapshot) isAction() {}
func (SetReviveFlag) isAction()          {}
func (IncrementRollCount) isAction()     {}
func (HitMonsterNumber) isAction()       {}
func (DefeatMonster) isAction()          {}
func (AdvanceMonster) isAction()         {}
func (SetPendingDecision) isAction()     {}
func (SetDamageLeader) isAction()        {}
func (SetDeck) isAction()                {}
func (EndTurn) isAction()                {}
func (EndGame) isAction()                {}
func (ResetGame) isAction()              {}
