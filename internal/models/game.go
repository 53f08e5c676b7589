package models

import (
	"time"
)

// GameState is the aggregate root of a game. Values are treated as
// immutable: every transition produces a new state via Clone.
type GameState struct {
	// ID is the unique identifier for the game
	ID string

	Players  []Player
	Monsters []Monster

	CurrentMonsterIndex int
	CurrentPlayerIndex  int

	TurnState TurnState

	// Bets hold gold already deducted from the bettors
	Bets []Bet

	Marketplace []Card

	// CardDeck is the remaining undealt draw pile
	CardDeck []Card

	// DamageLeaderID is empty while nobody has dealt damage
	DamageLeaderID string

	IsGameOver bool

	// WinnerID is empty on a shared victory; WinnerIDs lists every winner
	WinnerID  string
	WinnerIDs []string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// Clone returns a deep copy of the state
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	out := *g

	out.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		out.Players[i] = p.Clone()
	}

	out.Monsters = make([]Monster, len(g.Monsters))
	for i, m := range g.Monsters {
		out.Monsters[i] = m.Clone()
	}

	out.TurnState = g.TurnState.Clone()
	out.Bets = CloneBets(g.Bets)
	out.Marketplace = cloneCards(g.Marketplace)
	out.CardDeck = cloneCards(g.CardDeck)
	if g.WinnerIDs != nil {
		out.WinnerIDs = append([]string(nil), g.WinnerIDs...)
	}
	return &out
}

// ActivePlayer returns the player whose turn it is
func (g *GameState) ActivePlayer() (Player, bool) {
	if g == nil || g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Players) {
		return Player{}, false
	}
	return g.Players[g.CurrentPlayerIndex], true
}

// CurrentMonster returns the monster being fought
func (g *GameState) CurrentMonster() (Monster, bool) {
	if g == nil || g.CurrentMonsterIndex < 0 || g.CurrentMonsterIndex >= len(g.Monsters) {
		return Monster{}, false
	}
	return g.Monsters[g.CurrentMonsterIndex], true
}

// PlayerByID looks up a player by id
func (g *GameState) PlayerByID(id string) (Player, bool) {
	if g == nil {
		return Player{}, false
	}
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// PlayerIndex returns the seat of the player with id, or -1
func (g *GameState) PlayerIndex(id string) int {
	if g == nil {
		return -1
	}
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}
