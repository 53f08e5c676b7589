package models

// BetType is the side of a bet relative to the shooter
type BetType string

const (
	BetFor     BetType = "FOR"
	BetAgainst BetType = "AGAINST"
)

// Bet is gold already deducted from a bettor and held in play for the turn
type Bet struct {
	PlayerID string
	Type     BetType
	Amount   int
}

// CloneBets returns a copy of the slice
func CloneBets(bets []Bet) []Bet {
	if bets == nil {
		return nil
	}
	out := make([]Bet, len(bets))
	copy(out, bets)
	return out
}
