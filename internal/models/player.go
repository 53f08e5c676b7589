package models

// Player represents a participant in a game
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string

	// Gold is the player's spendable gold, never negative
	Gold int

	// VictoryPoints are banked points, excluding any damage leader bonus
	VictoryPoints int

	// DamageCount is the cumulative damage committed across the game
	DamageCount int

	// PermanentCards are held in purchase order, at most MaxPermanentCards
	PermanentCards []Card

	// SingleUseCards are held in purchase order, at most MaxSingleUseCards
	SingleUseCards []Card
}

// Clone returns a deep copy of the player
func (p Player) Clone() Player {
	p.PermanentCards = cloneCards(p.PermanentCards)
	p.SingleUseCards = cloneCards(p.SingleUseCards)
	return p
}

// CardCount is the number of cards in both hands
func (p Player) CardCount() int {
	return len(p.PermanentCards) + len(p.SingleUseCards)
}
