// Package market runs the rotating card shop: refreshing the window of
// cards on offer and validating and settling purchases.
package market

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/gauntlet/internal/cards"
	"github.com/KirkDiggler/gauntlet/internal/dice"
	"github.com/KirkDiggler/gauntlet/internal/ledger"
	"github.com/KirkDiggler/gauntlet/internal/models"
)

// LowThreshold is the card count at or below which the marketplace is low
const LowThreshold = 3

// ErrNotEnoughGold is returned when the player cannot pay for a card or refresh
var ErrNotEnoughGold = errors.New("not enough gold")

// RefreshResult is the state after paying to refresh the marketplace
type RefreshResult struct {
	Player      models.Player
	Marketplace []models.Card
	Deck        []models.Card
	Payment     ledger.Transaction
}

// PurchaseResult is the state after buying a card
type PurchaseResult struct {
	Player      models.Player
	Marketplace []models.Card
	Card        models.Card
	Payment     ledger.Transaction
}

// CanRefresh reports whether the player can pay the refresh cost
func CanRefresh(p models.Player) bool {
	return ledger.CanAfford(p, models.MarketplaceRefreshCost)
}

// Deal draws a full marketplace off the top of the deck
func Deal(deck []models.Card) (marketplace, rest []models.Card) {
	return cards.Draw(deck, models.MarketplaceSize)
}

// Refresh charges the refresh cost, shuffles the current offer back into
// the deck and deals a new marketplace
func Refresh(p models.Player, marketplace, deck []models.Card, src dice.Source) (*RefreshResult, error) {
	if !CanRefresh(p) {
		return nil, fmt.Errorf("refresh for %s holding %d: %w", p.ID, p.Gold, ErrNotEnoughGold)
	}
	payment, err := ledger.RemoveGold(p, models.MarketplaceRefreshCost)
	if err != nil {
		return nil, err
	}

	pool := make([]models.Card, 0, len(deck)+len(marketplace))
	pool = append(pool, deck...)
	pool = append(pool, marketplace...)
	pool = cards.Shuffle(pool, src)

	offer, rest := Deal(pool)
	return &RefreshResult{
		Player:      ledger.Apply(p, payment),
		Marketplace: offer,
		Deck:        rest,
		Payment:     payment,
	}, nil
}

// ValidatePurchase checks, in order, that the card is on offer, that the
// player can afford it and that a hand slot is free for it
func ValidatePurchase(p models.Player, marketplace []models.Card, cardID string) (models.Card, error) {
	card, ok := findCard(marketplace, cardID)
	if !ok {
		return models.Card{}, fmt.Errorf("purchase %s: %w", cardID, cards.ErrCardNotFound)
	}
	if !ledger.CanAfford(p, card.Cost) {
		return models.Card{}, fmt.Errorf("purchase %s costing %d with %d gold: %w", card.Name, card.Cost, p.Gold, ErrNotEnoughGold)
	}
	if !cards.CanHold(p, card) {
		return models.Card{}, fmt.Errorf("purchase %s: %w", card.Name, cards.ErrHandFull)
	}
	return card, nil
}

// Purchase removes the card from the marketplace, charges the player and
// routes the card into the right hand or straight into victory points
func Purchase(p models.Player, marketplace []models.Card, cardID string) (*PurchaseResult, error) {
	card, err := ValidatePurchase(p, marketplace, cardID)
	if err != nil {
		return nil, err
	}

	payment, err := ledger.RemoveGold(p, card.Cost)
	if err != nil {
		return nil, err
	}
	buyer, err := cards.Receive(ledger.Apply(p, payment), card)
	if err != nil {
		return nil, err
	}

	return &PurchaseResult{
		Player:      buyer,
		Marketplace: without(marketplace, cardID),
		Card:        card,
		Payment:     payment,
	}, nil
}

func findCard(marketplace []models.Card, cardID string) (models.Card, bool) {
	for _, c := range marketplace {
		if c.ID == cardID {
			return c, true
		}
	}
	return models.Card{}, false
}

func without(marketplace []models.Card, cardID string) []models.Card {
	out := make([]models.Card, 0, len(marketplace))
	for _, c := range marketplace {
		if c.ID != cardID {
			out = append(out, c)
		}
	}
	return out
}
