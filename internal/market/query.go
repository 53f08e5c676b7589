package market

import (
	"slices"

	"github.com/KirkDiggler/gauntlet/internal/ledger"
	"github.com/KirkDiggler/gauntlet/internal/models"
)

var kindOrder = map[models.CardKind]int{
	models.CardKindPermanent: 0,
	models.CardKindSingleUse: 1,
	models.CardKindPoint:     2,
}

// AffordableCards lists the offered cards the player can pay for
func AffordableCards(p models.Player, marketplace []models.Card) []models.Card {
	var out []models.Card
	for _, c := range marketplace {
		if ledger.CanAfford(p, c.Cost) {
			out = append(out, c)
		}
	}
	return out
}

// ByKind lists the offered cards of one kind
func ByKind(marketplace []models.Card, kind models.CardKind) []models.Card {
	var out []models.Card
	for _, c := range marketplace {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func IsLow(marketplace []models.Card) bool {
	return len(marketplace) <= LowThreshold
}

func IsFull(marketplace []models.Card) bool {
	return len(marketplace) >= models.MarketplaceSize
}

// SortByCost returns the cards cheapest first; equal costs keep their order
func SortByCost(marketplace []models.Card) []models.Card {
	out := models.CloneCards(marketplace)
	slices.SortStableFunc(out, func(a, b models.Card) int {
		return a.Cost - b.Cost
	})
	return out
}

// SortByKindThenCost orders permanent, single-use, then point cards,
// cheapest first within each kind
func SortByKindThenCost(marketplace []models.Card) []models.Card {
	out := models.CloneCards(marketplace)
	slices.SortStableFunc(out, func(a, b models.Card) int {
		if d := kindOrder[a.Kind] - kindOrder[b.Kind]; d != 0 {
			return d
		}
		return a.Cost - b.Cost
	})
	return out
}
