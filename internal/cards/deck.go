package cards

import (
	"github.com/KirkDiggler/gauntlet/internal/catalog"
	"github.com/KirkDiggler/gauntlet/internal/common/uuid"
	"github.com/KirkDiggler/gauntlet/internal/dice"
	"github.com/KirkDiggler/gauntlet/internal/models"
)

// NewCard instantiates a single copy of a template
func NewCard(tpl catalog.CardTemplate, id string) models.Card {
	return models.Card{
		ID:            id,
		TemplateID:    tpl.ID,
		Name:          tpl.Name,
		Description:   tpl.Description,
		Cost:          tpl.Cost,
		Kind:          tpl.Kind,
		Effect:        tpl.Effect,
		VictoryPoints: tpl.VictoryPoints,
	}
}

// BuildDeck creates every copy of every template in catalog order, drawing
// card ids from ids
func BuildDeck(templates []catalog.CardTemplate, ids uuid.UUID) []models.Card {
	size := 0
	for _, tpl := range templates {
		size += tpl.Copies
	}

	deck := make([]models.Card, 0, size)
	for _, tpl := range templates {
		for i := 0; i < tpl.Copies; i++ {
			deck = append(deck, NewCard(tpl, ids.NewUUID()))
		}
	}
	return deck
}

// Shuffle returns a Fisher-Yates shuffled copy of cards
func Shuffle(cards []models.Card, src dice.Source) []models.Card {
	out := models.CloneCards(cards)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Draw takes up to n cards off the top of the deck
func Draw(deck []models.Card, n int) (drawn, rest []models.Card) {
	if n > len(deck) {
		n = len(deck)
	}
	if n < 0 {
		n = 0
	}
	drawn = models.CloneCards(deck[:n])
	rest = models.CloneCards(deck[n:])
	return drawn, rest
}
