package cards

import "github.com/KirkDiggler/gauntlet/internal/models"

func FindPermanentCard(p models.Player, cardID string) (models.Card, bool) {
	return find(p.PermanentCards, cardID)
}

func FindSingleUseCard(p models.Player, cardID string) (models.Card, bool) {
	return find(p.SingleUseCards, cardID)
}

func HasPermanentEffect(p models.Player, effect models.CardEffect) bool {
	return len(withEffect(p.PermanentCards, effect)) > 0
}

func HasSingleUseEffect(p models.Player, effect models.CardEffect) bool {
	return len(withEffect(p.SingleUseCards, effect)) > 0
}

// GetPermanentWithEffect lists held permanent cards with the effect, in hand order
func GetPermanentWithEffect(p models.Player, effect models.CardEffect) []models.Card {
	return withEffect(p.PermanentCards, effect)
}

// GetSingleUseWithEffect lists held single-use cards with the effect, in hand order
func GetSingleUseWithEffect(p models.Player, effect models.CardEffect) []models.Card {
	return withEffect(p.SingleUseCards, effect)
}

func CountPermanent(p models.Player) int {
	return len(p.PermanentCards)
}

func CountSingleUse(p models.Player) int {
	return len(p.SingleUseCards)
}

// TotalCards counts both hands
func TotalCards(p models.Player) int {
	return p.CardCount()
}

func withEffect(hand []models.Card, effect models.CardEffect) []models.Card {
	var out []models.Card
	for _, c := range hand {
		if c.Effect == effect {
			out = append(out, c)
		}
	}
	return out
}
