// Package cards builds the deck and manages the two bounded card hands.
// Functions return new slices and never modify the player passed in.
package cards

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/gauntlet/internal/models"
)

var (
	ErrHandFull      = errors.New("hand is full")
	ErrDuplicateCard = errors.New("card already in hand")
	ErrCardNotFound  = errors.New("card not found")

	// ErrWrongKind is returned when a card is routed to the wrong hand
	ErrWrongKind = errors.New("card kind does not match hand")
)

// Discard is the result of throwing away a whole hand
type Discard struct {
	PermanentCards []models.Card
	SingleUseCards []models.Card

	DiscardedPermanent []models.Card
	DiscardedSingleUse []models.Card
}

// CanHoldPermanent reports whether a permanent slot is free
func CanHoldPermanent(p models.Player) bool {
	return len(p.PermanentCards) < models.MaxPermanentCards
}

// CanHoldSingleUse reports whether a single-use slot is free
func CanHoldSingleUse(p models.Player) bool {
	return len(p.SingleUseCards) < models.MaxSingleUseCards
}

// CanHold reports whether the player has room for card. Point cards never
// take a slot.
func CanHold(p models.Player, card models.Card) bool {
	switch card.Kind {
	case models.CardKindPermanent:
		return CanHoldPermanent(p)
	case models.CardKindSingleUse:
		return CanHoldSingleUse(p)
	default:
		return true
	}
}

// AddPermanentCard appends card to the permanent hand
func AddPermanentCard(p models.Player, card models.Card) ([]models.Card, error) {
	if !card.IsPermanent() {
		return nil, fmt.Errorf("add %s to permanent hand: %w", card.ID, ErrWrongKind)
	}
	if !CanHoldPermanent(p) {
		return nil, fmt.Errorf("add %s to %s: %w", card.ID, p.ID, ErrHandFull)
	}
	if _, ok := find(p.PermanentCards, card.ID); ok {
		return nil, fmt.Errorf("add %s to %s: %w", card.ID, p.ID, ErrDuplicateCard)
	}
	return append(models.CloneCards(p.PermanentCards), card), nil
}

// AddSingleUseCard appends card to the single-use hand
func AddSingleUseCard(p models.Player, card models.Card) ([]models.Card, error) {
	if !card.IsSingleUse() {
		return nil, fmt.Errorf("add %s to single-use hand: %w", card.ID, ErrWrongKind)
	}
	if !CanHoldSingleUse(p) {
		return nil, fmt.Errorf("add %s to %s: %w", card.ID, p.ID, ErrHandFull)
	}
	if _, ok := find(p.SingleUseCards, card.ID); ok {
		return nil, fmt.Errorf("add %s to %s: %w", card.ID, p.ID, ErrDuplicateCard)
	}
	return append(models.CloneCards(p.SingleUseCards), card), nil
}

// UseSingleUseCard removes the card from the single-use hand and returns it
// with the remaining hand
func UseSingleUseCard(p models.Player, cardID string) (models.Card, []models.Card, error) {
	card, rest, ok := remove(p.SingleUseCards, cardID)
	if !ok {
		return models.Card{}, nil, fmt.Errorf("use %s for %s: %w", cardID, p.ID, ErrCardNotFound)
	}
	return card, rest, nil
}

// RemovePermanentCard strips a permanent card from the hand
func RemovePermanentCard(p models.Player, cardID string) (models.Card, []models.Card, error) {
	card, rest, ok := remove(p.PermanentCards, cardID)
	if !ok {
		return models.Card{}, nil, fmt.Errorf("remove %s from %s: %w", cardID, p.ID, ErrCardNotFound)
	}
	return card, rest, nil
}

// DiscardHand throws away every card in both hands
func DiscardHand(p models.Player) Discard {
	return Discard{
		PermanentCards:     []models.Card{},
		SingleUseCards:     []models.Card{},
		DiscardedPermanent: models.CloneCards(p.PermanentCards),
		DiscardedSingleUse: models.CloneCards(p.SingleUseCards),
	}
}

// Receive routes a card to the player the way a purchase does, without
// charging for it: permanent and single-use cards go to their hand, point
// cards become victory points.
func Receive(p models.Player, card models.Card) (models.Player, error) {
	out := p.Clone()
	switch card.Kind {
	case models.CardKindPermanent:
		hand, err := AddPermanentCard(p, card)
		if err != nil {
			return p, err
		}
		out.PermanentCards = hand
	case models.CardKindSingleUse:
		hand, err := AddSingleUseCard(p, card)
		if err != nil {
			return p, err
		}
		out.SingleUseCards = hand
	case models.CardKindPoint:
		out.VictoryPoints += card.VictoryPoints
	default:
		return p, fmt.Errorf("receive %s: %w", card.ID, ErrWrongKind)
	}
	return out, nil
}

func find(hand []models.Card, cardID string) (models.Card, bool) {
	for _, c := range hand {
		if c.ID == cardID {
			return c, true
		}
	}
	return models.Card{}, false
}

func remove(hand []models.Card, cardID string) (models.Card, []models.Card, bool) {
	for i, c := range hand {
		if c.ID == cardID {
			rest := make([]models.Card, 0, len(hand)-1)
			rest = append(rest, hand[:i]...)
			rest = append(rest, hand[i+1:]...)
			return c, rest, true
		}
	}
	return models.Card{}, nil, false
}
