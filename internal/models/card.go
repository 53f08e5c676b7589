package models

// CardKind is the variant tag of a card
type CardKind string

const (
	// CardKindPermanent cards stay in hand and occupy a permanent slot
	CardKindPermanent CardKind = "permanent"

	// CardKindSingleUse cards are consumed when used
	CardKindSingleUse CardKind = "single_use"

	// CardKindPoint cards resolve into victory points on purchase
	CardKindPoint CardKind = "point"
)

// CardEffect identifies what a permanent or single-use card does
type CardEffect string

// Permanent effects
const (
	EffectGoldMagnet   CardEffect = "gold_magnet"
	EffectIronWill     CardEffect = "iron_will"
	EffectSharpEye     CardEffect = "sharp_eye"
	EffectWarChest     CardEffect = "war_chest"
	EffectSecondWind   CardEffect = "second_wind"
	EffectBookie       CardEffect = "bookie"
	EffectTrophyHunter CardEffect = "trophy_hunter"
)

// Single-use effects
const (
	EffectReroll        CardEffect = "reroll"
	EffectDoubleDamage  CardEffect = "double_damage"
	EffectSafeEscape    CardEffect = "safe_escape"
	EffectGoldRush      CardEffect = "gold_rush"
	EffectPointShift    CardEffect = "point_shift"
	EffectMonsterWeaken CardEffect = "monster_weaken"
)

// PermanentEffects lists every permanent effect kind
var PermanentEffects = []CardEffect{
	EffectGoldMagnet, EffectIronWill, EffectSharpEye, EffectWarChest,
	EffectSecondWind, EffectBookie, EffectTrophyHunter,
}

// SingleUseEffects lists every single-use effect kind
var SingleUseEffects = []CardEffect{
	EffectReroll, EffectDoubleDamage, EffectSafeEscape,
	EffectGoldRush, EffectPointShift, EffectMonsterWeaken,
}

// Card is a tagged union over the three card kinds. Effect is set for
// permanent and single-use cards; VictoryPoints only for point cards.
// Effect is a label only: no turn rule consults it.
type Card struct {
	ID          string
	TemplateID  string
	Name        string
	Description string
	Cost        int
	Kind        CardKind

	Effect        CardEffect
	VictoryPoints int
}

// IsPermanent reports whether the card occupies a permanent slot
func (c Card) IsPermanent() bool {
	return c.Kind == CardKindPermanent
}

// IsSingleUse reports whether the card occupies a single-use slot
func (c Card) IsSingleUse() bool {
	return c.Kind == CardKindSingleUse
}

// IsPoint reports whether the card resolves immediately into victory points
func (c Card) IsPoint() bool {
	return c.Kind == CardKindPoint
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

// CloneCards returns a copy of the slice
func CloneCards(cards []Card) []Card {
	return cloneCards(cards)
}
