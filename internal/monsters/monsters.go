// Package monsters builds the ten monster gauntlet and tracks hits against
// each monster's numbers.
package monsters

import (
	"errors"
	"fmt"
	"slices"

	"github.com/KirkDiggler/gauntlet/internal/catalog"
	"github.com/KirkDiggler/gauntlet/internal/models"
)

var (
	// ErrInvalidPosition is returned for a position outside 1..MonsterCount
	ErrInvalidPosition = errors.New("invalid monster position")

	// ErrNoNextMonster is returned when advancing past the boss
	ErrNoNextMonster = errors.New("no monster after the last one")

	// ErrNumberNotRemaining is returned when a number is not left on the monster
	ErrNumberNotRemaining = errors.New("number is not remaining on monster")
)

// CreateMonster instantiates the monster for a 1-based gauntlet position
func CreateMonster(position int) (models.Monster, error) {
	if position < 1 || position > models.MonsterCount {
		return models.Monster{}, fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}
	tpl, ok := catalog.Default().MonsterAt(position)
	if !ok {
		return models.Monster{}, fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}

	numbers := slices.Clone(tpl.Numbers)
	return models.Monster{
		ID:               fmt.Sprintf("monster-%d", position),
		Name:             tpl.Name,
		Type:             tpl.Type,
		Position:         tpl.Position,
		NumbersToHit:     numbers,
		RemainingNumbers: slices.Clone(numbers),
		Points:           tpl.Points,
		GoldReward:       tpl.Gold,
	}, nil
}

// CreateGauntlet creates all monsters in fighting order
func CreateGauntlet() ([]models.Monster, error) {
	gauntlet := make([]models.Monster, 0, models.MonsterCount)
	for pos := 1; pos <= models.MonsterCount; pos++ {
		m, err := CreateMonster(pos)
		if err != nil {
			return nil, err
		}
		gauntlet = append(gauntlet, m)
	}
	return gauntlet, nil
}

// IsDefeated reports whether every number has been crossed off
func IsDefeated(m models.Monster) bool {
	return len(m.RemainingNumbers) == 0
}

// HasNumber reports whether n is still remaining on the monster
func HasNumber(m models.Monster, n int) bool {
	return slices.Contains(m.RemainingNumbers, n)
}

// HitNumber crosses n off a copy of the monster
func HitNumber(m models.Monster, n int) (models.Monster, error) {
	if !HasNumber(m, n) {
		return m, fmt.Errorf("hit %d on %s: %w", n, m.Name, ErrNumberNotRemaining)
	}
	out := m.Clone()
	out.RemainingNumbers = slices.DeleteFunc(out.RemainingNumbers, func(v int) bool {
		return v == n
	})
	return out, nil
}

// Defeat clears every remaining number
func Defeat(m models.Monster) models.Monster {
	out := m.Clone()
	out.RemainingNumbers = []int{}
	return out
}

// Snapshot deep copies the monster so it can be restored later
func Snapshot(m models.Monster) *models.Monster {
	c := m.Clone()
	return &c
}

// Restore returns a copy of the snapshot
func Restore(snapshot *models.Monster) (models.Monster, bool) {
	if snapshot == nil {
		return models.Monster{}, false
	}
	return snapshot.Clone(), true
}

// AdvanceIndex moves to the next monster in a gauntlet of size count
func AdvanceIndex(index, count int) (int, error) {
	if index+1 >= count {
		return index, fmt.Errorf("advance from %d: %w", index, ErrNoNextMonster)
	}
	return index + 1, nil
}

// Current returns the monster at index
func Current(gauntlet []models.Monster, index int) (models.Monster, bool) {
	if index < 0 || index >= len(gauntlet) {
		return models.Monster{}, false
	}
	return gauntlet[index], true
}
