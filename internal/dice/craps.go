package dice

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// Sides is the number of faces on every die in the game
	Sides = 6

	// Count is the number of dice thrown per roll
	Count = 2

	MinSum = 2
	MaxSum = 12
)

var (
	// ErrInvalidSum is returned when a two-dice sum falls outside [2, 12]
	ErrInvalidSum = errors.New("dice sum out of range")

	// ErrInvalidPoint is returned when a point is not one of 4, 5, 6, 8, 9, 10
	ErrInvalidPoint = errors.New("invalid point value")
)

// PointNumbers are the craps point numbers in ascending order
var PointNumbers = []int{4, 5, 6, 8, 9, 10}

// ComeOutOutcome is the classification of a come-out roll
type ComeOutOutcome string

const (
	ComeOutNatural ComeOutOutcome = "natural"
	ComeOutCraps   ComeOutOutcome = "craps"
	ComeOutPoint   ComeOutOutcome = "point"
)

// ComeOutResult describes a classified come-out roll
type ComeOutResult struct {
	Outcome ComeOutOutcome

	// PointValue is set only when Outcome is ComeOutPoint
	PointValue int
}

// PointPhaseOutcome is the classification of a roll during the point phase
type PointPhaseOutcome string

const (
	PointPhaseCrapOut       PointPhaseOutcome = "crap_out"
	PointPhasePointHit      PointPhaseOutcome = "point_hit"
	PointPhaseHit           PointPhaseOutcome = "hit"
	PointPhaseEscapeOffered PointPhaseOutcome = "escape_offered"
	PointPhaseMiss          PointPhaseOutcome = "miss"
)

// PointPhaseResult describes a classified point phase roll
type PointPhaseResult struct {
	Outcome PointPhaseOutcome

	// HitNumber is the monster number struck, set only for PointPhaseHit
	HitNumber int
}

// RollDice rolls count independent six-sided dice
func RollDice(r Roller, count int) []int {
	if count < 0 {
		count = 0
	}
	values := make([]int, count)
	for i := range values {
		values[i] = r.Roll(Sides)
	}
	return values
}

// SumDice adds up the face values
func SumDice(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// ValidateSum checks that sum is reachable with two six-sided dice
func ValidateSum(sum int) error {
	if sum < MinSum || sum > MaxSum {
		return fmt.Errorf("%w: %d", ErrInvalidSum, sum)
	}
	return nil
}

// IsNatural reports a come-out winner (7 or 11)
func IsNatural(sum int) bool {
	return sum == 7 || sum == 11
}

// IsCraps reports a come-out loser (2, 3 or 12)
func IsCraps(sum int) bool {
	return sum == 2 || sum == 3 || sum == 12
}

// IsPoint reports whether sum establishes a point
func IsPoint(sum int) bool {
	return slices.Contains(PointNumbers, sum)
}

// IsCrapOut reports a seven during the point phase
func IsCrapOut(sum int) bool {
	return sum == 7
}

// IsEscapeRoll reports the snake eyes escape offer
func IsEscapeRoll(sum int) bool {
	return sum == 2
}

// IsPointHit reports whether sum repeats the established point
func IsPointHit(sum, point int) bool {
	return sum == point
}

// IsMonsterHit reports whether sum is one of the monster's numbers
func IsMonsterHit(sum int, numbers []int) bool {
	return slices.Contains(numbers, sum)
}

// EvaluateComeOutRoll classifies the first roll of a turn
func EvaluateComeOutRoll(sum int) (ComeOutResult, error) {
	if err := ValidateSum(sum); err != nil {
		return ComeOutResult{}, err
	}

	switch {
	case IsNatural(sum):
		return ComeOutResult{Outcome: ComeOutNatural}, nil
	case IsCraps(sum):
		return ComeOutResult{Outcome: ComeOutCraps}, nil
	default:
		return ComeOutResult{Outcome: ComeOutPoint, PointValue: sum}, nil
	}
}

// EvaluatePointPhaseRoll classifies a point phase roll. Priority is
// crap out, point hit, monster hit, escape offer, miss; a 2 that is still
// on the monster counts as a hit rather than an escape offer.
func EvaluatePointPhaseRoll(sum, point int, remaining []int) (PointPhaseResult, error) {
	if err := ValidateSum(sum); err != nil {
		return PointPhaseResult{}, err
	}
	if !IsPoint(point) {
		return PointPhaseResult{}, fmt.Errorf("%w: %d", ErrInvalidPoint, point)
	}

	switch {
	case IsCrapOut(sum):
		return PointPhaseResult{Outcome: PointPhaseCrapOut}, nil
	case IsPointHit(sum, point):
		return PointPhaseResult{Outcome: PointPhasePointHit}, nil
	case IsMonsterHit(sum, remaining):
		return PointPhaseResult{Outcome: PointPhaseHit, HitNumber: sum}, nil
	case IsEscapeRoll(sum):
		return PointPhaseResult{Outcome: PointPhaseEscapeOffered}, nil
	default:
		return PointPhaseResult{Outcome: PointPhaseMiss}, nil
	}
}
