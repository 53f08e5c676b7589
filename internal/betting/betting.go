// Package betting validates side bets on the shooter and settles them
// against the outcome of a roll. Settlement is pure: it reports gold to
// credit back to each bettor and never touches a player.
package betting

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/gauntlet/internal/common/validation"
	"github.com/KirkDiggler/gauntlet/internal/ledger"
	"github.com/KirkDiggler/gauntlet/internal/models"
)

// Reason names the event a bet was settled against
type Reason string

const (
	ReasonComeOutNatural  Reason = "come_out_natural"
	ReasonComeOutCraps    Reason = "come_out_craps"
	ReasonPointHitBonus   Reason = "point_hit_bonus"
	ReasonMonsterDefeated Reason = "monster_defeated"
	ReasonCrapOut         Reason = "crap_out"
	ReasonEscape          Reason = "escape"
)

// Resolution is the gold credited back to one bettor. The stake was
// debited at placement, so a GoldChange of 0 means the bet was lost.
type Resolution struct {
	PlayerID    string
	OriginalBet models.Bet
	GoldChange  int
	Reason      Reason
}

// Summary totals the gold in play on each side
type Summary struct {
	TotalFor     int
	TotalAgainst int
	TotalBettors int
}

// BetInput describes a bet someone wants to place. Amount is a float so a
// fractional stake is rejected instead of silently truncated.
type BetInput struct {
	Bettor         models.Player
	ActivePlayerID string
	Type           models.BetType
	Amount         float64
	Bets           []models.Bet
}

// ValidateBet applies the betting rules in a fixed order and reports the
// first one broken: no betting on yourself, a positive whole amount no
// larger than the table maximum, enough gold, and one bet per turn.
func ValidateBet(in BetInput) error {
	switch {
	case in.Bettor.ID == in.ActivePlayerID:
		return validation.New("player", "the shooter cannot bet on their own roll")
	case in.Amount <= 0:
		return validation.New("amount", "bet must be greater than zero")
	case in.Amount != math.Trunc(in.Amount):
		return validation.New("amount", "bet must be a whole number of gold")
	case in.Amount > models.MaxBet:
		return validation.New("amount", fmt.Sprintf("bet cannot exceed %d gold", models.MaxBet))
	case !ledger.CanAfford(in.Bettor, int(in.Amount)):
		return validation.New("amount", fmt.Sprintf("not enough gold: have %d, need %d", in.Bettor.Gold, int(in.Amount)))
	case HasBet(in.Bets, in.Bettor.ID):
		return validation.New("player", "already placed a bet this turn")
	case in.Type != models.BetFor && in.Type != models.BetAgainst:
		return validation.New("type", fmt.Sprintf("unknown bet type %q", in.Type))
	}
	return nil
}

// PlaceBet validates the bet and debits the stake from the bettor
func PlaceBet(in BetInput) (models.Bet, ledger.Transaction, error) {
	if err := ValidateBet(in); err != nil {
		return models.Bet{}, ledger.Transaction{}, err
	}
	amount := int(in.Amount)
	tx, err := ledger.RemoveGold(in.Bettor, amount)
	if err != nil {
		return models.Bet{}, ledger.Transaction{}, err
	}
	return models.Bet{
		PlayerID: in.Bettor.ID,
		Type:     in.Type,
		Amount:   amount,
	}, tx, nil
}

// ProcessComeOutNatural returns every stake
func ProcessComeOutNatural(bets []models.Bet) []Resolution {
	return settle(bets, ReasonComeOutNatural, func(b models.Bet) (int, bool) {
		return b.Amount, true
	})
}

// ProcessComeOutCraps pays AGAINST double and keeps FOR stakes
func ProcessComeOutCraps(bets []models.Bet) []Resolution {
	return settle(bets, ReasonComeOutCraps, againstDoubles)
}

// ProcessPointPhaseHit pays each FOR bettor a flat bonus regardless of stake.
// AGAINST bettors get no entry and every bet stays in play.
func ProcessPointPhaseHit(bets []models.Bet) []Resolution {
	return settle(bets, ReasonPointHitBonus, func(b models.Bet) (int, bool) {
		if b.Type != models.BetFor {
			return 0, false
		}
		return models.PointHitBonus, true
	})
}

// ProcessMonsterDefeated returns FOR stakes. AGAINST stakes are lost to the
// shooter, who collects them through CalculateShooterWinnings.
func ProcessMonsterDefeated(bets []models.Bet) []Resolution {
	return settle(bets, ReasonMonsterDefeated, func(b models.Bet) (int, bool) {
		if b.Type == models.BetFor {
			return b.Amount, true
		}
		return 0, true
	})
}

// ProcessCrapOut pays AGAINST double and keeps FOR stakes
func ProcessCrapOut(bets []models.Bet) []Resolution {
	return settle(bets, ReasonCrapOut, againstDoubles)
}

// ProcessEscape returns every stake
func ProcessEscape(bets []models.Bet) []Resolution {
	return settle(bets, ReasonEscape, func(b models.Bet) (int, bool) {
		return b.Amount, true
	})
}

// CalculateShooterWinnings is the AGAINST pool the shooter collects on a kill
func CalculateShooterWinnings(bets []models.Bet) int {
	total := 0
	for _, b := range bets {
		if b.Type == models.BetAgainst {
			total += b.Amount
		}
	}
	return total
}

// GetBetSummary totals both sides of the table
func GetBetSummary(bets []models.Bet) Summary {
	var s Summary
	for _, b := range bets {
		switch b.Type {
		case models.BetFor:
			s.TotalFor += b.Amount
		case models.BetAgainst:
			s.TotalAgainst += b.Amount
		}
	}
	s.TotalBettors = len(bets)
	return s
}

// FindBet returns the bet placed by playerID
func FindBet(bets []models.Bet, playerID string) (models.Bet, bool) {
	for _, b := range bets {
		if b.PlayerID == playerID {
			return b, true
		}
	}
	return models.Bet{}, false
}

// HasBet reports whether playerID already has a bet down
func HasBet(bets []models.Bet, playerID string) bool {
	_, ok := FindBet(bets, playerID)
	return ok
}

// TotalPayout adds up the gold credited by a settlement
func TotalPayout(resolutions []Resolution) int {
	total := 0
	for _, r := range resolutions {
		total += r.GoldChange
	}
	return total
}

func againstDoubles(b models.Bet) (int, bool) {
	if b.Type == models.BetAgainst {
		return b.Amount * 2, true
	}
	return 0, true
}

// settle keeps the input order of bets in its output
func settle(bets []models.Bet, reason Reason, payout func(models.Bet) (int, bool)) []Resolution {
	out := make([]Resolution, 0, len(bets))
	for _, b := range bets {
		change, ok := payout(b)
		if !ok {
			continue
		}
		out = append(out, Resolution{
			PlayerID:    b.PlayerID,
			OriginalBet: b,
			GoldChange:  change,
			Reason:      reason,
		})
	}
	return out
}
