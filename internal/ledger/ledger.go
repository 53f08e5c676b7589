// Package ledger computes gold movements. Nothing here mutates a player;
// every function returns a Transaction the caller commits with Apply.
package ledger

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/gauntlet/internal/models"
)

var (
	// ErrNegativeAmount is returned for any negative gold amount
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInsufficientFunds is returned when a debit exceeds the player's gold
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSelfTransfer is returned when a transfer names the same player twice
	ErrSelfTransfer = errors.New("cannot transfer gold to the same player")
)

// Transaction is the outcome of a single credit or debit
type Transaction struct {
	PlayerID string
	Previous int
	New      int

	// Delta is positive for credits and negative for debits
	Delta int
}

// Transfer pairs the debit and credit of a player-to-player movement
type Transfer struct {
	From Transaction
	To   Transaction
}

// AddGold credits amount to the player
func AddGold(p models.Player, amount int) (Transaction, error) {
	if amount < 0 {
		return Transaction{}, fmt.Errorf("add %d gold to %s: %w", amount, p.ID, ErrNegativeAmount)
	}
	return Transaction{
		PlayerID: p.ID,
		Previous: p.Gold,
		New:      p.Gold + amount,
		Delta:    amount,
	}, nil
}

// RemoveGold debits amount from the player
func RemoveGold(p models.Player, amount int) (Transaction, error) {
	if amount < 0 {
		return Transaction{}, fmt.Errorf("remove %d gold from %s: %w", amount, p.ID, ErrNegativeAmount)
	}
	if amount > p.Gold {
		return Transaction{}, fmt.Errorf("remove %d gold from %s holding %d: %w", amount, p.ID, p.Gold, ErrInsufficientFunds)
	}
	return Transaction{
		PlayerID: p.ID,
		Previous: p.Gold,
		New:      p.Gold - amount,
		Delta:    -amount,
	}, nil
}

// CalculateCrapOutLoss is half the gold, rounded down
func CalculateCrapOutLoss(gold int) int {
	if gold <= 0 {
		return 0
	}
	return gold * models.CrapOutPenaltyPercent / 100
}

// ApplyCrapOutPenalty debits the crap out loss. It cannot fail.
func ApplyCrapOutPenalty(p models.Player) Transaction {
	loss := CalculateCrapOutLoss(p.Gold)
	return Transaction{
		PlayerID: p.ID,
		Previous: p.Gold,
		New:      p.Gold - loss,
		Delta:    -loss,
	}
}

// TransferGold moves amount from one player to another. If the debit fails
// nothing is credited.
func TransferGold(from, to models.Player, amount int) (Transfer, error) {
	if from.ID == to.ID {
		return Transfer{}, fmt.Errorf("transfer from %s: %w", from.ID, ErrSelfTransfer)
	}

	debit, err := RemoveGold(from, amount)
	if err != nil {
		return Transfer{}, err
	}
	credit, err := AddGold(to, amount)
	if err != nil {
		return Transfer{}, err
	}
	return Transfer{From: debit, To: credit}, nil
}

// CanAfford reports whether the player holds at least cost gold
func CanAfford(p models.Player, cost int) bool {
	return p.Gold >= cost
}

// Apply commits a transaction onto a copy of the player
func Apply(p models.Player, tx Transaction) models.Player {
	out := p.Clone()
	out.Gold = tx.New
	return out
}
