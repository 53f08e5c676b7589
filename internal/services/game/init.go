package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/gauntlet/internal/cards"
	"github.com/KirkDiggler/gauntlet/internal/catalog"
	"github.com/KirkDiggler/gauntlet/internal/common/uuid"
	"github.com/KirkDiggler/gauntlet/internal/common/validation"
	"github.com/KirkDiggler/gauntlet/internal/dice"
	"github.com/KirkDiggler/gauntlet/internal/market"
	"github.com/KirkDiggler/gauntlet/internal/models"
	"github.com/KirkDiggler/gauntlet/internal/monsters"
)

// ValidatePlayerNames checks the seat count and every name. All problems
// are reported together; per-name errors carry the seat index.
func ValidatePlayerNames(names []string) error {
	var errs validation.Errors

	if len(names) < models.MinPlayers || len(names) > models.MaxPlayers {
		errs = append(errs, validation.New("players",
			fmt.Sprintf("need between %d and %d players, got %d", models.MinPlayers, models.MaxPlayers, len(names))))
	}

	seen := make(map[string]int)
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			errs = append(errs, validation.ForPlayer(i, "name", "name cannot be empty"))
			continue
		}
		key := strings.ToLower(name)
		if first, ok := seen[key]; ok {
			errs = append(errs, validation.ForPlayer(i, "name",
				fmt.Sprintf("%q is already taken by player %d", name, first+1)))
			continue
		}
		seen[key] = i
	}

	return errs.OrNil()
}

// InitializeGame builds a ready to play game: seated players with starting
// gold, the full gauntlet, a shuffled deck and a dealt marketplace
func InitializeGame(names []string, ids uuid.UUID, src dice.Source, now time.Time) (*models.GameState, error) {
	if err := ValidatePlayerNames(names); err != nil {
		return nil, err
	}

	gauntlet, err := monsters.CreateGauntlet()
	if err != nil {
		return nil, fmt.Errorf("building gauntlet: %w", err)
	}

	players := make([]models.Player, len(names))
	for i, name := range names {
		players[i] = models.Player{
			ID:   ids.NewUUID(),
			Name: strings.TrimSpace(name),
			Gold: models.StartingGold,
		}
	}

	deck := cards.Shuffle(cards.BuildDeck(catalog.Default().CardTemplates(), ids), src)
	offer, rest := market.Deal(deck)

	return &models.GameState{
		ID:          ids.NewUUID(),
		Players:     players,
		Monsters:    gauntlet,
		TurnState:   models.NewTurnState(players[0].ID, false),
		Marketplace: offer,
		CardDeck:    rest,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
