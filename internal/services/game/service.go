package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gauntlet/internal/common/clock"
	"github.com/KirkDiggler/gauntlet/internal/common/uuid"
	"github.com/KirkDiggler/gauntlet/internal/dice"
	"github.com/KirkDiggler/gauntlet/internal/models"
	gameRepo "github.com/KirkDiggler/gauntlet/internal/repositories/game"
)

// service implements the Service interface. Every operation loads the
// game's snapshot, reduces it and saves the result, one operation at a time.
type service struct {
	mu sync.Mutex

	repo          gameRepo.Repository
	diceRoller    dice.Roller
	deckSource    dice.Source
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *zap.Logger
	rollDelay     time.Duration
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.DeckSource == nil {
		return nil, ErrNilDeckSource
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		repo:          cfg.Repository,
		diceRoller:    cfg.DiceRoller,
		deckSource:    cfg.DeckSource,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
		rollDelay:     cfg.RollDelay,
	}, nil
}

// NewGame seats the players and deals a new game
func (s *service) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	built, err := InitializeGame(input.PlayerNames, s.uuidGenerator, s.deckSource, s.clock.Now())
	if err != nil {
		return nil, err
	}
	state, err := Reduce(nil, Initialize{State: built})
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	s.logger.Info("game created",
		zap.String("game_id", state.ID),
		zap.Int("players", len(state.Players)),
		zap.Int("deck", len(state.CardDeck)))

	return &NewGameOutput{State: state}, nil
}

// GetState returns the current snapshot of a game
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	state, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	return &GetStateOutput{State: state}, nil
}

// ResetGame throws a game away
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	if _, err := Reduce(state, ResetGame{}); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteState(ctx, &gameRepo.DeleteStateInput{GameID: input.GameID}); err != nil {
		return nil, fmt.Errorf("failed to delete game %s: %w", input.GameID, err)
	}

	s.logger.Info("game reset", zap.String("game_id", input.GameID))
	return &ResetGameOutput{}, nil
}

// update runs fn against the stored snapshot and saves what it returns
func (s *service) update(ctx context.Context, gameID string, fn func(*models.GameState) (*models.GameState, error)) (*models.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, gameID)
	if err != nil {
		return nil, err
	}
	next, err := fn(state)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *service) load(ctx context.Context, gameID string) (*models.GameState, error) {
	state, err := s.repo.GetState(ctx, &gameRepo.GetStateInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game %s: %w", gameID, err)
	}
	return state, nil
}

// save stores a result that has already been decided. Cancelling ctx after
// that point does not stop the result from being kept.
func (s *service) save(ctx context.Context, state *models.GameState) error {
	state.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveState(context.WithoutCancel(ctx), &gameRepo.SaveStateInput{State: state}); err != nil {
		return fmt.Errorf("failed to save game %s: %w", state.ID, err)
	}
	return nil
}

// roll waits out the roll delay and rolls the shooter's dice. Once the
// dice are thrown the roll always completes.
func (s *service) roll(ctx context.Context) ([]int, error) {
	if s.rollDelay > 0 {
		timer := time.NewTimer(s.rollDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dice.RollDice(s.diceRoller, dice.Count), nil
}
