package game

import (
	"context"
	"errors"

	"github.com/KirkDiggler/gauntlet/internal/models"
)

// GetActivePlayer returns the shooter, or nil
func GetActivePlayer(state *models.GameState) *models.Player {
	p, ok := state.ActivePlayer()
	if !ok {
		return nil
	}
	c := p.Clone()
	return &c
}

// GetCurrentMonster returns the monster being fought, or nil
func GetCurrentMonster(state *models.GameState) *models.Monster {
	m, ok := state.CurrentMonster()
	if !ok {
		return nil
	}
	c := m.Clone()
	return &c
}

// GetPlayerByID returns the seated player with id, or nil
func GetPlayerByID(state *models.GameState, id string) *models.Player {
	p, ok := state.PlayerByID(id)
	if !ok {
		return nil
	}
	c := p.Clone()
	return &c
}

// GetActivePlayer returns the shooter
func (s *service) GetActivePlayer(ctx context.Context, input *GetActivePlayerInput) (*GetActivePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	state, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	return &GetActivePlayerOutput{Player: GetActivePlayer(state)}, nil
}

// GetCurrentMonster returns the monster being fought
func (s *service) GetCurrentMonster(ctx context.Context, input *GetCurrentMonsterInput) (*GetCurrentMonsterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	state, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	return &GetCurrentMonsterOutput{Monster: GetCurrentMonster(state)}, nil
}

// GetPlayerByID looks up a seated player
func (s *service) GetPlayerByID(ctx context.Context, input *GetPlayerByIDInput) (*GetPlayerByIDOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	state, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	return &GetPlayerByIDOutput{Player: GetPlayerByID(state, input.PlayerID)}, nil
}
