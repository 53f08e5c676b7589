package game

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gauntlet/internal/betting"
	"github.com/KirkDiggler/gauntlet/internal/cards"
	"github.com/KirkDiggler/gauntlet/internal/dice"
	"github.com/KirkDiggler/gauntlet/internal/models"
	"github.com/KirkDiggler/gauntlet/internal/monsters"
)

// RollComeOut rolls the first roll of the turn
func (s *service) RollComeOut(ctx context.Context, input *RollComeOutInput) (*RollComeOutOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var out *RollComeOutOutput
	state, err := s.update(ctx, input.GameID, func(state *models.GameState) (*models.GameState, error) {
		next, res, err := s.rollComeOut(ctx, state)
		out = res
		return next, err
	})
	if err != nil {
		return nil, err
	}
	out.State = state
	return out, nil
}

// RollPoint rolls once in the point phase
func (s *service) RollPoint(ctx context.Context, input *RollPointInput) (*RollPointOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var out *RollPointOutput
	state, err := s.update(ctx, input.GameID, func(state *models.GameState) (*models.GameState, error) {
		next, res, err := s.rollPoint(ctx, state)
		out = res
		return next, err
	})
	if err != nil {
		return nil, err
	}
	out.State = state
	return out, nil
}

// ResolvePointChoice crosses off the number chosen after a point hit
func (s *service) ResolvePointChoice(ctx context.Context, input *ResolvePointChoiceInput) (*ResolvePointChoiceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var reason models.TurnEndReason
	state, err := s.update(ctx, input.GameID, func(state *models.GameState) (*models.GameState, error) {
		next, r, err := s.resolvePointChoice(state, input.Number)
		reason = r
		return next, err
	})
	if err != nil {
		return nil, err
	}
	return &ResolvePointChoiceOutput{
		State:           state,
		MonsterDefeated: reason == models.TurnEndDefeated,
		TurnEnded:       reason != "",
	}, nil
}

// ResolveEscape answers the escape offer
func (s *service) ResolveEscape(ctx context.Context, input *ResolveEscapeInput) (*ResolveEscapeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var reason models.TurnEndReason
	state, err := s.update(ctx, input.GameID, func(state *models.GameState) (*models.GameState, error) {
		next, r, err := s.resolveEscape(state, input.Escape)
		reason = r
		return next, err
	})
	if err != nil {
		return nil, err
	}
	return &ResolveEscapeOutput{State: state, TurnEnded: reason != ""}, nil
}

// ResolveRevive answers the revive offer
func (s *service) ResolveRevive(ctx context.Context, input *ResolveReviveInput) (*ResolveReviveOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var (
		reason    models.TurnEndReason
		discarded []models.Card
	)
	state, err := s.update(ctx, input.GameID, func(state *models.GameState) (*models.GameState, error) {
		next, d, r, err := s.resolveRevive(state, input.Revive)
		discarded, reason = d, r
		return next, err
	})
	if err != nil {
		return nil, err
	}
	return &ResolveReviveOutput{State: state, TurnEnded: reason != "", Discarded: discarded}, nil
}

// PlayTurn plays the current turn to its end. Any shopping or betting
// phase still open is closed as is; every choice goes to the decider.
// Each roll and decision is saved as soon as it resolves, so an error part
// way through leaves every completed step in place.
func (s *service) PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Decider == nil {
		return nil, ErrNilDecider
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	if state.IsGameOver {
		return nil, ErrGameOver
	}
	if state.TurnState.Phase != models.PhaseComeOutRoll && state.TurnState.Phase != models.PhasePointPhase {
		if state, err = s.closePreRollPhases(state); err != nil {
			return nil, err
		}
		if err = s.save(ctx, state); err != nil {
			return nil, err
		}
	}

	var (
		rolls  [][]int
		reason models.TurnEndReason
	)
	for reason == "" {
		next, rolled, r, err := s.playStep(ctx, state, input.Decider)
		if err != nil {
			return nil, err
		}
		if err := s.save(ctx, next); err != nil {
			return nil, err
		}
		if rolled != nil {
			rolls = append(rolls, rolled)
		}
		state, reason = next, r
	}
	return &PlayTurnOutput{State: state, Rolls: rolls, EndReason: reason}, nil
}

// playStep answers the pending decision or makes the next roll
func (s *service) playStep(ctx context.Context, state *models.GameState, decider Decider) (*models.GameState, []int, models.TurnEndReason, error) {
	ts := state.TurnState
	switch {
	case ts.PendingDecision == models.DecisionPointNumber:
		m, _ := state.CurrentMonster()
		n := decider.ChoosePointNumber(state.Clone(), slices.Clone(m.RemainingNumbers))
		next, reason, err := s.resolvePointChoice(state, n)
		return next, nil, reason, err

	case ts.PendingDecision == models.DecisionEscape:
		next, reason, err := s.resolveEscape(state, decider.ChooseEscape(state.Clone()))
		return next, nil, reason, err

	case ts.PendingDecision == models.DecisionRevive:
		next, _, reason, err := s.resolveRevive(state, decider.ChooseRevive(state.Clone()))
		return next, nil, reason, err

	case ts.Phase == models.PhaseComeOutRoll:
		next, res, err := s.rollComeOut(ctx, state)
		if err != nil {
			return nil, nil, "", err
		}
		return next, res.Dice, res.EndReason, nil

	case ts.Phase == models.PhasePointPhase:
		next, res, err := s.rollPoint(ctx, state)
		if err != nil {
			return nil, nil, "", err
		}
		return next, res.Dice, res.EndReason, nil
	}
	return nil, nil, "", fmt.Errorf("%w: cannot play from %s", ErrInvalidPhase, ts.Phase)
}

// closePreRollPhases walks a turn that has not started rolling up to the
// come-out roll without buying or betting anything
func (s *service) closePreRollPhases(state *models.GameState) (*models.GameState, error) {
	var err error
	for {
		switch state.TurnState.Phase {
		case models.PhaseMarketplaceRefresh:
			state, err = Reduce(state, SetPhase{Phase: models.PhaseMarketPurchase})
		case models.PhaseMarketPurchase:
			state, err = Reduce(state, SetPhase{Phase: models.PhaseCardReveal})
		case models.PhaseCardReveal:
			state, err = Reduce(state, SetPhase{Phase: models.PhaseBetting})
		case models.PhaseBetting:
			state, err = s.startRolling(state)
		default:
			return state, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (s *service) rollComeOut(ctx context.Context, state *models.GameState) (*models.GameState, *RollComeOutOutput, error) {
	if err := checkPhase(state, models.PhaseComeOutRoll); err != nil {
		return nil, nil, err
	}
	rolled, err := s.roll(ctx)
	if err != nil {
		return nil, nil, err
	}
	sum := dice.SumDice(rolled)
	result, err := dice.EvaluateComeOutRoll(sum)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("come-out roll",
		zap.String("game_id", state.ID),
		zap.String("player_id", state.TurnState.ActivePlayerID),
		zap.Ints("dice", rolled),
		zap.Int("sum", sum),
		zap.String("outcome", string(result.Outcome)))

	state, err = Reduce(state, IncrementRollCount{Dice: rolled})
	if err != nil {
		return nil, nil, err
	}

	out := &RollComeOutOutput{Dice: rolled, Sum: sum, Outcome: result.Outcome}
	switch result.Outcome {
	case dice.ComeOutNatural:
		state, out.EndReason, err = s.defeatMonster(state, betting.ProcessComeOutNatural(state.Bets), 0)

	case dice.ComeOutCraps:
		state, err = s.settle(state, betting.ProcessComeOutCraps(state.Bets))
		if err == nil {
			state, err = s.penalize(state)
		}
		if err == nil {
			state, out.EndReason, err = s.endTurn(state, models.TurnEndCrappedOut)
		}

	case dice.ComeOutPoint:
		state, err = reduceAll(state,
			SetPoint{Point: result.PointValue},
			SetPhase{Phase: models.PhasePointPhase})
	}
	if err != nil {
		return nil, nil, err
	}
	out.TurnEnded = out.EndReason != ""
	return state, out, nil
}

func (s *service) rollPoint(ctx context.Context, state *models.GameState) (*models.GameState, *RollPointOutput, error) {
	if err := checkPhase(state, models.PhasePointPhase); err != nil {
		return nil, nil, err
	}
	monster, ok := state.CurrentMonster()
	if !ok {
		return nil, nil, fmt.Errorf("roll on monster %d: %w", state.CurrentMonsterIndex, monsters.ErrInvalidPosition)
	}

	rolled, err := s.roll(ctx)
	if err != nil {
		return nil, nil, err
	}
	sum := dice.SumDice(rolled)
	result, err := dice.EvaluatePointPhaseRoll(sum, state.TurnState.Point, monster.RemainingNumbers)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("point phase roll",
		zap.String("game_id", state.ID),
		zap.String("player_id", state.TurnState.ActivePlayerID),
		zap.Ints("dice", rolled),
		zap.Int("sum", sum),
		zap.Int("point", state.TurnState.Point),
		zap.String("outcome", string(result.Outcome)))

	state, err = Reduce(state, IncrementRollCount{Dice: rolled})
	if err != nil {
		return nil, nil, err
	}

	out := &RollPointOutput{Dice: rolled, Sum: sum, Outcome: result.Outcome}
	switch result.Outcome {
	case dice.PointPhaseCrapOut:
		state, out.EndReason, err = s.crapOut(state)

	case dice.PointPhasePointHit:
		out.Pending = models.DecisionPointNumber
		state, err = Reduce(state, SetPendingDecision{Decision: out.Pending})

	case dice.PointPhaseHit:
		state, out.EndReason, err = s.hitMonster(state, result.HitNumber)

	case dice.PointPhaseEscapeOffered:
		out.Pending = models.DecisionEscape
		state, err = Reduce(state, SetPendingDecision{Decision: out.Pending})

	case dice.PointPhaseMiss:
	}
	if err != nil {
		return nil, nil, err
	}
	if out.Pending == models.DecisionNone && out.EndReason == "" {
		out.Pending = state.TurnState.PendingDecision
	}
	out.TurnEnded = out.EndReason != ""
	return state, out, nil
}

// hitMonster pays the FOR bettors their per-hit bonus, adds turn damage and
// crosses the number off. Clearing the last number defeats the monster.
func (s *service) hitMonster(state *models.GameState, number int) (*models.GameState, models.TurnEndReason, error) {
	state, err := payout(state, betting.ProcessPointPhaseHit(state.Bets))
	if err != nil {
		return nil, "", err
	}
	state, err = reduceAll(state, AddTurnDamage{Amount: 1}, HitMonsterNumber{Number: number})
	if err != nil {
		return nil, "", err
	}
	return s.afterHit(state)
}

func (s *service) afterHit(state *models.GameState) (*models.GameState, models.TurnEndReason, error) {
	m, ok := state.CurrentMonster()
	if !ok || !monsters.IsDefeated(m) {
		return state, "", nil
	}
	return s.defeatMonster(state,
		betting.ProcessMonsterDefeated(state.Bets),
		betting.CalculateShooterWinnings(state.Bets))
}

// crapOut settles the bets, takes the penalty and rolls the monster back.
// The shooter is offered a revive when one is available.
func (s *service) crapOut(state *models.GameState) (*models.GameState, models.TurnEndReason, error) {
	state, err := s.settle(state, betting.ProcessCrapOut(state.Bets))
	if err != nil {
		return nil, "", err
	}
	state, err = s.penalize(state)
	if err != nil {
		return nil, "", err
	}
	state, err = reduceAll(state, ResetMonsterToSnapshot{}, ResetTurnDamage{})
	if err != nil {
		return nil, "", err
	}

	if canRevive(state) {
		state, err = Reduce(state, SetPendingDecision{Decision: models.DecisionRevive})
		return state, "", err
	}
	return s.endTurn(state, models.TurnEndCrappedOut)
}

// canRevive reports whether the shooter may discard their hand to continue
func canRevive(state *models.GameState) bool {
	if state.TurnState.HasUsedRevive {
		return false
	}
	shooter, ok := state.ActivePlayer()
	return ok && shooter.CardCount() > 0
}

func (s *service) resolvePointChoice(state *models.GameState, number int) (*models.GameState, models.TurnEndReason, error) {
	if err := checkDecision(state, models.DecisionPointNumber); err != nil {
		return nil, "", err
	}
	state, err := reduceAll(state,
		HitMonsterNumber{Number: number},
		AddTurnDamage{Amount: 1},
		SetPendingDecision{Decision: models.DecisionNone})
	if err != nil {
		return nil, "", err
	}

	s.logger.Debug("point number removed",
		zap.String("game_id", state.ID),
		zap.Int("number", number))

	return s.afterHit(state)
}

func (s *service) resolveEscape(state *models.GameState, escape bool) (*models.GameState, models.TurnEndReason, error) {
	if err := checkDecision(state, models.DecisionEscape); err != nil {
		return nil, "", err
	}
	if !escape {
		state, err := Reduce(state, SetPendingDecision{Decision: models.DecisionNone})
		return state, "", err
	}

	state, err := s.settle(state, betting.ProcessEscape(state.Bets))
	if err != nil {
		return nil, "", err
	}
	state, err = Reduce(state, ResetTurnDamage{})
	if err != nil {
		return nil, "", err
	}
	return s.endTurn(state, models.TurnEndEscaped)
}

func (s *service) resolveRevive(state *models.GameState, revive bool) (*models.GameState, []models.Card, models.TurnEndReason, error) {
	if err := checkDecision(state, models.DecisionRevive); err != nil {
		return nil, nil, "", err
	}
	if !revive {
		state, reason, err := s.endTurn(state, models.TurnEndCrappedOut)
		return state, nil, reason, err
	}

	shooter, err := activePlayer(state)
	if err != nil {
		return nil, nil, "", err
	}
	discard := cards.DiscardHand(shooter)
	shooter.PermanentCards = discard.PermanentCards
	shooter.SingleUseCards = discard.SingleUseCards

	state, err = reduceAll(state,
		UpdatePlayer{Player: shooter},
		SetReviveFlag{Used: true},
		ResetTurnDamage{},
		SetPendingDecision{Decision: models.DecisionNone})
	if err != nil {
		return nil, nil, "", err
	}

	discarded := append(discard.DiscardedPermanent, discard.DiscardedSingleUse...)
	s.logger.Info("shooter revived",
		zap.String("game_id", state.ID),
		zap.String("player_id", shooter.ID),
		zap.Int("discarded", len(discarded)))
	return state, discarded, "", nil
}
