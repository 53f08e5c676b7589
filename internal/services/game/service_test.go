package game

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/gauntlet/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/gauntlet/internal/common/uuid/mocks"
	"github.com/KirkDiggler/gauntlet/internal/common/validation"
	"github.com/KirkDiggler/gauntlet/internal/dice"
	diceMocks "github.com/KirkDiggler/gauntlet/internal/dice/mocks"
	"github.com/KirkDiggler/gauntlet/internal/models"
	"github.com/KirkDiggler/gauntlet/internal/monsters"
	gameRepo "github.com/KirkDiggler/gauntlet/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/gauntlet/internal/repositories/game/mocks"
	deciderMocks "github.com/KirkDiggler/gauntlet/internal/services/game/mocks"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	mockDecider    *deciderMocks.MockDecider
	repo           gameRepo.Repository
	gameService    *service
	ctx            context.Context

	testTime time.Time

	// Set by startGame
	gameID  string
	aliceID string
	bobID   string

	rerollCard models.Card
	ironWill   models.Card
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockDecider = deciderMocks.NewMockDecider(s.mockCtrl)
	s.repo = gameRepo.NewMemory()
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	next := 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		next++
		return fmt.Sprintf("id-%d", next)
	}).AnyTimes()

	svc, err := New(&Config{
		Repository:    s.repo,
		DiceRoller:    s.mockDiceRoller,
		DeckSource:    dice.New(&dice.Config{Seed: 42}),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.gameService = svc

	s.rerollCard = models.Card{ID: "drawn-reroll", Name: "Loaded Reroll", Kind: models.CardKindSingleUse, Effect: models.EffectReroll, Cost: 2}
	s.ironWill = models.Card{ID: "held-iron-will", Name: "Iron Will", Kind: models.CardKindPermanent, Effect: models.EffectIronWill, Cost: 5}
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// startGame seats Alice and Bob and pins the first monster and the top of
// the deck so rewards are predictable
func (s *GameServiceTestSuite) startGame() *models.GameState {
	out, err := s.gameService.NewGame(s.ctx, &NewGameInput{PlayerNames: []string{"Alice", "Bob"}})
	s.Require().NoError(err)
	s.gameID = out.State.ID
	s.aliceID = out.State.Players[0].ID
	s.bobID = out.State.Players[1].ID

	return s.mutate(func(state *models.GameState) {
		state.Monsters[0].NumbersToHit = []int{6, 8}
		state.Monsters[0].RemainingNumbers = []int{6, 8}
		state.Monsters[0].Points = 1
		state.Monsters[0].GoldReward = 2
		state.CardDeck = append([]models.Card{s.rerollCard}, state.CardDeck...)
	})
}

func (s *GameServiceTestSuite) mutate(fn func(*models.GameState)) *models.GameState {
	state, err := s.repo.GetState(s.ctx, &gameRepo.GetStateInput{GameID: s.gameID})
	s.Require().NoError(err)
	fn(state)
	s.Require().NoError(s.repo.SaveState(s.ctx, &gameRepo.SaveStateInput{State: state}))
	return state
}

func (s *GameServiceTestSuite) state() *models.GameState {
	out, err := s.gameService.GetState(s.ctx, &GetStateInput{GameID: s.gameID})
	s.Require().NoError(err)
	return out.State
}

func (s *GameServiceTestSuite) player(state *models.GameState, id string) models.Player {
	p, ok := state.PlayerByID(id)
	s.Require().True(ok)
	return p
}

// toBetting walks the current turn to the betting phase without shopping
func (s *GameServiceTestSuite) toBetting() {
	_, err := s.gameService.SkipRefresh(s.ctx, &SkipRefreshInput{GameID: s.gameID})
	s.Require().NoError(err)
	_, err = s.gameService.FinishShopping(s.ctx, &FinishShoppingInput{GameID: s.gameID})
	s.Require().NoError(err)
	_, err = s.gameService.RevealCards(s.ctx, &RevealCardsInput{GameID: s.gameID})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) startRolling() {
	_, err := s.gameService.StartRolling(s.ctx, &StartRollingInput{GameID: s.gameID})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) bet(playerID string, betType models.BetType, amount float64) {
	_, err := s.gameService.PlaceBet(s.ctx, &PlaceBetInput{GameID: s.gameID, PlayerID: playerID, Type: betType, Amount: amount})
	s.Require().NoError(err)
}

// expectRolls scripts the dice, two per roll
func (s *GameServiceTestSuite) expectRolls(rolls ...[2]int) {
	calls := make([]any, 0, len(rolls)*2)
	for _, r := range rolls {
		calls = append(calls,
			s.mockDiceRoller.EXPECT().Roll(dice.Sides).Return(r[0]),
			s.mockDiceRoller.EXPECT().Roll(dice.Sides).Return(r[1]))
	}
	gomock.InOrder(calls...)
}

func (s *GameServiceTestSuite) rollComeOut() *RollComeOutOutput {
	out, err := s.gameService.RollComeOut(s.ctx, &RollComeOutInput{GameID: s.gameID})
	s.Require().NoError(err)
	return out
}

func (s *GameServiceTestSuite) rollPoint() *RollPointOutput {
	out, err := s.gameService.RollPoint(s.ctx, &RollPointInput{GameID: s.gameID})
	s.Require().NoError(err)
	return out
}

func (s *GameServiceTestSuite) TestNew_RequiresDependencies() {
	base := Config{
		Repository:    s.repo,
		DiceRoller:    s.mockDiceRoller,
		DeckSource:    dice.New(nil),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	}

	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	for _, tc := range []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"repository", func(c *Config) { c.Repository = nil }, ErrNilGameRepo},
		{"dice roller", func(c *Config) { c.DiceRoller = nil }, ErrNilDiceRoller},
		{"deck source", func(c *Config) { c.DeckSource = nil }, ErrNilDeckSource},
		{"clock", func(c *Config) { c.Clock = nil }, ErrNilClock},
		{"uuid", func(c *Config) { c.UUIDGenerator = nil }, ErrNilUUIDGenerator},
	} {
		s.Run(tc.name, func() {
			cfg := base
			tc.modify(&cfg)
			_, err := New(&cfg)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *GameServiceTestSuite) TestNewGame_InitialState() {
	out, err := s.gameService.NewGame(s.ctx, &NewGameInput{PlayerNames: []string{" Alice ", "Bob"}})
	s.Require().NoError(err)
	state := out.State

	s.Len(state.Players, 2)
	s.Equal("Alice", state.Players[0].Name)
	for _, p := range state.Players {
		s.Equal(models.StartingGold, p.Gold)
		s.Zero(p.VictoryPoints)
		s.Zero(p.DamageCount)
	}
	s.Equal(0, state.CurrentPlayerIndex)
	s.Len(state.Monsters, models.MonsterCount)
	s.Len(state.Marketplace, models.MarketplaceSize)
	s.Len(state.CardDeck, 42-models.MarketplaceSize)
	s.Equal(models.PhaseMarketplaceRefresh, state.TurnState.Phase)
	s.Equal(state.Players[0].ID, state.TurnState.ActivePlayerID)
	s.Equal(s.testTime, state.CreatedAt)

	stored, err := s.gameService.GetState(s.ctx, &GetStateInput{GameID: state.ID})
	s.Require().NoError(err)
	s.Equal(state, stored.State)
}

func (s *GameServiceTestSuite) TestNewGame_RejectsBadNames() {
	_, err := s.gameService.NewGame(s.ctx, &NewGameInput{PlayerNames: []string{"Alice", "  ", "ALICE"}})
	s.Require().Error(err)

	var errs validation.Errors
	s.Require().ErrorAs(err, &errs)
	s.Require().Len(errs, 2)
	s.Equal(1, *errs[0].PlayerIndex)
	s.Equal(2, *errs[1].PlayerIndex)

	_, err = s.gameService.NewGame(s.ctx, &NewGameInput{PlayerNames: []string{"Solo"}})
	s.True(validation.IsValidation(err))
}

func (s *GameServiceTestSuite) TestNaturalOnComeOut_DefeatsMonsterAndRotates() {
	s.startGame()
	s.toBetting()

	_, err := s.gameService.PlaceBet(s.ctx, &PlaceBetInput{GameID: s.gameID, PlayerID: s.aliceID, Type: models.BetFor, Amount: 1})
	s.True(validation.IsValidation(err), "the shooter cannot bet")

	s.bet(s.bobID, models.BetFor, 2)
	s.Equal(2, s.player(s.state(), s.bobID).Gold)

	s.startRolling()
	s.expectRolls([2]int{3, 4})
	out := s.rollComeOut()

	s.Equal(dice.ComeOutNatural, out.Outcome)
	s.True(out.TurnEnded)
	s.Equal(models.TurnEndDefeated, out.EndReason)

	state := out.State
	bob := s.player(state, s.bobID)
	s.Equal(4, bob.Gold)

	alice := s.player(state, s.aliceID)
	s.Equal(6, alice.Gold)
	s.Equal(1, alice.VictoryPoints)
	s.Equal([]models.Card{s.rerollCard}, alice.SingleUseCards)

	s.True(monsters.IsDefeated(state.Monsters[0]))
	s.Equal(1, state.CurrentMonsterIndex)
	s.Equal(1, state.CurrentPlayerIndex)
	s.Equal(s.bobID, state.TurnState.ActivePlayerID)
	s.Equal(models.PhaseMarketplaceRefresh, state.TurnState.Phase)
	s.Empty(state.Bets)
	s.False(state.IsGameOver)
}

func (s *GameServiceTestSuite) TestCrapsOnComeOut() {
	s.startGame()
	s.mutate(func(state *models.GameState) { state.Players[0].Gold = 7 })
	s.toBetting()
	s.bet(s.bobID, models.BetAgainst, 2)
	s.startRolling()

	s.expectRolls([2]int{1, 1})
	out := s.rollComeOut()

	s.Equal(dice.ComeOutCraps, out.Outcome)
	s.Equal(models.TurnEndCrappedOut, out.EndReason)
	s.Equal(6, s.player(out.State, s.bobID).Gold)
	s.Equal(4, s.player(out.State, s.aliceID).Gold)
	s.Equal([]int{6, 8}, out.State.Monsters[0].RemainingNumbers)
	s.Equal(s.bobID, out.State.TurnState.ActivePlayerID)
}

func (s *GameServiceTestSuite) TestPointPhase_HitsDefeatMonster() {
	s.startGame()
	s.toBetting()
	s.bet(s.bobID, models.BetFor, 3)
	s.startRolling()

	s.expectRolls([2]int{1, 3}, [2]int{3, 3}, [2]int{4, 4})

	comeOut := s.rollComeOut()
	s.Equal(dice.ComeOutPoint, comeOut.Outcome)
	s.Equal(4, comeOut.State.TurnState.Point)
	s.Equal(models.PhasePointPhase, comeOut.State.TurnState.Phase)

	hit := s.rollPoint()
	s.Equal(dice.PointPhaseHit, hit.Outcome)
	s.False(hit.TurnEnded)
	s.Equal(2, s.player(hit.State, s.bobID).Gold, "per-hit bonus")
	s.Equal(1, hit.State.TurnState.TurnDamage)
	s.Equal([]int{8}, hit.State.Monsters[0].RemainingNumbers)
	s.Len(hit.State.Bets, 1, "bonuses leave the bet in play")

	last := s.rollPoint()
	s.Equal(dice.PointPhaseHit, last.Outcome)
	s.True(last.TurnEnded)
	s.Equal(models.TurnEndDefeated, last.EndReason)

	state := last.State
	s.Equal(6, s.player(state, s.bobID).Gold)
	alice := s.player(state, s.aliceID)
	s.Equal(6, alice.Gold)
	s.Equal(2, alice.DamageCount)
	s.Equal(s.aliceID, state.DamageLeaderID)
	s.Zero(state.TurnState.RollCount, "turn state was reset for Bob")
	s.Equal(1, state.CurrentMonsterIndex)
}

func (s *GameServiceTestSuite) TestPointHit_ShooterChoosesAndCollectsAgainstPool() {
	s.startGame()
	s.toBetting()
	s.bet(s.bobID, models.BetAgainst, 2)
	s.startRolling()

	s.expectRolls([2]int{5, 3}, [2]int{4, 4}, [2]int{2, 6})
	s.rollComeOut()

	first := s.rollPoint()
	s.Equal(dice.PointPhasePointHit, first.Outcome)
	s.Equal(models.DecisionPointNumber, first.Pending)

	_, err := s.gameService.RollPoint(s.ctx, &RollPointInput{GameID: s.gameID})
	s.ErrorIs(err, ErrDecisionPending)

	_, err = s.gameService.ResolvePointChoice(s.ctx, &ResolvePointChoiceInput{GameID: s.gameID, Number: 9})
	s.ErrorIs(err, monsters.ErrNumberNotRemaining)

	choice, err := s.gameService.ResolvePointChoice(s.ctx, &ResolvePointChoiceInput{GameID: s.gameID, Number: 6})
	s.Require().NoError(err)
	s.False(choice.TurnEnded)
	s.Equal([]int{8}, choice.State.Monsters[0].RemainingNumbers)

	second := s.rollPoint()
	s.Equal(dice.PointPhasePointHit, second.Outcome)

	choice, err = s.gameService.ResolvePointChoice(s.ctx, &ResolvePointChoiceInput{GameID: s.gameID, Number: 8})
	s.Require().NoError(err)
	s.True(choice.MonsterDefeated)
	s.True(choice.TurnEnded)

	alice := s.player(choice.State, s.aliceID)
	s.Equal(8, alice.Gold, "reward plus the AGAINST pool")
	s.Equal(2, alice.DamageCount)
	s.Equal(2, s.player(choice.State, s.bobID).Gold)
}

func (s *GameServiceTestSuite) TestCrapOut_RollsBackAndRevives() {
	s.startGame()
	s.mutate(func(state *models.GameState) {
		state.Players[0].Gold = 9
		state.Players[0].PermanentCards = []models.Card{s.ironWill}
	})
	s.toBetting()
	s.startRolling()

	s.expectRolls([2]int{2, 2}, [2]int{3, 3}, [2]int{3, 4}, [2]int{4, 3})
	s.rollComeOut()
	s.rollPoint()

	crap := s.rollPoint()
	s.Equal(dice.PointPhaseCrapOut, crap.Outcome)
	s.False(crap.TurnEnded)
	s.Equal(models.DecisionRevive, crap.Pending)
	s.Equal(5, s.player(crap.State, s.aliceID).Gold)
	s.Equal([]int{6, 8}, crap.State.Monsters[0].RemainingNumbers, "hits this turn are void")
	s.Zero(crap.State.TurnState.TurnDamage)

	_, err := s.gameService.ResolveEscape(s.ctx, &ResolveEscapeInput{GameID: s.gameID, Escape: true})
	s.ErrorIs(err, ErrNoDecisionPending)

	revived, err := s.gameService.ResolveRevive(s.ctx, &ResolveReviveInput{GameID: s.gameID, Revive: true})
	s.Require().NoError(err)
	s.False(revived.TurnEnded)
	s.Equal([]models.Card{s.ironWill}, revived.Discarded)
	s.Zero(s.player(revived.State, s.aliceID).CardCount())
	s.True(revived.State.TurnState.HasUsedRevive)
	s.Equal(models.PhasePointPhase, revived.State.TurnState.Phase)

	again := s.rollPoint()
	s.True(again.TurnEnded, "revive is spent for this monster")
	s.Equal(models.TurnEndCrappedOut, again.EndReason)
	s.Equal(3, s.player(again.State, s.aliceID).Gold)
	s.Equal(s.bobID, again.State.TurnState.ActivePlayerID)
	s.True(again.State.TurnState.HasUsedRevive, "flag survives while the monster stands")

	// Bob finishes the monster; the flag resets with the next one
	s.toBetting()
	s.startRolling()
	s.expectRolls([2]int{5, 6})
	out := s.rollComeOut()
	s.Equal(1, out.State.CurrentMonsterIndex)
	s.False(out.State.TurnState.HasUsedRevive)
}

func (s *GameServiceTestSuite) TestCrapOut_WithoutCardsEndsTurn() {
	s.startGame()
	s.toBetting()
	s.bet(s.bobID, models.BetAgainst, 1)
	s.startRolling()

	s.expectRolls([2]int{2, 2}, [2]int{6, 1})
	s.rollComeOut()
	out := s.rollPoint()

	s.True(out.TurnEnded)
	s.Equal(models.TurnEndCrappedOut, out.EndReason)
	s.Equal(5, s.player(out.State, s.bobID).Gold)
	s.Equal(2, s.player(out.State, s.aliceID).Gold)
}

func (s *GameServiceTestSuite) TestEscape() {
	s.startGame()
	s.toBetting()
	s.bet(s.bobID, models.BetFor, 2)
	s.startRolling()

	s.expectRolls([2]int{2, 2}, [2]int{3, 3}, [2]int{1, 1}, [2]int{1, 1})
	s.rollComeOut()
	s.rollPoint()

	offer := s.rollPoint()
	s.Equal(dice.PointPhaseEscapeOffered, offer.Outcome)
	s.Equal(models.DecisionEscape, offer.Pending)

	stay, err := s.gameService.ResolveEscape(s.ctx, &ResolveEscapeInput{GameID: s.gameID, Escape: false})
	s.Require().NoError(err)
	s.False(stay.TurnEnded)

	s.rollPoint()
	out, err := s.gameService.ResolveEscape(s.ctx, &ResolveEscapeInput{GameID: s.gameID, Escape: true})
	s.Require().NoError(err)
	s.True(out.TurnEnded)

	s.Equal(5, s.player(out.State, s.bobID).Gold, "bonus plus returned stake")
	s.Zero(s.player(out.State, s.aliceID).DamageCount, "escaped damage is never committed")
	s.Equal([]int{8}, out.State.Monsters[0].RemainingNumbers)
	s.Empty(out.State.DamageLeaderID)
	s.Equal(s.bobID, out.State.TurnState.ActivePlayerID)
}

func (s *GameServiceTestSuite) TestPlayTurn_UsesDecider() {
	s.startGame()

	s.expectRolls([2]int{2, 2}, [2]int{1, 1}, [2]int{2, 2}, [2]int{4, 4})
	gomock.InOrder(
		s.mockDecider.EXPECT().ChooseEscape(gomock.Any()).Return(false),
		s.mockDecider.EXPECT().ChoosePointNumber(gomock.Any(), []int{6, 8}).Return(6),
	)

	out, err := s.gameService.PlayTurn(s.ctx, &PlayTurnInput{GameID: s.gameID, Decider: s.mockDecider})
	s.Require().NoError(err)

	s.Equal(models.TurnEndDefeated, out.EndReason)
	s.Equal([][]int{{2, 2}, {1, 1}, {2, 2}, {4, 4}}, out.Rolls)
	s.Equal(1, out.State.CurrentMonsterIndex)
	s.Equal(2, s.player(out.State, s.aliceID).DamageCount)
}

func (s *GameServiceTestSuite) TestPlayTurn_RequiresDecider() {
	s.startGame()
	_, err := s.gameService.PlayTurn(s.ctx, &PlayTurnInput{GameID: s.gameID})
	s.ErrorIs(err, ErrNilDecider)
}

func (s *GameServiceTestSuite) TestPlayTurn_CancelKeepsCompletedRolls() {
	s.startGame()
	s.mutate(func(state *models.GameState) {
		state.Players[0].Gold = 8
		state.Players[0].PermanentCards = []models.Card{s.ironWill}
	})
	s.toBetting()
	s.bet(s.bobID, models.BetAgainst, 2)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	s.expectRolls([2]int{2, 2}, [2]int{3, 4})
	s.mockDecider.EXPECT().ChooseRevive(gomock.Any()).DoAndReturn(func(*models.GameState) bool {
		cancel()
		return true
	})

	_, err := s.gameService.PlayTurn(ctx, &PlayTurnInput{GameID: s.gameID, Decider: s.mockDecider})
	s.ErrorIs(err, context.Canceled)

	state := s.state()
	s.Equal(2, state.TurnState.RollCount)
	s.Equal(models.PhasePointPhase, state.TurnState.Phase)
	s.Equal(4, state.TurnState.Point)
	s.Equal(models.DecisionNone, state.TurnState.PendingDecision)
	s.True(state.TurnState.HasUsedRevive)
	s.Empty(state.Bets)
	s.Equal(4, s.player(state, s.aliceID).Gold, "crap out penalty stays paid")
	s.Zero(s.player(state, s.aliceID).CardCount())
	s.Equal(6, s.player(state, s.bobID).Gold, "AGAINST payout stays paid")
}

func (s *GameServiceTestSuite) TestPlayTurn_BadDecisionKeepsCompletedRolls() {
	s.startGame()

	s.expectRolls([2]int{2, 2}, [2]int{2, 2})
	s.mockDecider.EXPECT().ChoosePointNumber(gomock.Any(), []int{6, 8}).Return(5)

	_, err := s.gameService.PlayTurn(s.ctx, &PlayTurnInput{GameID: s.gameID, Decider: s.mockDecider})
	s.ErrorIs(err, monsters.ErrNumberNotRemaining)

	state := s.state()
	s.Equal(2, state.TurnState.RollCount)
	s.Equal(models.DecisionPointNumber, state.TurnState.PendingDecision)
	s.Equal([]int{6, 8}, state.Monsters[0].RemainingNumbers)

	// The turn picks up where it stopped
	out, err := s.gameService.ResolvePointChoice(s.ctx, &ResolvePointChoiceInput{GameID: s.gameID, Number: 8})
	s.Require().NoError(err)
	s.Equal([]int{6}, out.State.Monsters[0].RemainingNumbers)
}

func (s *GameServiceTestSuite) TestBossDefeat_EndsGame() {
	s.startGame()
	s.mutate(func(state *models.GameState) {
		state.CurrentMonsterIndex = models.MonsterCount - 1
	})
	s.toBetting()
	s.startRolling()

	s.expectRolls([2]int{5, 6})
	out := s.rollComeOut()

	s.True(out.State.IsGameOver)
	s.Equal(s.aliceID, out.State.WinnerID)
	s.Equal([]string{s.aliceID}, out.State.WinnerIDs)
	s.Equal(models.MonsterCount-1, out.State.CurrentMonsterIndex)

	_, err := s.gameService.SkipRefresh(s.ctx, &SkipRefreshInput{GameID: s.gameID})
	s.ErrorIs(err, ErrGameOver)
	_, err = s.gameService.PlayTurn(s.ctx, &PlayTurnInput{GameID: s.gameID, Decider: s.mockDecider})
	s.ErrorIs(err, ErrGameOver)
}

func (s *GameServiceTestSuite) TestReachingThreshold_EndsGame() {
	s.startGame()
	s.mutate(func(state *models.GameState) { state.Players[0].VictoryPoints = 9 })
	s.toBetting()
	s.startRolling()

	s.expectRolls([2]int{6, 5})
	out := s.rollComeOut()

	s.True(out.State.IsGameOver)
	s.Equal(s.aliceID, out.State.WinnerID)
	s.Equal(models.PhaseResolution, out.State.TurnState.Phase)
}

func (s *GameServiceTestSuite) TestDrawnCardWithoutRoomGoesToBottom() {
	s.startGame()
	s.mutate(func(state *models.GameState) {
		for i := 0; i < models.MaxSingleUseCards; i++ {
			state.Players[0].SingleUseCards = append(state.Players[0].SingleUseCards,
				models.Card{ID: fmt.Sprintf("held-%d", i), Kind: models.CardKindSingleUse})
		}
	})
	deckBefore := s.state().CardDeck
	s.toBetting()
	s.startRolling()

	s.expectRolls([2]int{3, 4})
	out := s.rollComeOut()

	s.Len(out.State.CardDeck, len(deckBefore))
	s.Equal(s.rerollCard, out.State.CardDeck[len(out.State.CardDeck)-1])
	s.Equal(deckBefore[1], out.State.CardDeck[0])
	s.Len(s.player(out.State, s.aliceID).SingleUseCards, models.MaxSingleUseCards)
}

func (s *GameServiceTestSuite) TestEmptyDeckDrawsNothing() {
	s.startGame()
	s.mutate(func(state *models.GameState) { state.CardDeck = nil })
	s.toBetting()
	s.startRolling()

	s.expectRolls([2]int{3, 4})
	out := s.rollComeOut()
	s.Zero(s.player(out.State, s.aliceID).CardCount())
	s.Equal(1, out.State.CurrentMonsterIndex)
}

func (s *GameServiceTestSuite) TestShopping() {
	s.startGame()

	refresh, err := s.gameService.RefreshMarketplace(s.ctx, &RefreshMarketplaceInput{GameID: s.gameID})
	s.Require().NoError(err)
	s.Equal(1, s.player(refresh.State, s.aliceID).Gold)
	s.Equal(-models.MarketplaceRefreshCost, refresh.Payment.Delta)
	s.Len(refresh.State.Marketplace, models.MarketplaceSize)
	s.Equal(models.PhaseMarketPurchase, refresh.State.TurnState.Phase)

	_, err = s.gameService.RefreshMarketplace(s.ctx, &RefreshMarketplaceInput{GameID: s.gameID})
	s.ErrorIs(err, ErrInvalidPhase)

	s.mutate(func(state *models.GameState) {
		state.Players[0].Gold = 2
		state.Marketplace[0] = models.Card{ID: "cheap", Name: "Gold Rush", Kind: models.CardKindSingleUse, Effect: models.EffectGoldRush, Cost: 2}
	})
	bought, err := s.gameService.PurchaseCard(s.ctx, &PurchaseCardInput{GameID: s.gameID, CardID: "cheap"})
	s.Require().NoError(err)
	s.Equal("cheap", bought.Card.ID)
	s.Zero(s.player(bought.State, s.aliceID).Gold)
	s.Len(bought.State.Marketplace, models.MarketplaceSize-1)

	_, err = s.gameService.PurchaseCard(s.ctx, &PurchaseCardInput{GameID: s.gameID, CardID: "cheap"})
	s.Error(err)
}

func (s *GameServiceTestSuite) TestPhaseOrderIsEnforced() {
	s.startGame()

	_, err := s.gameService.PlaceBet(s.ctx, &PlaceBetInput{GameID: s.gameID, PlayerID: s.bobID, Type: models.BetFor, Amount: 1})
	s.ErrorIs(err, ErrInvalidPhase)
	_, err = s.gameService.RollComeOut(s.ctx, &RollComeOutInput{GameID: s.gameID})
	s.ErrorIs(err, ErrInvalidPhase)
	_, err = s.gameService.ResolvePointChoice(s.ctx, &ResolvePointChoiceInput{GameID: s.gameID, Number: 6})
	s.ErrorIs(err, ErrNoDecisionPending)
}

func (s *GameServiceTestSuite) TestRollDelayHonorsContext() {
	s.startGame()
	s.toBetting()
	s.startRolling()

	slow, err := New(&Config{
		Repository:    s.repo,
		DiceRoller:    s.mockDiceRoller,
		DeckSource:    dice.New(nil),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		RollDelay:     time.Hour,
	})
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Millisecond)
	defer cancel()
	_, err = slow.RollComeOut(ctx, &RollComeOutInput{GameID: s.gameID})
	s.ErrorIs(err, context.DeadlineExceeded)

	state := s.state()
	s.Zero(state.TurnState.RollCount)
	s.Equal(models.PhaseComeOutRoll, state.TurnState.Phase)
}

func (s *GameServiceTestSuite) TestQueriesAndReset() {
	s.startGame()

	active, err := s.gameService.GetActivePlayer(s.ctx, &GetActivePlayerInput{GameID: s.gameID})
	s.Require().NoError(err)
	s.Equal(s.aliceID, active.Player.ID)

	monster, err := s.gameService.GetCurrentMonster(s.ctx, &GetCurrentMonsterInput{GameID: s.gameID})
	s.Require().NoError(err)
	s.Equal(1, monster.Monster.Position)

	bob, err := s.gameService.GetPlayerByID(s.ctx, &GetPlayerByIDInput{GameID: s.gameID, PlayerID: s.bobID})
	s.Require().NoError(err)
	s.Equal("Bob", bob.Player.Name)

	nobody, err := s.gameService.GetPlayerByID(s.ctx, &GetPlayerByIDInput{GameID: s.gameID, PlayerID: "carol"})
	s.Require().NoError(err)
	s.Nil(nobody.Player)

	_, err = s.gameService.ResetGame(s.ctx, &ResetGameInput{GameID: s.gameID})
	s.Require().NoError(err)
	_, err = s.gameService.GetState(s.ctx, &GetStateInput{GameID: s.gameID})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestRepositoryFailures() {
	mockRepo := gameMocks.NewMockRepository(s.mockCtrl)
	svc, err := New(&Config{
		Repository:    mockRepo,
		DiceRoller:    s.mockDiceRoller,
		DeckSource:    dice.New(nil),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	mockRepo.EXPECT().GetState(gomock.Any(), &gameRepo.GetStateInput{GameID: "missing"}).Return(nil, gameRepo.ErrGameNotFound)
	_, err = svc.GetState(s.ctx, &GetStateInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)

	mockRepo.EXPECT().GetState(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk on fire"))
	_, err = svc.SkipRefresh(s.ctx, &SkipRefreshInput{GameID: "any"})
	s.ErrorContains(err, "disk on fire")

	mockRepo.EXPECT().SaveState(gomock.Any(), gomock.Any()).Return(errors.New("full"))
	_, err = svc.NewGame(s.ctx, &NewGameInput{PlayerNames: []string{"Alice", "Bob"}})
	s.ErrorContains(err, "full")
}
