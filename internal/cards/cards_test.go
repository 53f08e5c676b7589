package cards

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/gauntlet/internal/catalog"
	"github.com/KirkDiggler/gauntlet/internal/common/uuid"
	uuidMocks "github.com/KirkDiggler/gauntlet/internal/common/uuid/mocks"
	"github.com/KirkDiggler/gauntlet/internal/dice"
	"github.com/KirkDiggler/gauntlet/internal/models"
)

type CardsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockUUID *uuidMocks.MockUUID

	player    models.Player
	permanent models.Card
	singleUse models.Card
	point     models.Card
}

func (s *CardsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.player = models.Player{ID: "alice", Name: "Alice", Gold: 4}
	s.permanent = models.Card{ID: "p-1", Name: "Iron Will", Kind: models.CardKindPermanent, Effect: models.EffectIronWill, Cost: 5}
	s.singleUse = models.Card{ID: "s-1", Name: "Reroll", Kind: models.CardKindSingleUse, Effect: models.EffectReroll, Cost: 2}
	s.point = models.Card{ID: "v-1", Name: "Bronze Trophy", Kind: models.CardKindPoint, VictoryPoints: 1, Cost: 3}
}

func (s *CardsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCardsTestSuite(t *testing.T) {
	suite.Run(t, new(CardsTestSuite))
}

func (s *CardsTestSuite) fillPermanent(n int) {
	for i := 0; i < n; i++ {
		s.player.PermanentCards = append(s.player.PermanentCards, models.Card{
			ID: fmt.Sprintf("perm-%d", i), Kind: models.CardKindPermanent,
		})
	}
}

func (s *CardsTestSuite) TestBuildDeck_UsesInjectedIDs() {
	templates := catalog.Default().CardTemplates()
	next := 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		next++
		return fmt.Sprintf("card-%d", next)
	}).Times(catalog.Default().DeckSize())

	deck := BuildDeck(templates, s.mockUUID)

	s.Len(deck, 42)
	s.Equal("card-1", deck[0].ID)
	s.Equal(templates[0].ID, deck[0].TemplateID)
	s.Equal("card-42", deck[41].ID)

	counts := make(map[models.CardKind]int)
	for _, c := range deck {
		counts[c.Kind]++
	}
	s.Equal(14, counts[models.CardKindPermanent])
	s.Equal(18, counts[models.CardKindSingleUse])
	s.Equal(10, counts[models.CardKindPoint])
}

func (s *CardsTestSuite) TestShuffle_IsPermutationAndLeavesInputAlone() {
	deck := BuildDeck(catalog.Default().CardTemplates(), uuid.NewSequence("card"))
	original := models.CloneCards(deck)

	shuffled := Shuffle(deck, dice.New(&dice.Config{Seed: 7}))

	s.Equal(original, deck)
	s.ElementsMatch(deck, shuffled)
	s.NotEqual(deck, shuffled)
}

func (s *CardsTestSuite) TestDraw() {
	deck := []models.Card{s.permanent, s.singleUse, s.point}

	drawn, rest := Draw(deck, 2)
	s.Equal([]models.Card{s.permanent, s.singleUse}, drawn)
	s.Equal([]models.Card{s.point}, rest)

	drawn, rest = Draw(deck, 10)
	s.Len(drawn, 3)
	s.Empty(rest)
}

func (s *CardsTestSuite) TestAddPermanentCard() {
	hand, err := AddPermanentCard(s.player, s.permanent)
	s.Require().NoError(err)
	s.Equal([]models.Card{s.permanent}, hand)
	s.Empty(s.player.PermanentCards)

	s.player.PermanentCards = hand
	_, err = AddPermanentCard(s.player, s.permanent)
	s.ErrorIs(err, ErrDuplicateCard)

	_, err = AddPermanentCard(s.player, s.singleUse)
	s.ErrorIs(err, ErrWrongKind)
}

func (s *CardsTestSuite) TestAddPermanentCard_HandFull() {
	s.fillPermanent(models.MaxPermanentCards)
	s.False(CanHoldPermanent(s.player))

	_, err := AddPermanentCard(s.player, s.permanent)
	s.ErrorIs(err, ErrHandFull)
}

func (s *CardsTestSuite) TestAddSingleUseCard_HandFull() {
	for i := 0; i < models.MaxSingleUseCards; i++ {
		s.player.SingleUseCards = append(s.player.SingleUseCards, models.Card{
			ID: fmt.Sprintf("su-%d", i), Kind: models.CardKindSingleUse,
		})
	}
	s.False(CanHoldSingleUse(s.player))

	_, err := AddSingleUseCard(s.player, s.singleUse)
	s.ErrorIs(err, ErrHandFull)
}

func (s *CardsTestSuite) TestUseSingleUseCard() {
	s.player.SingleUseCards = []models.Card{s.singleUse, {ID: "s-2", Kind: models.CardKindSingleUse}}

	used, rest, err := UseSingleUseCard(s.player, "s-1")
	s.Require().NoError(err)
	s.Equal(s.singleUse, used)
	s.Len(rest, 1)
	s.Equal("s-2", rest[0].ID)
	s.Len(s.player.SingleUseCards, 2)

	_, _, err = UseSingleUseCard(s.player, "missing")
	s.ErrorIs(err, ErrCardNotFound)
}

func (s *CardsTestSuite) TestRemovePermanentCard() {
	s.player.PermanentCards = []models.Card{s.permanent}

	removed, rest, err := RemovePermanentCard(s.player, "p-1")
	s.Require().NoError(err)
	s.Equal(s.permanent, removed)
	s.Empty(rest)

	_, _, err = RemovePermanentCard(s.player, "p-1-missing")
	s.ErrorIs(err, ErrCardNotFound)
}

func (s *CardsTestSuite) TestDiscardHand() {
	s.player.PermanentCards = []models.Card{s.permanent}
	s.player.SingleUseCards = []models.Card{s.singleUse}

	d := DiscardHand(s.player)
	s.Empty(d.PermanentCards)
	s.Empty(d.SingleUseCards)
	s.Equal([]models.Card{s.permanent}, d.DiscardedPermanent)
	s.Equal([]models.Card{s.singleUse}, d.DiscardedSingleUse)
}

func (s *CardsTestSuite) TestReceive_RoutesByKind() {
	p, err := Receive(s.player, s.point)
	s.Require().NoError(err)
	s.Equal(1, p.VictoryPoints)
	s.Equal(0, p.CardCount())

	p, err = Receive(p, s.permanent)
	s.Require().NoError(err)
	s.Len(p.PermanentCards, 1)

	p, err = Receive(p, s.singleUse)
	s.Require().NoError(err)
	s.Len(p.SingleUseCards, 1)
	s.Equal(0, s.player.CardCount())
}

func (s *CardsTestSuite) TestQueries() {
	s.player.PermanentCards = []models.Card{s.permanent}
	s.player.SingleUseCards = []models.Card{s.singleUse}

	s.True(HasPermanentEffect(s.player, models.EffectIronWill))
	s.False(HasPermanentEffect(s.player, models.EffectBookie))
	s.True(HasSingleUseEffect(s.player, models.EffectReroll))
	s.Len(GetPermanentWithEffect(s.player, models.EffectIronWill), 1)
	s.Empty(GetSingleUseWithEffect(s.player, models.EffectGoldRush))

	found, ok := FindPermanentCard(s.player, "p-1")
	s.True(ok)
	s.Equal(s.permanent, found)
	_, ok = FindSingleUseCard(s.player, "p-1")
	s.False(ok)

	s.Equal(1, CountPermanent(s.player))
	s.Equal(1, CountSingleUse(s.player))
	s.Equal(2, TotalCards(s.player))
}
