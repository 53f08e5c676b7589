package models

// Phase is a step of a single player's turn
type Phase string

const (
	PhaseMarketplaceRefresh Phase = "MARKETPLACE_REFRESH"
	PhaseMarketPurchase     Phase = "MARKET_PURCHASE"
	PhaseCardReveal         Phase = "CARD_REVEAL"
	PhaseBetting            Phase = "BETTING"
	PhaseComeOutRoll        Phase = "COME_OUT_ROLL"
	PhasePointPhase         Phase = "POINT_PHASE"
	PhaseResolution         Phase = "RESOLUTION"
)

// TurnEndReason explains why a turn finished
type TurnEndReason string

const (
	TurnEndDefeated   TurnEndReason = "defeated"
	TurnEndCrappedOut TurnEndReason = "crapped_out"
	TurnEndEscaped    TurnEndReason = "escaped"
)

// Decision is a choice the shooter owes before rolling can continue
type Decision string

const (
	DecisionNone Decision = ""

	// DecisionPointNumber asks which remaining number a point hit removes
	DecisionPointNumber Decision = "point_number"

	// DecisionEscape asks whether to take the snake eyes escape
	DecisionEscape Decision = "escape"

	// DecisionRevive asks whether to discard the hand to keep fighting
	DecisionRevive Decision = "revive"
)

// TurnState is the ephemeral record of the active player's turn
type TurnState struct {
	Phase          Phase
	ActivePlayerID string

	// Point is 0 until the come-out roll establishes one
	Point int

	// TurnDamage is committed to the shooter only when the monster falls
	TurnDamage int

	// MonsterStateBeforeTurn is restored when the shooter craps out
	MonsterStateBeforeTurn *Monster

	// HasUsedRevive is scoped to the current monster, not the turn
	HasUsedRevive bool

	RollCount int
	LastRoll  []int

	PendingDecision Decision
	EndReason       TurnEndReason
}

// HasPoint reports whether a point has been established
func (t TurnState) HasPoint() bool {
	return t.Point != 0
}

// Clone returns a deep copy of the turn state
func (t TurnState) Clone() TurnState {
	if t.MonsterStateBeforeTurn != nil {
		m := t.MonsterStateBeforeTurn.Clone()
		t.MonsterStateBeforeTurn = &m
	}
	t.LastRoll = cloneInts(t.LastRoll)
	return t
}

// NewTurnState returns a fresh turn for playerID at the marketplace refresh
// phase
func NewTurnState(playerID string, hasUsedRevive bool) TurnState {
	return TurnState{
		Phase:          PhaseMarketplaceRefresh,
		ActivePlayerID: playerID,
		HasUsedRevive:  hasUsedRevive,
	}
}
