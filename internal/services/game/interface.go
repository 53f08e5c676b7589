package game

import "context"

// Service defines the interface for game operations
type Service interface {
	// NewGame seats the players and deals a new game
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// GetState returns the current snapshot of a game
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// RefreshMarketplace pays to redeal the marketplace
	RefreshMarketplace(ctx context.Context, input *RefreshMarketplaceInput) (*RefreshMarketplaceOutput, error)

	// SkipRefresh keeps the current marketplace
	SkipRefresh(ctx context.Context, input *SkipRefreshInput) (*SkipRefreshOutput, error)

	// PurchaseCard buys a card from the marketplace for the shooter
	PurchaseCard(ctx context.Context, input *PurchaseCardInput) (*PurchaseCardOutput, error)

	// FinishShopping closes the marketplace for this turn
	FinishShopping(ctx context.Context, input *FinishShoppingInput) (*FinishShoppingOutput, error)

	// RevealCards shows the shooter's hand and opens betting
	RevealCards(ctx context.Context, input *RevealCardsInput) (*RevealCardsOutput, error)

	// PlaceBet records a side bet from a player other than the shooter
	PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error)

	// StartRolling closes betting and readies the come-out roll
	StartRolling(ctx context.Context, input *StartRollingInput) (*StartRollingOutput, error)

	// RollComeOut rolls the first roll of the turn
	RollComeOut(ctx context.Context, input *RollComeOutInput) (*RollComeOutOutput, error)

	// RollPoint rolls once in the point phase
	RollPoint(ctx context.Context, input *RollPointInput) (*RollPointOutput, error)

	// ResolvePointChoice crosses off the number chosen after a point hit
	ResolvePointChoice(ctx context.Context, input *ResolvePointChoiceInput) (*ResolvePointChoiceOutput, error)

	// ResolveEscape answers the escape offer
	ResolveEscape(ctx context.Context, input *ResolveEscapeInput) (*ResolveEscapeOutput, error)

	// ResolveRevive answers the revive offer
	ResolveRevive(ctx context.Context, input *ResolveReviveInput) (*ResolveReviveOutput, error)

	// PlayTurn plays the rest of the current turn, asking the decider for choices
	PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error)

	// ResetGame throws a game away
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// GetActivePlayer returns the shooter
	GetActivePlayer(ctx context.Context, input *GetActivePlayerInput) (*GetActivePlayerOutput, error)

	// GetCurrentMonster returns the monster being fought
	GetCurrentMonster(ctx context.Context, input *GetCurrentMonsterInput) (*GetCurrentMonsterOutput, error)

	// GetPlayerByID looks up a seated player
	GetPlayerByID(ctx context.Context, input *GetPlayerByIDInput) (*GetPlayerByIDOutput, error)
}
