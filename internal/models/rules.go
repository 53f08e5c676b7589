package models

// Fixed game rules. None of these are runtime configurable.
const (
	StartingGold = 4

	// VictoryThreshold is the effective victory point total that wins the game
	VictoryThreshold = 10

	MaxPermanentCards = 6
	MaxSingleUseCards = 8

	MarketplaceSize        = 8
	MarketplaceRefreshCost = 3

	// DamageLeaderBonus is added to the damage leader's effective victory points
	DamageLeaderBonus = 3

	MaxBet = 5

	MinPlayers = 2
	MaxPlayers = 8

	MonsterCount = 10

	// CrapOutPenaltyPercent is the share of gold a shooter loses on crapping out
	CrapOutPenaltyPercent = 50

	// PointHitBonus is paid to each FOR bettor for every monster hit
	PointHitBonus = 1
)
