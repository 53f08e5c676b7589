// Package victory computes effective victory points, the damage leader and
// the winner of the game.
package victory

import (
	"cmp"
	"slices"

	"github.com/KirkDiggler/gauntlet/internal/models"
)

// Outcome is the result of a victory check. WinnerID is empty on a shared
// victory, in which case WinnerIDs holds every tied player.
type Outcome struct {
	WinnerID  string
	WinnerIDs []string
	Shared    bool
}

// EffectiveVictoryPoints adds the damage leader bonus when it applies. The
// bonus is never stored on the player.
func EffectiveVictoryPoints(p models.Player, isDamageLeader bool) int {
	if isDamageLeader {
		return p.VictoryPoints + models.DamageLeaderBonus
	}
	return p.VictoryPoints
}

// Effective computes effective points against the current leader id
func Effective(p models.Player, damageLeaderID string) int {
	return EffectiveVictoryPoints(p, damageLeaderID != "" && p.ID == damageLeaderID)
}

// DamageLeader returns the id of the player with strictly the most damage.
// Players are scanned in seat order and only replaced on a strictly higher
// count, so the earliest seat wins a tie. No damage means no leader.
func DamageLeader(players []models.Player) string {
	leader := ""
	best := 0
	for _, p := range players {
		if p.DamageCount > best {
			best = p.DamageCount
			leader = p.ID
		}
	}
	return leader
}

// PointsToWin is how many more effective points the player needs
func PointsToWin(p models.Player, damageLeaderID string) int {
	return max(0, models.VictoryThreshold-Effective(p, damageLeaderID))
}

// Candidates lists every player at or above the victory threshold
func Candidates(players []models.Player, damageLeaderID string) []models.Player {
	var out []models.Player
	for _, p := range players {
		if Effective(p, damageLeaderID) >= models.VictoryThreshold {
			out = append(out, p)
		}
	}
	return out
}

// compare orders players best first: effective points, then gold, then
// permanent card count
func compare(a, b models.Player, damageLeaderID string) int {
	if c := cmp.Compare(Effective(b, damageLeaderID), Effective(a, damageLeaderID)); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Gold, a.Gold); c != 0 {
		return c
	}
	return cmp.Compare(len(b.PermanentCards), len(a.PermanentCards))
}

// Standings returns the players best first; fully tied players keep seat order
func Standings(players []models.Player, damageLeaderID string) []models.Player {
	out := slices.Clone(players)
	slices.SortStableFunc(out, func(a, b models.Player) int {
		return compare(a, b, damageLeaderID)
	})
	return out
}

// ResolveTieBreak picks the single best player. When two or more players
// tie on every criterion at the top, there is no single winner and the
// tied players are returned instead.
func ResolveTieBreak(players []models.Player, damageLeaderID string) (*models.Player, []models.Player) {
	if len(players) == 0 {
		return nil, nil
	}
	ranked := Standings(players, damageLeaderID)
	top := ranked[0]

	tied := []models.Player{top}
	for _, p := range ranked[1:] {
		if compare(top, p, damageLeaderID) != 0 {
			break
		}
		tied = append(tied, p)
	}
	if len(tied) > 1 {
		return nil, tied
	}
	return &top, nil
}

// Decide resolves the best of players into an Outcome
func Decide(players []models.Player, damageLeaderID string) Outcome {
	winner, tied := ResolveTieBreak(players, damageLeaderID)
	if winner != nil {
		return Outcome{WinnerID: winner.ID, WinnerIDs: []string{winner.ID}}
	}
	ids := make([]string, len(tied))
	for i, p := range tied {
		ids[i] = p.ID
	}
	return Outcome{WinnerIDs: ids, Shared: len(ids) > 1}
}

// CheckVictory reports whether anyone has reached the threshold and, if so,
// who won
func CheckVictory(players []models.Player, damageLeaderID string) (Outcome, bool) {
	candidates := Candidates(players, damageLeaderID)
	if len(candidates) == 0 {
		return Outcome{}, false
	}
	return Decide(candidates, damageLeaderID), true
}
