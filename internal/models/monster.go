package models

// MonsterType is the flavor type of a monster
type MonsterType string

const (
	MonsterTypeGoblin   MonsterType = "GOBLIN"
	MonsterTypeSkeleton MonsterType = "SKELETON"
	MonsterTypeSlime    MonsterType = "SLIME"
	MonsterTypeOrc      MonsterType = "ORC"
	MonsterTypeWraith   MonsterType = "WRAITH"
	MonsterTypeTroll    MonsterType = "TROLL"
	MonsterTypeGolem    MonsterType = "GOLEM"
	MonsterTypeVampire  MonsterType = "VAMPIRE"
	MonsterTypeHydra    MonsterType = "HYDRA"
	MonsterTypeBoss     MonsterType = "BOSS"
)

// Monster is one step of the gauntlet
type Monster struct {
	ID   string
	Name string
	Type MonsterType

	// Position is the 1-based gauntlet order, fixed at creation
	Position int

	// NumbersToHit is the full set assigned at creation
	NumbersToHit []int

	// RemainingNumbers shrinks as hits land; empty means defeated
	RemainingNumbers []int

	// Points and GoldReward are paid to the shooter who defeats the monster
	Points     int
	GoldReward int
}

// Clone returns a deep copy of the monster
func (m Monster) Clone() Monster {
	m.NumbersToHit = cloneInts(m.NumbersToHit)
	m.RemainingNumbers = cloneInts(m.RemainingNumbers)
	return m
}

// IsBoss reports whether this is the final monster
func (m Monster) IsBoss() bool {
	return m.Type == MonsterTypeBoss
}

func cloneInts(v []int) []int {
	if v == nil {
		return nil
	}
	out := make([]int, len(v))
	copy(out, v)
	return out
}
