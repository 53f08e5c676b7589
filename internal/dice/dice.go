package dice

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/gauntlet/internal/dice Roller

// Roller rolls a single die
type Roller interface {
	// Roll returns a uniform value in [1, sides]
	Roll(sides int) int
}

// Source is the randomness provider used for shuffling
type Source interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// Random provides dice rolling functionality backed by math/rand. It
// satisfies both Roller and Source.
type Random struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Random{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *Random) Roll(sides int) int {
	if sides < 1 {
		sides = Sides
	}
	return r.random.Intn(sides) + 1
}

// Intn returns a uniform value in [0, n)
func (r *Random) Intn(n int) int {
	return r.random.Intn(n)
}

// LoggedRoller logs every die it rolls at debug level
type LoggedRoller struct {
	roller Roller
	logger *zap.Logger
}

// NewLoggedRoller wraps roller so each roll is logged to logger
func NewLoggedRoller(roller Roller, logger *zap.Logger) *LoggedRoller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggedRoller{roller: roller, logger: logger}
}

// Roll rolls through the wrapped roller and logs the value
func (l *LoggedRoller) Roll(sides int) int {
	v := l.roller.Roll(sides)
	l.logger.Debug("die rolled", zap.Int("sides", sides), zap.Int("value", v))
	return v
}
