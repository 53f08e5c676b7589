package uuid

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/gauntlet/internal/common/uuid UUID

type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package

type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Sequence hands out prefixed, monotonically increasing ids. It is owned by
// whoever constructs it, so two decks built side by side never share state.
type Sequence struct {
	prefix string
	next   atomic.Int64
}

// NewSequence creates a sequence whose first id is "<prefix>-1"
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewUUID returns the next id in the sequence
func (s *Sequence) NewUUID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.next.Add(1))
}
