package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound       GameError = "game not found"
	ErrGameOver           GameError = "game is over"
	ErrPlayerNotFound     GameError = "player not found"
	ErrInvalidPhase       GameError = "action not allowed in this phase"
	ErrDecisionPending    GameError = "a decision is pending"
	ErrNoDecisionPending  GameError = "no matching decision is pending"
	ErrNilState           GameError = "state cannot be nil"
	ErrNilDecider         GameError = "decider cannot be nil"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilGameRepo        GameError = "game repository cannot be nil"
	ErrNilDiceRoller      GameError = "dice roller cannot be nil"
	ErrNilDeckSource      GameError = "deck source cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
	ErrMonsterNotSnapshot GameError = "no monster snapshot stored for this turn"
)
