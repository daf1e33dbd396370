package quiz

import "errors"

var (
	// ErrInvalidPool is returned when a round is requested from an empty pool
	ErrInvalidPool = errors.New("invalid pool")

	// ErrNotRevealed is returned by Advance while the round is still unanswered
	ErrNotRevealed = errors.New("round not revealed")

	// ErrNoRound is returned when an operation needs a round before Start was called
	ErrNoRound = errors.New("no round in progress")
)
