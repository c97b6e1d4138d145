package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrRoomFull           = errors.New("room is full")
	ErrInvalidRoom        = errors.New("room code is empty")
	ErrInvalidParticipant = errors.New("participant id is empty")

	ErrStoreUnavailable = errors.New("document store unavailable")

	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameNotFinished  = errors.New("game is not finished yet")

	// ErrIllegalMove is the umbrella for every move that must leave the game untouched.
	ErrIllegalMove = errors.New("illegal move")

	ErrNotYourTurn   = fmt.Errorf("%w: it's not your turn", ErrIllegalMove)
	ErrColumnFull    = fmt.Errorf("%w: column is full", ErrIllegalMove)
	ErrInvalidColumn = fmt.Errorf("%w: invalid column index", ErrIllegalMove)
)

// Unavailable marks err as a store failure, keeping the original cause in the chain.
func Unavailable(err error) error {
	if err == nil || errors.Is(err, ErrStoreUnavailable) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
