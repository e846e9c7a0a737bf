package game

import "errors"

var (
	// ErrInsufficientPlayers is returned when fewer than two players can be dealt in.
	ErrInsufficientPlayers = errors.New("insufficient players")
	// ErrHandInProgress is returned when starting a hand while one is running.
	ErrHandInProgress = errors.New("hand already in progress")
	// ErrNoHand is returned when an operation requires a current hand.
	ErrNoHand = errors.New("no hand in progress")
	// ErrWrongPhase is returned when an operation does not match the hand's checkpoint.
	ErrWrongPhase = errors.New("wrong phase for operation")
	// ErrInvalidCards is returned for revealed cards that are malformed, duplicated or miscounted.
	ErrInvalidCards = errors.New("invalid cards")
	// ErrInvalidAction describes why a betting action was rejected.
	ErrInvalidAction = errors.New("invalid action")
	// ErrUnresolvedShowdown is returned when the evaluator cannot pick winners.
	ErrUnresolvedShowdown = errors.New("showdown could not be resolved")
)
