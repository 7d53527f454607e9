package pendulum

import "errors"

var (
	// ErrInvalidParameters is returned when a physical parameter cannot
	// drive a simulation.
	ErrInvalidParameters = errors.New("invalid pendulum parameters")

	// ErrInvalidSeed is returned when a seed is too short.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrRandomSource is returned when the random reader fails.
	ErrRandomSource = errors.New("random source failed")
)
