package drills

import "errors"

// Sentinel errors. Match with errors.Is; wrap with fmt.Errorf("ctx: %w", err)
// at outer boundaries only.
var (
	// ErrZeroStart is returned when a Collatz trajectory starts at 0,
	// which halves to itself forever.
	ErrZeroStart = errors.New("drills: collatz start must be positive")

	// ErrOverflow is returned when 3n+1 does not fit in a uint64.
	ErrOverflow = errors.New("drills: collatz step overflows uint64")

	// ErrBadShape is returned when a matrix literal is not 3×3.
	ErrBadShape = errors.New("drills: matrix must be 3x3")

	// ErrEmptyMessage is returned when a banner has nothing to say.
	ErrEmptyMessage = errors.New("drills: banner message is empty")

	// ErrOutOfRange is returned when a slice window exceeds its array.
	ErrOutOfRange = errors.New("drills: window out of range")
)
