package config

// Default exercise inputs, matching the classic Day 1 walkthrough.
const (
	DefaultFizzBuzzLimit   = 20
	DefaultCollatzStart    = 3
	DefaultRectangleWidth  = 10
	DefaultRectangleHeight = 5
	DefaultRectangleDelta  = 5
)

// DefaultBannerMessages returns the messages shown by the banner demo.
func DefaultBannerMessages() []string {
	return []string{"Hello fellow Rustaceans! w00t", "Hi again lol"}
}

// DefaultMatrix returns the grid used by the transpose demo.
func DefaultMatrix() [][]int32 {
	return [][]int32{
		{101, 102, 103},
		{201, 202, 203},
		{301, 302, 303},
	}
}

// DefaultExercises returns a fully populated Exercises value.
func DefaultExercises() Exercises {
	var e Exercises
	ApplyDefaults(&e)
	return e
}

// ApplyDefaults fills zero values in e.
func ApplyDefaults(e *Exercises) {
	if e == nil {
		return
	}
	if e.FizzBuzz.Limit == 0 {
		e.FizzBuzz.Limit = DefaultFizzBuzzLimit
	}
	if e.Collatz.Start == 0 {
		e.Collatz.Start = DefaultCollatzStart
	}
	if len(e.Banner.Messages) == 0 {
		e.Banner.Messages = DefaultBannerMessages()
	}
	if e.Rectangle.Width == 0 && e.Rectangle.Height == 0 {
		e.Rectangle.Width = DefaultRectangleWidth
		e.Rectangle.Height = DefaultRectangleHeight
	}
	if e.Rectangle.Delta == 0 {
		e.Rectangle.Delta = DefaultRectangleDelta
	}
	if len(e.Transpose.Matrix) == 0 {
		e.Transpose.Matrix = DefaultMatrix()
	}
}
