package drills

import "golang.org/x/exp/constraints"

// Multiply returns x*y with int16 wrap-around semantics.
func Multiply(x, y int16) int16 {
	return x * y
}

// Widen converts v into a type at least as wide as From.
// Callers pick To so that the conversion is lossless, e.g. Widen[int16](int8(15)).
func Widen[To, From constraints.Integer](v From) To {
	return To(v)
}
