// Package drills holds the computations behind each exercise.
//
// Everything here is pure: functions take values, return values, and never
// print. The demos package turns these results into console lines.
//
// Exercises covered:
//
//   - Collatz stepper (variable bindings, while-style loops)
//   - compound values: fixed arrays, pairs, pointers, slice windows, strings
//   - FizzBuzz classifier (functions, early returns, switch on a pair)
//   - Rectangle (structs with value and pointer receivers)
//   - PickOne (generic functions)
//   - Multiply and Widen (numeric conversions)
//   - Matrix3 transpose (nested fixed-size arrays)
//   - Say (speech-bubble banner)
package drills
