// Package demos turns each exercise into a printable demo.
//
// A demo writes plain lines to its Env.Out and returns an error only when
// its inputs make the exercise impossible (for example a Collatz start of 0).
// Styling and output modes are the renderer's job, not the demo's.
package demos

import (
	"fmt"
	"io"

	"github.com/leapstack-labs/drills/internal/config"
	"github.com/leapstack-labs/drills/pkg/core"
)

// Demo names, in run order.
const (
	NameBanner      = "banner"
	NameBindings    = "bindings"
	NameCompound    = "compound"
	NameFizzBuzz    = "fizzbuzz"
	NameStructs     = "structs"
	NameGenerics    = "generics"
	NameConversions = "conversions"
	NameLoops       = "loops"
	NameTranspose   = "transpose"
)

// All returns every demo in run order, bound to params.
func All(params config.Exercises) []*core.Demo {
	return []*core.Demo{
		{
			Name:    NameBanner,
			Title:   "Hello, world",
			Aliases: []string{"hello", "say"},
			Summary: "Speech bubbles around a crab, then Done.",
			Run:     banner(params.Banner),
		},
		{
			Name:    NameBindings,
			Title:   "Variable bindings",
			Aliases: []string{"collatz"},
			Summary: "Mutable binding driving a Collatz loop",
			Run:     bindings(params.Collatz),
		},
		{
			Name:    NameCompound,
			Title:   "Arrays, tuples, references, slices, strings",
			Aliases: []string{"types"},
			Summary: "Fixed arrays, a pair, pointer writes, slice windows, string building",
			Run:     compound,
		},
		{
			Name:    NameFizzBuzz,
			Title:   "Functions: FizzBuzz",
			Aliases: []string{"functions"},
			Summary: "Classify 1..=n by divisibility by 3 and 5",
			Run:     fizzBuzz(params.FizzBuzz),
		},
		{
			Name:    NameStructs,
			Title:   "Structs",
			Aliases: []string{"rectangle"},
			Summary: "Rectangle area before and after a width increment",
			Run:     structs(params.Rectangle),
		},
		{
			Name:    NameGenerics,
			Title:   "Generic functions",
			Aliases: []string{"pick"},
			Summary: "One generic picker used with strings and integers",
			Run:     generics,
		},
		{
			Name:    NameConversions,
			Title:   "Type conversions",
			Aliases: []string{"convert"},
			Summary: "Widen an int8 before multiplying int16 values",
			Run:     conversions,
		},
		{
			Name:    NameLoops,
			Title:   "Arrays and for loops",
			Aliases: []string{"for"},
			Summary: "Range over values and over indices",
			Run:     loops,
		},
		{
			Name:    NameTranspose,
			Title:   "Transpose",
			Aliases: []string{"matrix"},
			Summary: "Swap rows and columns of a 3x3 grid",
			Run:     transpose(params.Transpose),
		},
	}
}

// writeln writes a line, ignoring write errors the way fmt.Println does.
func writeln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func writef(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}
