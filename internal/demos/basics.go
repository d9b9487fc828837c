package demos

import (
	"context"
	"fmt"
	"strings"

	"github.com/leapstack-labs/drills/internal/config"
	"github.com/leapstack-labs/drills/internal/drills"
	"github.com/leapstack-labs/drills/pkg/core"
)

func bindings(cfg config.CollatzConfig) core.RunFunc {
	return func(_ context.Context, env *core.Env) error {
		seq, err := drills.CollatzSequence(cfg.Start)
		if err != nil {
			return fmt.Errorf("collatz from %d: %w", cfg.Start, err)
		}
		env.Logger.Debug("collatz trajectory", "start", cfg.Start, "steps", len(seq)-1)
		writeln(env.Out, JoinTrajectory(seq))
		return nil
	}
}

// JoinTrajectory renders a Collatz trajectory as "a -> b -> c".
func JoinTrajectory(seq []uint64) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " -> ")
}

func compound(_ context.Context, env *core.Env) error {
	w := env.Out

	// lists
	a := drills.FilledArray()
	writef(w, "a: %v\n", a)

	// tuples
	t := drills.Pair{First: 7, Second: true}
	writef(w, "1st index: %d\n", t.First)
	writef(w, "2nd index: %t\n", t.Second)

	// references
	x := int32(10)
	drills.SetThrough(&x, 20)
	writef(w, "x: %d\n", x)

	y := int32(10)
	refY := &y
	writef(w, "ref_x: %d\n", *refY)

	// slices
	arr := [6]int32{10, 20, 30, 40, 50, 60}
	writef(w, "a: %v\n", arr)
	s, err := drills.Window(&arr, 2, 4)
	if err != nil {
		return err
	}
	writef(w, "s: %v\n", s)

	// strings
	s1 := "Hello"
	writef(w, "s1: %s\n", s1)
	s2 := "Hello "
	writef(w, "s2: %s\n", s2)
	s2 = drills.Concat(s2, s1)
	writef(w, "s2: %s\n", s2)
	return nil
}

func loops(_ context.Context, env *core.Env) error {
	w := env.Out
	array := [3]int{10, 20, 30}
	writef(w, "array: %v\n", array)

	writef(w, "Iterating over array:")
	for _, n := range array {
		writef(w, " %d", n)
	}
	writeln(w)

	writef(w, "Iterating over range:")
	for i := 0; i < 3; i++ {
		writef(w, " %d", array[i])
	}
	writeln(w)
	return nil
}
