package demos

import (
	"context"

	"github.com/leapstack-labs/drills/internal/config"
	"github.com/leapstack-labs/drills/internal/drills"
	"github.com/leapstack-labs/drills/pkg/core"
)

func fizzBuzz(cfg config.FizzBuzzConfig) core.RunFunc {
	return func(_ context.Context, env *core.Env) error {
		for _, line := range drills.FizzBuzzTo(cfg.Limit) {
			writeln(env.Out, line)
		}
		return nil
	}
}

func generics(_ context.Context, env *core.Env) error {
	writef(env.Out, "coin toss: %s\n", drills.PickOne("heads", "tails"))
	writef(env.Out, "cash prize: %d\n", drills.PickOne(500, 1000))
	return nil
}

func conversions(_ context.Context, env *core.Env) error {
	x := int8(15)
	y := int16(1000)
	writef(env.Out, "%d * %d = %d\n", x, y, drills.Multiply(drills.Widen[int16](x), y))
	return nil
}

func structs(cfg config.RectangleConfig) core.RunFunc {
	return func(_ context.Context, env *core.Env) error {
		rect := drills.Rectangle{Width: cfg.Width, Height: cfg.Height}
		writef(env.Out, "old area: %d\n", rect.Area())
		rect.IncWidth(cfg.Delta)
		writef(env.Out, "new area: %d\n", rect.Area())
		return nil
	}
}
