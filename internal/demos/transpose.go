package demos

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/drills/internal/config"
	"github.com/leapstack-labs/drills/internal/drills"
	"github.com/leapstack-labs/drills/pkg/core"
)

func transpose(cfg config.TransposeConfig) core.RunFunc {
	return func(_ context.Context, env *core.Env) error {
		m, err := drills.ParseMatrix3(cfg.Matrix)
		if err != nil {
			return fmt.Errorf("transpose input: %w", err)
		}

		writeln(env.Out, "matrix:")
		printMatrix(env, m)

		writeln(env.Out, "transposed:")
		printMatrix(env, drills.Transpose(m))
		return nil
	}
}

func printMatrix(env *core.Env, m drills.Matrix3) {
	for i := range m {
		writeln(env.Out, m.RowString(i))
	}
}
