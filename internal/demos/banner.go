package demos

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/drills/internal/config"
	"github.com/leapstack-labs/drills/internal/drills"
	"github.com/leapstack-labs/drills/pkg/core"
)

func banner(cfg config.BannerConfig) core.RunFunc {
	return func(_ context.Context, env *core.Env) error {
		for _, msg := range cfg.Messages {
			out, err := drills.Say(msg, cfg.Width)
			if err != nil {
				return fmt.Errorf("banner %q: %w", msg, err)
			}
			writeln(env.Out, out)
		}
		writeln(env.Out, "Done.")
		return nil
	}
}
