// Package main provides the drills command-line entry point.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/leapstack-labs/drills/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
