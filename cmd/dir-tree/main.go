package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bethropolis/dir-tree/internal/app"
)

// Version is injected at build time via -ldflags
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := app.NewRootCommand(Version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
