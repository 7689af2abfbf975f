package main

import (
	"log/slog"
	"os"

	"github.com/gordian-engine/grose/internal/gtreecli"
)

func main() {
	if err := gtreecli.NewRootCommand(gtreecli.Options{}).Execute(); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("Command failed", "err", err)
		os.Exit(1)
	}
}
