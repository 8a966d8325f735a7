package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/exemplar/cmd/exemplar/commands"
)

// Version information (set via ldflags during build)
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel inflight runs on interrupt instead of dying mid-report.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := commands.Execute(ctx, Version, Commit); err != nil {
		os.Exit(1)
	}
}
