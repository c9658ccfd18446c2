package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"llmtools/internal/cli"
)

func main() {
	// Ctrl+C / SIGTERM cancel the context; serve shuts down gracefully.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Main(ctx, os.Args[1:], nil)
	stop()
	os.Exit(code)
}
