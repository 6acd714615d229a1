// Command server runs the swimreg HTTP API.
//
// Configuration comes from environment variables (and an optional config
// file, see internal/config). The process shuts down gracefully on SIGINT
// and SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/laneline/swimreg-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
