package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hekt/recognition-sdk/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := app.New()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
