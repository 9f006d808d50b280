package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZertGraf/pachca-tags/internal/bootstrap"
	"github.com/ZertGraf/pachca-tags/internal/domain"
)

const version = "0.1.0"

func main() {
	// create context cancelled on ctrl-c
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.New()
	if err != nil {
		if errors.Is(err, domain.ErrMissingToken) {
			fmt.Printf("Error: %v\n", domain.ErrMissingToken)
		} else {
			fmt.Printf("failed to initialize application: %v\n", err)
		}
		os.Exit(1)
	}

	setupGracefulShutdown(ctx, cancel, app)

	app.Init(os.Stdin, os.Stdout)
	app.Logger.Info("starting tagsync", "version", version, "log_level", app.Config.LogLevel)

	if err = app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		app.Logger.Error("menu loop failed", "error", err)
		os.Exit(1)
	}

	app.Logger.Info("tagsync stopped")
}

// setupGracefulShutdown cancels the main context on SIGINT/SIGTERM so
// in-flight api calls are aborted and the menu returns.
func setupGracefulShutdown(ctx context.Context, cancel context.CancelFunc, app *bootstrap.Application) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			app.Logger.Info("received shutdown signal", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()
}
