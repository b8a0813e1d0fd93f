package main

import (
	"fmt"
	"os"

	"github.com/bloops-games/hangman/internal/cache"
	"github.com/bloops-games/hangman/internal/hangman"
	"github.com/bloops-games/hangman/internal/hangman/drawing"
	"github.com/bloops-games/hangman/internal/hangman/game"
	"github.com/bloops-games/hangman/internal/hangman/resource"
	"github.com/bloops-games/hangman/internal/logging"
	"github.com/bloops-games/hangman/internal/shutdown"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, resource.Graffiti)
	_, _ = fmt.Fprintf(os.Stdout, resource.GreetingCLI, resource.ProjectName, resource.ProjectVersion)

	ctx, done := shutdown.New()
	defer done()

	logger := logging.FromContext(ctx)
	config := hangman.Config{}
	if err := envconfig.Process("", &config); err != nil {
		logger.Fatalf("processing the config: %v", err)
	}

	logger = logging.NewLogger(config.Debug).Named("hangman")
	ctx = logging.WithLogger(ctx, logger)

	engine, err := game.NewEngine(config.Config)
	if err != nil {
		logger.Fatalf("new engine: %v", err)
	}

	illustrations, err := cache.NewLRU(config.CacheSize)
	if err != nil {
		logger.Fatalf("can not create lru cache: %v", err)
	}

	manager := hangman.NewManager(&config, engine, drawing.NewRenderer(illustrations), os.Stdin, os.Stdout)
	if err := manager.Run(ctx); err != nil {
		logger.Fatalf("run: %v", err)
	}
}
