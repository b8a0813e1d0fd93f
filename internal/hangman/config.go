package hangman

import "github.com/bloops-games/hangman/internal/hangman/game"

type Config struct {
	// Logging every applied event
	Debug bool `envconfig:"HANGMAN_DEBUG" default:"false"`

	// Number of cached illustrations (wrong count x canvas size)
	CacheSize int `envconfig:"HANGMAN_CACHE_SIZE" default:"64"`

	// Size of the illustration in terminal cells, every cell is printed two characters wide
	CanvasWidth  int `envconfig:"HANGMAN_CANVAS_WIDTH" default:"20"`
	CanvasHeight int `envconfig:"HANGMAN_CANVAS_HEIGHT" default:"25"`

	game.Config
}
