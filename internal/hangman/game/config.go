package game

import "time"

const (
	defaultMaxRounds     = 5
	defaultRoundDelay    = 2 * time.Second
	defaultNotifyTimeout = 5 * time.Second
)

type Config struct {
	// Number of rounds in the two player mode, each player guesses once per round
	MaxRounds int `envconfig:"HANGMAN_MAX_ROUNDS" default:"5"`

	// Pause between a resolved two player turn and the next dealt word
	RoundDelay time.Duration `envconfig:"HANGMAN_ROUND_DELAY" default:"2s"`

	// How long info and success notifications stay on screen
	NotifyTimeout time.Duration `envconfig:"HANGMAN_NOTIFY_TIMEOUT" default:"5s"`
}

func DefaultConfig() Config {
	return Config{
		MaxRounds:     defaultMaxRounds,
		RoundDelay:    defaultRoundDelay,
		NotifyTimeout: defaultNotifyTimeout,
	}
}
