package game

import (
	"strings"

	"github.com/google/uuid"
)

const MaxLives = 6

type Mode uint8

const (
	ModeUnset Mode = iota
	ModeSinglePlayer
	ModeTwoPlayer
)

func (m Mode) String() string {
	switch m {
	case ModeSinglePlayer:
		return "single"
	case ModeTwoPlayer:
		return "two"
	default:
		return "unset"
	}
}

type Phase uint8

const (
	PhaseModeSelect Phase = iota
	PhaseNamesEntry
	PhaseRoundInProgress
	PhaseRoundWon
	PhaseRoundLost
	PhaseCompleted
	PhaseSessionEnded
)

var phaseNames = map[Phase]string{
	PhaseModeSelect:      "mode_select",
	PhaseNamesEntry:      "names_entry",
	PhaseRoundInProgress: "round_in_progress",
	PhaseRoundWon:        "round_won",
	PhaseRoundLost:       "round_lost",
	PhaseCompleted:       "completed",
	PhaseSessionEnded:    "session_ended",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// State is everything a game session owns. It is a value: operations take a
// State and return a new one, the input is never modified.
type State struct {
	ID    uuid.UUID
	Mode  Mode
	Phase Phase

	// single player
	Level int
	Score int

	// two player
	Names         [2]string
	Scores        [2]int
	Round         int
	CurrentPlayer int

	// current round
	Word    string
	Clue    string
	Lives   int
	Guessed []byte
	Active  bool
}

// NewState returns the defaults shown before a mode is selected.
func NewState() State {
	return State{
		Phase:         PhaseModeSelect,
		Level:         1,
		Round:         1,
		CurrentPlayer: 1,
		Lives:         MaxLives,
	}
}

func (s State) clone() State {
	if s.Guessed != nil {
		guessed := make([]byte, len(s.Guessed))
		copy(guessed, s.Guessed)
		s.Guessed = guessed
	}
	return s
}

func (s State) HasGuessed(ch byte) bool {
	for _, g := range s.Guessed {
		if g == ch {
			return true
		}
	}
	return false
}

// Revealed reports whether every letter of the word has been guessed.
func (s State) Revealed() bool {
	if s.Word == "" {
		return false
	}

	for i := 0; i < len(s.Word); i++ {
		if !s.HasGuessed(s.Word[i]) {
			return false
		}
	}

	return true
}

// WrongCount is the number of guessed letters absent from the word.
func (s State) WrongCount() int {
	var n int
	for _, g := range s.Guessed {
		if strings.IndexByte(s.Word, g) < 0 {
			n++
		}
	}
	return n
}

func (s State) PlayerName() string {
	if s.CurrentPlayer < 1 || s.CurrentPlayer > len(s.Names) {
		return ""
	}
	return s.Names[s.CurrentPlayer-1]
}
