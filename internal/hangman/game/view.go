package game

import (
	"strings"

	"github.com/bloops-games/hangman/internal/hangman/resource"
)

const NoGuessesText = "None yet"

// View holds the derived values the display shows after every transition.
type View struct {
	Mode  Mode
	Phase Phase

	Mask    string
	Clue    string
	Guessed []string

	Lives     int
	MaxLives  int
	LifeIcons []bool

	Level    int
	MaxLevel int
	Score    int

	Names         [2]string
	Scores        [2]int
	Round         int
	MaxRounds     int
	CurrentPlayer int

	CanAdvance   bool
	GuessEnabled bool
	WrongCount   int
}

func (v View) GuessedText() string {
	if len(v.Guessed) == 0 {
		return NoGuessesText
	}
	return strings.Join(v.Guessed, ", ")
}

func (v View) PlayerName() string {
	if v.CurrentPlayer < 1 || v.CurrentPlayer > len(v.Names) {
		return ""
	}
	return v.Names[v.CurrentPlayer-1]
}

// Mask shows guessed letters of word and an underscore for the others,
// separated by spaces: "O _ E _ N".
func Mask(word string, guessed []byte) string {
	if word == "" {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(word); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}

		ch := byte('_')
		for _, g := range guessed {
			if g == word[i] {
				ch = word[i]
				break
			}
		}
		b.WriteByte(ch)
	}

	return b.String()
}

func newView(s State, config Config) View {
	v := View{
		Mode:          s.Mode,
		Phase:         s.Phase,
		Mask:          Mask(s.Word, s.Guessed),
		Clue:          s.Clue,
		Lives:         s.Lives,
		MaxLives:      MaxLives,
		LifeIcons:     make([]bool, MaxLives),
		Level:         s.Level,
		MaxLevel:      resource.MaxLevel,
		Score:         s.Score,
		Names:         s.Names,
		Scores:        s.Scores,
		Round:         s.Round,
		MaxRounds:     config.MaxRounds,
		CurrentPlayer: s.CurrentPlayer,
		GuessEnabled:  s.Active,
		WrongCount:    s.WrongCount(),
	}

	for i := range v.LifeIcons {
		v.LifeIcons[i] = i < s.Lives
	}

	if len(s.Guessed) > 0 {
		v.Guessed = make([]string, len(s.Guessed))
		for i, g := range s.Guessed {
			v.Guessed[i] = string(g)
		}
	}

	v.CanAdvance = s.Mode == ModeSinglePlayer && s.Phase == PhaseRoundWon && s.Level < resource.MaxLevel

	return v
}
