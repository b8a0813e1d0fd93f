package game

import (
	"reflect"
	"testing"
)

func TestMask(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		word    string
		guessed string
		want    string
	}{
		{word: "OCEAN", guessed: "", want: "_ _ _ _ _"},
		{word: "OCEAN", guessed: "OEN", want: "O _ E _ N"},
		{word: "MIRROR", guessed: "RX", want: "_ _ R R _ R"},
		{word: "OCEAN", guessed: "NAECO", want: "O C E A N"},
		{word: "", guessed: "A", want: ""},
	}

	for _, tc := range testCases {
		if got := Mask(tc.word, []byte(tc.guessed)); got != tc.want {
			t.Errorf("Mask(%q, %q) expected %q got %q", tc.word, tc.guessed, tc.want, got)
		}
	}
}

func TestView(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	s := roundWith(ModeTwoPlayer, "OCEAN")
	s.Lives = 4
	s.Guessed = []byte("ZOQ")
	s.Scores = [2]int{80, 55}
	s.CurrentPlayer = 2
	s.Round = 3

	v := e.View(s)

	if v.Mask != "O _ _ _ _" {
		t.Errorf("unexpected mask %q", v.Mask)
	}

	if !reflect.DeepEqual(v.Guessed, []string{"Z", "O", "Q"}) || v.GuessedText() != "Z, O, Q" {
		t.Errorf("expected guesses in insertion order, got %v", v.Guessed)
	}

	if !reflect.DeepEqual(v.LifeIcons, []bool{true, true, true, true, false, false}) {
		t.Errorf("unexpected life icons %v", v.LifeIcons)
	}

	if v.WrongCount != 2 || v.PlayerName() != "Bob" || v.Round != 3 || v.MaxRounds != 5 {
		t.Errorf("unexpected view %+v", v)
	}

	if !v.GuessEnabled || v.CanAdvance {
		t.Errorf("expected guess input enabled and no next level, got %+v", v)
	}
}

func TestViewDefaults(t *testing.T) {
	t.Parallel()

	v := newTestEngine(t).View(NewState())
	if v.GuessedText() != NoGuessesText {
		t.Errorf("expected placeholder, got %q", v.GuessedText())
	}

	if v.Lives != MaxLives || v.GuessEnabled || v.Mask != "" {
		t.Errorf("unexpected default view %+v", v)
	}
}

func TestStandings(t *testing.T) {
	t.Parallel()

	s := Standings{Names: [2]string{"Alice", "Bob"}, Scores: [2]int{90, 100}}
	if s.Winner() != 2 || s.WinnerName() != "Bob" || s.Tie() {
		t.Errorf("expected Bob to win, got %+v", s)
	}

	s.Scores[0] = 100
	if !s.Tie() || s.WinnerName() != "" {
		t.Errorf("expected a tie, got %+v", s)
	}
}
