package game

import (
	"fmt"

	"github.com/google/uuid"
)

type EventKind uint8

const (
	EventKindSelectMode EventKind = iota + 1
	EventKindSubmitNames
	EventKindSubmitGuess
	EventKindNewGame
	EventKindNextLevel
	EventKindReset
	// delivered by the runtime when a scheduled Effect fires
	EventKindDealRound
)

var eventNames = map[EventKind]string{
	EventKindSelectMode:  "select_mode",
	EventKindSubmitNames: "submit_names",
	EventKindSubmitGuess: "submit_guess",
	EventKindNewGame:     "new_game",
	EventKindNextLevel:   "next_level",
	EventKindReset:       "reset",
	EventKindDealRound:   "deal_round",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", uint8(k))
}

// Event is an input consumed by Engine.Apply.
type Event struct {
	Kind   EventKind
	Mode   Mode
	Names  [2]string
	Letter string

	// DealRound is bound to the session, round and player it was scheduled for
	Session uuid.UUID
	Round   int
	Player  int
}

func (e Event) String() string {
	switch e.Kind {
	case EventKindSelectMode:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Mode)
	case EventKindSubmitGuess:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Letter)
	case EventKindDealRound:
		return fmt.Sprintf("%s(%s round %d player %d)", e.Kind, e.Session, e.Round, e.Player)
	default:
		return e.Kind.String()
	}
}

func SelectModeEvent(mode Mode) Event {
	return Event{Kind: EventKindSelectMode, Mode: mode}
}

func SubmitNamesEvent(name1, name2 string) Event {
	return Event{Kind: EventKindSubmitNames, Names: [2]string{name1, name2}}
}

func SubmitGuessEvent(letter string) Event {
	return Event{Kind: EventKindSubmitGuess, Letter: letter}
}

func NewGameEvent() Event {
	return Event{Kind: EventKindNewGame}
}

func NextLevelEvent() Event {
	return Event{Kind: EventKindNextLevel}
}

func ResetEvent() Event {
	return Event{Kind: EventKindReset}
}

func DealRoundEvent(session uuid.UUID, round, player int) Event {
	return Event{Kind: EventKindDealRound, Session: session, Round: round, Player: player}
}
