package game

import "time"

type Severity uint8

const (
	SeverityInfo Severity = iota + 1
	SeveritySuccess
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

type NotificationKind uint8

const (
	NotificationKindError NotificationKind = iota + 1
	NotificationKindTurn
	NotificationKindWon
	NotificationKindLost
	NotificationKindGameCompleted
	NotificationKindSessionEnded
)

// Notification is a modal message for the player. Only the fields relevant
// to its Kind are set.
type Notification struct {
	Kind     NotificationKind
	Severity Severity
	Err      error

	Player    string
	Word      string
	Points    int
	Score     int
	Round     int
	NextLevel int
	Standings Standings

	// Zero means the player has to dismiss it
	AutoDismiss time.Duration
}

// Standings are the final two player scores.
type Standings struct {
	Names  [2]string
	Scores [2]int
}

// Winner returns 1 or 2, or 0 when the scores are equal.
func (s Standings) Winner() int {
	switch {
	case s.Scores[0] > s.Scores[1]:
		return 1
	case s.Scores[1] > s.Scores[0]:
		return 2
	default:
		return 0
	}
}

func (s Standings) Tie() bool {
	return s.Winner() == 0
}

func (s Standings) WinnerName() string {
	if w := s.Winner(); w > 0 {
		return s.Names[w-1]
	}
	return ""
}

// Effect asks the runtime to feed Event back into Apply once After elapsed.
type Effect struct {
	After time.Duration
	Event Event
}

// Result is what a transition hands to the display.
type Result struct {
	View          View
	Notifications []Notification
	Effects       []Effect
}

func (r *Result) schedule(after time.Duration, ev Event) {
	r.Effects = append(r.Effects, Effect{After: after, Event: ev})
}
