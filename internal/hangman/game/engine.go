package game

import (
	"fmt"
	"strings"

	"github.com/bloops-games/hangman/internal/hangman/resource"
	"github.com/google/uuid"
	"github.com/valyala/fastrand"
)

// RandFn returns a uniformly distributed number in [0, n).
type RandFn func(n uint32) uint32

type Option func(*Engine)

func WithRand(fn RandFn) Option {
	return func(e *Engine) {
		e.rnd = fn
	}
}

func WithWords(words resource.WordBank) Option {
	return func(e *Engine) {
		e.words = words
	}
}

// NewEngine creates the session controller. The engine holds no game state,
// it is safe to share between sessions.
func NewEngine(config Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		config: config,
		words:  resource.Words,
		rnd:    fastrand.Uint32n,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.config.MaxRounds < 1 {
		return nil, fmt.Errorf("max rounds must be positive, got %d", e.config.MaxRounds)
	}

	if err := e.words.Validate(); err != nil {
		return nil, fmt.Errorf("validate words: %w", err)
	}

	e.all = e.words.All()

	return e, nil
}

type Engine struct {
	config Config
	words  resource.WordBank
	all    []resource.WordEntry
	rnd    RandFn
}

func (e *Engine) Config() Config {
	return e.config
}

// View computes the display values of s without changing it.
func (e *Engine) View(s State) View {
	return newView(s, e.config)
}

// Apply dispatches ev to the matching operation. A rejected event returns s
// unchanged together with an error notification.
func (e *Engine) Apply(s State, ev Event) (State, Result, error) {
	switch ev.Kind {
	case EventKindSelectMode:
		return e.SelectMode(s, ev.Mode)
	case EventKindSubmitNames:
		return e.StartTwoPlayer(s, ev.Names[0], ev.Names[1])
	case EventKindSubmitGuess:
		return e.GuessLetter(s, ev.Letter)
	case EventKindNewGame:
		return e.newGame(s)
	case EventKindNextLevel:
		return e.AdvanceLevel(s)
	case EventKindReset:
		return e.Reset(s)
	case EventKindDealRound:
		return e.dealRound(s, ev)
	default:
		return e.reject(s, fmt.Errorf("%w: unknown event %s", ErrInvalidState, ev.Kind))
	}
}

func (e *Engine) SelectMode(s State, mode Mode) (State, Result, error) {
	if s.Mode != ModeUnset {
		return e.reject(s, fmt.Errorf("%w: mode already selected, reset first", ErrInvalidState))
	}

	switch mode {
	case ModeSinglePlayer:
		return e.StartSinglePlayer(s)
	case ModeTwoPlayer:
		next := s.clone()
		next.Phase = PhaseNamesEntry
		return e.commit(next, Result{})
	default:
		return e.reject(s, fmt.Errorf("%w: unknown mode %d", ErrInvalidInput, mode))
	}
}

func (e *Engine) StartSinglePlayer(s State) (State, Result, error) {
	if s.Mode != ModeUnset {
		return e.reject(s, fmt.Errorf("%w: mode already selected, reset first", ErrInvalidState))
	}

	var res Result
	next := NewState()
	next.ID = uuid.New()
	next.Mode = ModeSinglePlayer
	next.Level = 1
	next.Score = 0
	e.newRound(&next, &res)

	return e.commit(next, res)
}

func (e *Engine) StartTwoPlayer(s State, name1, name2 string) (State, Result, error) {
	if s.Mode != ModeUnset {
		return e.reject(s, fmt.Errorf("%w: mode already selected, reset first", ErrInvalidState))
	}

	name1, name2 = strings.TrimSpace(name1), strings.TrimSpace(name2)
	if name1 == "" || name2 == "" {
		return e.reject(s, fmt.Errorf("%w: both player names are required", ErrValidation))
	}

	var res Result
	next := NewState()
	next.ID = uuid.New()
	next.Mode = ModeTwoPlayer
	next.Names = [2]string{name1, name2}
	next.CurrentPlayer = 1
	next.Round = 1
	e.newRound(&next, &res)

	return e.commit(next, res)
}

// NewRound deals a fresh word for the current level or player.
func (e *Engine) NewRound(s State) (State, Result, error) {
	switch {
	case s.Mode == ModeUnset:
		return e.reject(s, fmt.Errorf("%w: select a mode first", ErrInvalidState))
	case s.Phase == PhaseCompleted, s.Phase == PhaseSessionEnded:
		return e.reject(s, fmt.Errorf("%w: the game is over, reset to play again", ErrInvalidState))
	}

	var res Result
	next := s.clone()
	e.newRound(&next, &res)

	return e.commit(next, res)
}

func (e *Engine) GuessLetter(s State, input string) (State, Result, error) {
	if !s.Active {
		return e.reject(s, fmt.Errorf("%w: no round in progress", ErrInvalidState))
	}

	ch, err := normalizeLetter(input)
	if err != nil {
		return e.reject(s, err)
	}

	if s.HasGuessed(ch) {
		return e.reject(s, fmt.Errorf("%w: letter %c", ErrDuplicateGuess, ch))
	}

	var res Result
	next := s.clone()
	next.Guessed = append(next.Guessed, ch)

	hit := strings.IndexByte(next.Word, ch) >= 0
	if !hit {
		next.Lives--
	}

	switch {
	case hit && next.Revealed():
		e.win(&next, &res)
	case !hit && next.Lives <= 0:
		next.Lives = 0
		e.lose(&next, &res)
	}

	return e.commit(next, res)
}

func (e *Engine) AdvanceLevel(s State) (State, Result, error) {
	switch {
	case s.Mode != ModeSinglePlayer:
		return e.reject(s, fmt.Errorf("%w: levels exist in single player mode only", ErrInvalidState))
	case s.Active:
		return e.reject(s, fmt.Errorf("%w: round in progress", ErrInvalidState))
	case s.Level >= resource.MaxLevel:
		return e.reject(s, fmt.Errorf("%w: already at the last level", ErrInvalidState))
	case s.Phase != PhaseRoundWon:
		return e.reject(s, fmt.Errorf("%w: the word was not guessed", ErrInvalidState))
	}

	var res Result
	next := s.clone()
	next.Level++
	e.newRound(&next, &res)

	return e.commit(next, res)
}

// Reset discards the session and goes back to mode selection.
func (e *Engine) Reset(State) (State, Result, error) {
	return e.commit(NewState(), Result{})
}

// newGame re-deals the current single player level, keeping the score.
func (e *Engine) newGame(s State) (State, Result, error) {
	if s.Mode != ModeSinglePlayer {
		return e.reject(s, fmt.Errorf("%w: new word is available in single player mode only", ErrInvalidState))
	}

	return e.NewRound(s)
}

// dealRound starts the next two player turn once the pause is over. Only the
// pause that scheduled ev may end it.
func (e *Engine) dealRound(s State, ev Event) (State, Result, error) {
	if s.Mode != ModeTwoPlayer || (s.Phase != PhaseRoundWon && s.Phase != PhaseRoundLost) {
		return e.reject(s, fmt.Errorf("%w: no turn is waiting to be dealt", ErrInvalidState))
	}

	if ev.Session != s.ID || ev.Round != s.Round || ev.Player != s.CurrentPlayer {
		return e.reject(s, fmt.Errorf("%w: stale turn for session %s round %d player %d", ErrInvalidState, ev.Session, ev.Round, ev.Player))
	}

	return e.NewRound(s)
}

func (e *Engine) newRound(s *State, res *Result) {
	s.Lives = MaxLives
	s.Guessed = nil
	s.Active = true
	s.Phase = PhaseRoundInProgress

	entry := e.pick(s)
	s.Word, s.Clue = entry.Word, entry.Clue

	if s.Mode == ModeTwoPlayer {
		e.notify(res, Notification{
			Kind:     NotificationKindTurn,
			Severity: SeverityInfo,
			Player:   s.PlayerName(),
			Round:    s.Round,
		})
	}
}

func (e *Engine) pick(s *State) resource.WordEntry {
	entries := e.all
	if s.Mode == ModeSinglePlayer {
		if tier, ok := e.words.Tier(s.Level); ok {
			entries = tier
		}
	}

	return entries[e.rnd(uint32(len(entries)))]
}

func (e *Engine) win(s *State, res *Result) {
	s.Active = false
	s.Phase = PhaseRoundWon
	points := Points(len(s.Word), s.Lives)

	if s.Mode == ModeSinglePlayer {
		s.Score += points
		won := Notification{
			Kind:     NotificationKindWon,
			Severity: SeveritySuccess,
			Word:     s.Word,
			Points:   points,
			Score:    s.Score,
		}

		if s.Level < resource.MaxLevel {
			won.NextLevel = s.Level + 1
			e.notify(res, won)
			return
		}

		s.Phase = PhaseCompleted
		e.notify(res, won)
		e.notify(res, Notification{
			Kind:     NotificationKindGameCompleted,
			Severity: SeveritySuccess,
			Score:    s.Score,
		})
		return
	}

	s.Scores[s.CurrentPlayer-1] += points
	e.notify(res, Notification{
		Kind:     NotificationKindWon,
		Severity: SeveritySuccess,
		Player:   s.PlayerName(),
		Word:     s.Word,
		Points:   points,
		Score:    s.Scores[s.CurrentPlayer-1],
	})
	e.advanceTurn(s, res)
}

func (e *Engine) lose(s *State, res *Result) {
	s.Active = false
	s.Phase = PhaseRoundLost

	if s.Mode == ModeSinglePlayer {
		e.notify(res, Notification{
			Kind:     NotificationKindLost,
			Severity: SeverityError,
			Word:     s.Word,
			Score:    s.Score,
		})
		return
	}

	e.notify(res, Notification{
		Kind:     NotificationKindLost,
		Severity: SeverityError,
		Player:   s.PlayerName(),
		Word:     s.Word,
	})
	e.advanceTurn(s, res)
}

// advanceTurn hands the word to the other player. A round is over once the
// second player has played; the session ends after the last round.
func (e *Engine) advanceTurn(s *State, res *Result) {
	if s.CurrentPlayer == 1 {
		s.CurrentPlayer = 2
		res.schedule(e.config.RoundDelay, DealRoundEvent(s.ID, s.Round, s.CurrentPlayer))
		return
	}

	s.CurrentPlayer = 1
	if s.Round >= e.config.MaxRounds {
		s.Phase = PhaseSessionEnded
		e.notify(res, Notification{
			Kind:      NotificationKindSessionEnded,
			Severity:  SeveritySuccess,
			Standings: Standings{Names: s.Names, Scores: s.Scores},
		})
		return
	}

	s.Round++
	res.schedule(e.config.RoundDelay, DealRoundEvent(s.ID, s.Round, s.CurrentPlayer))
}

func (e *Engine) notify(res *Result, n Notification) {
	if n.Severity != SeverityError {
		n.AutoDismiss = e.config.NotifyTimeout
	}
	res.Notifications = append(res.Notifications, n)
}

func (e *Engine) commit(s State, res Result) (State, Result, error) {
	res.View = e.View(s)
	return s, res, nil
}

func (e *Engine) reject(s State, err error) (State, Result, error) {
	res := Result{View: e.View(s)}
	e.notify(&res, Notification{Kind: NotificationKindError, Severity: SeverityError, Err: err})
	return s, res, err
}

func normalizeLetter(input string) (byte, error) {
	s := strings.TrimSpace(input)
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: enter a single letter, got %q", ErrInvalidInput, input)
	}

	ch := s[0]
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}

	if ch < 'A' || ch > 'Z' {
		return 0, fmt.Errorf("%w: enter a single letter, got %q", ErrInvalidInput, input)
	}

	return ch, nil
}
