package hangman

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bloops-games/hangman/internal/hangman/drawing"
	"github.com/bloops-games/hangman/internal/hangman/game"
	"github.com/bloops-games/hangman/internal/hangman/resource"
	"github.com/bloops-games/hangman/internal/logging"
	"golang.org/x/sync/errgroup"
)

var (
	errQuit        = fmt.Errorf("quit")
	errUnknownMode = fmt.Errorf("%w: unknown mode", game.ErrInvalidInput)
)

func NewManager(config *Config, engine *game.Engine, renderer *drawing.Renderer, in io.Reader, out io.Writer) *manager {
	return &manager{
		config:   config,
		engine:   engine,
		renderer: renderer,
		in:       in,
		out:      out,
		state:    game.NewState(),
		events:   make(chan game.Event),
		effects:  make(chan game.Effect, 1),
	}
}

type manager struct {
	config   *Config
	engine   *game.Engine
	renderer *drawing.Renderer

	in  io.Reader
	out io.Writer

	state game.State
	// waiting for y/n after reset
	confirmReset bool

	// scheduled events coming back from timers
	events  chan game.Event
	effects chan game.Effect
}

// Run reads commands until quit, end of input or ctx is done.
func (m *manager) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// a blocked read can not be interrupted, the reader is left behind on shutdown
	lines := make(chan string)
	go m.read(ctx, lines)

	m.draw(ctx, game.Result{View: m.engine.View(m.state)})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.loop(ctx, lines)
	})
	g.Go(func() error {
		return m.schedule(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}

	return nil
}

func (m *manager) read(ctx context.Context, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(m.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}

	if err := scanner.Err(); err != nil {
		logging.FromContext(ctx).Named("hangman.read").Errorf("scan input: %v", err)
	}
}

func (m *manager) loop(ctx context.Context, lines <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			if err := m.handleLine(ctx, line); err != nil {
				return err
			}
		case ev := <-m.events:
			m.dispatch(ctx, ev)
		}
	}
}

// schedule turns effects into timers feeding the event loop.
func (m *manager) schedule(ctx context.Context) error {
	var timers []*time.Timer
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case effect := <-m.effects:
			ev := effect.Event
			timers = append(timers, time.AfterFunc(effect.After, func() {
				select {
				case m.events <- ev:
				case <-ctx.Done():
				}
			}))
		}
	}
}

func (m *manager) handleLine(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	cmd := strings.ToLower(line)

	if m.confirmReset {
		m.confirmReset = false
		switch cmd {
		case "y", "yes":
			m.dispatch(ctx, game.ResetEvent())
		default:
			m.println(resource.TextResetCancelled)
		}
		return nil
	}

	switch cmd {
	case "":
		return nil
	case "quit", "exit":
		m.println(resource.TextBye)
		return errQuit
	case "help":
		m.println(resource.TextHelp)
		return nil
	case "reset":
		if m.state.Mode == game.ModeUnset && m.state.Phase == game.PhaseModeSelect {
			m.dispatch(ctx, game.ResetEvent())
			return nil
		}
		m.confirmReset = true
		m.println(resource.TextConfirmReset)
		return nil
	case "new":
		m.dispatch(ctx, game.NewGameEvent())
		return nil
	case "next":
		m.dispatch(ctx, game.NextLevelEvent())
		return nil
	}

	switch m.state.Phase {
	case game.PhaseModeSelect:
		mode := parseMode(cmd)
		if mode == game.ModeUnset {
			m.println(renderNotification(game.Notification{
				Kind:     game.NotificationKindError,
				Severity: game.SeverityError,
				Err:      errUnknownMode,
			}))
			return nil
		}
		m.dispatch(ctx, game.SelectModeEvent(mode))
	case game.PhaseNamesEntry:
		name1, name2 := parseNames(line)
		m.dispatch(ctx, game.SubmitNamesEvent(name1, name2))
	default:
		m.dispatch(ctx, game.SubmitGuessEvent(line))
	}

	return nil
}

func (m *manager) dispatch(ctx context.Context, ev game.Event) {
	logger := logging.FromContext(ctx).Named("hangman.dispatch")
	next, res, err := m.engine.Apply(m.state, ev)
	if err != nil {
		logger.Debugf("session %s: %s rejected: %v", m.state.ID, ev, err)
		// a turn dealt after a reset is stale, nothing to show
		if ev.Kind == game.EventKindDealRound {
			return
		}
	} else {
		logger.Debugf("session %s: %s applied, phase %s", next.ID, ev, next.Phase)
	}

	m.state = next
	m.draw(ctx, res)

	for _, effect := range res.Effects {
		select {
		case m.effects <- effect:
		case <-ctx.Done():
			return
		}
	}
}

func (m *manager) draw(ctx context.Context, res game.Result) {
	if res.View.Mode != game.ModeUnset {
		canvas := NewTextCanvas(m.config.CanvasWidth, m.config.CanvasHeight)
		err := m.renderer.Draw(
			canvas,
			res.View.WrongCount,
			float64(m.config.CanvasWidth),
			float64(m.config.CanvasHeight),
		)
		if err != nil {
			logging.FromContext(ctx).Named("hangman.draw").Errorf("draw illustration: %v", err)
		} else {
			m.println(canvas.String())
		}
	}

	m.println(renderView(res.View))
	for _, n := range res.Notifications {
		m.println(renderNotification(n))
	}
}

func (m *manager) println(text string) {
	_, _ = fmt.Fprintln(m.out, text)
}

func parseMode(cmd string) game.Mode {
	switch cmd {
	case "1", "single":
		return game.ModeSinglePlayer
	case "2", "two":
		return game.ModeTwoPlayer
	default:
		return game.ModeUnset
	}
}

func parseNames(line string) (string, string) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
