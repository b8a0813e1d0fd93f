package hangman

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bloops-games/hangman/internal/hangman/game"
	"github.com/bloops-games/hangman/internal/hangman/resource"
	"github.com/bloops-games/hangman/internal/strpool"
)

const frame = "----------------------------------------"

func renderLives(v game.View) string {
	buf := strpool.Get()
	defer func() {
		buf.Reset()
		strpool.Put(buf)
	}()

	for _, full := range v.LifeIcons {
		if full {
			buf.WriteString(resource.TextLifeFull)
		} else {
			buf.WriteString(resource.TextLifeEmpty)
		}
	}

	return fmt.Sprintf(resource.TextLives, buf.String(), v.Lives)
}

func renderView(v game.View) string {
	buf := strpool.Get()
	defer func() {
		buf.Reset()
		strpool.Put(buf)
	}()

	switch v.Phase {
	case game.PhaseModeSelect:
		_, _ = fmt.Fprintf(buf, resource.TextWord+"\n", resource.TextPlaceholderMask)
		_, _ = fmt.Fprintf(buf, resource.TextClue+"\n", resource.TextPlaceholderClue)
		_, _ = fmt.Fprintf(buf, resource.TextGuessed+"\n", game.NoGuessesText)
		_, _ = fmt.Fprintf(buf, "%s\n\n", renderLives(v))
		buf.WriteString(resource.TextSelectMode)
		return buf.String()
	case game.PhaseNamesEntry:
		buf.WriteString(resource.TextEnterNames)
		return buf.String()
	}

	switch v.Mode {
	case game.ModeSinglePlayer:
		_, _ = fmt.Fprintf(buf, "%s\n", resource.TextSinglePlayerTitle)
		_, _ = fmt.Fprintf(buf, resource.TextLevel+"\n\n", v.Level, v.MaxLevel, v.Score)
	case game.ModeTwoPlayer:
		_, _ = fmt.Fprintf(buf, "%s\n", resource.TextTwoPlayerTitle)
		_, _ = fmt.Fprintf(buf, resource.TextRound+"\n", v.Round, v.MaxRounds, v.PlayerName())
		_, _ = fmt.Fprintf(buf, resource.TextPlayerScore+"   ", v.Names[0], v.Scores[0])
		_, _ = fmt.Fprintf(buf, resource.TextPlayerScore+"\n\n", v.Names[1], v.Scores[1])
	}

	_, _ = fmt.Fprintf(buf, resource.TextWord+"\n", v.Mask)
	_, _ = fmt.Fprintf(buf, resource.TextClue+"\n", v.Clue)
	_, _ = fmt.Fprintf(buf, resource.TextGuessed+"\n", v.GuessedText())
	_, _ = fmt.Fprintf(buf, "%s\n", renderLives(v))

	switch {
	case v.GuessEnabled:
		_, _ = fmt.Fprintf(buf, "\n%s", resource.TextGuessPrompt)
	case v.CanAdvance:
		_, _ = fmt.Fprintf(buf, "\n%s", resource.TextNextLevelPrompt)
	case v.Phase == game.PhaseCompleted, v.Phase == game.PhaseSessionEnded:
		_, _ = fmt.Fprintf(buf, "\n%s", resource.TextPlayAgainPrompt)
	case v.Mode == game.ModeSinglePlayer && v.Phase == game.PhaseRoundLost:
		_, _ = fmt.Fprintf(buf, "\n%s", resource.TextRetryPrompt)
	}

	return buf.String()
}

func renderError(err error) string {
	switch {
	case errors.Is(err, errUnknownMode):
		return resource.TextSelectModeErr
	case errors.Is(err, game.ErrValidation):
		return resource.TextEnterNamesErr
	case errors.Is(err, game.ErrInvalidInput):
		return resource.TextSingleLetterErr
	case errors.Is(err, game.ErrDuplicateGuess):
		return resource.TextDuplicateErr
	default:
		return err.Error()
	}
}

func renderNotification(n game.Notification) string {
	var text string
	switch n.Kind {
	case game.NotificationKindError:
		text = fmt.Sprintf(resource.TextErrorMsg, renderError(n.Err))
	case game.NotificationKindTurn:
		text = fmt.Sprintf(resource.TextTurnMsg, n.Round, n.Player)
	case game.NotificationKindWon:
		if n.Player != "" {
			text = fmt.Sprintf(resource.TextPlayerWonMsg, n.Player, n.Word, n.Points)
			break
		}
		text = fmt.Sprintf(resource.TextWonMsg, n.Points, n.Word)
		if n.NextLevel > 0 {
			text += fmt.Sprintf(resource.TextReadyNextLevelMsg, n.NextLevel)
		}
	case game.NotificationKindLost:
		if n.Player != "" {
			text = fmt.Sprintf(resource.TextPlayerLostMsg, n.Player, n.Word)
			break
		}
		text = fmt.Sprintf(resource.TextLostMsg, n.Word, n.Score)
	case game.NotificationKindGameCompleted:
		text = fmt.Sprintf(resource.TextGameCompletedMsg, n.Score)
	case game.NotificationKindSessionEnded:
		winner := n.Standings.WinnerName()
		if n.Standings.Tie() {
			winner = resource.TextTie
		}
		text = fmt.Sprintf(
			resource.TextSessionEndedMsg,
			n.Standings.Names[0],
			n.Standings.Scores[0],
			n.Standings.Names[1],
			n.Standings.Scores[1],
			winner,
		)
	}

	buf := strpool.Get()
	defer func() {
		buf.Reset()
		strpool.Put(buf)
	}()

	_, _ = fmt.Fprintf(buf, "%s [%s]\n", frame[:len(frame)-len(n.Severity.String())-3], strings.ToUpper(n.Severity.String()))
	buf.WriteString(text)
	_, _ = fmt.Fprintf(buf, "\n%s", frame)

	return buf.String()
}
