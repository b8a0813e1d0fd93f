package resource

import "github.com/enescakir/emoji"

const (
	ProjectName    = "hangman"
	ProjectVersion = "v0.1.0"
)

var Graffiti = `
 _
| |__   __ _ _ __   __ _ _ __ ___   __ _ _ __
| '_ \ / _' | '_ \ / _' | '_ ' _ \ / _' | '_ \
| | | | (_| | | | | (_| | | | | | | (_| | | | |
|_| |_|\__,_|_| |_|\__, |_| |_| |_|\__,_|_| |_|
                   |___/
`

var GreetingCLI = "%s %s - guess the word with cryptic clues! Type help for commands\n\n"

// lives
var (
	TextLifeFull  = emoji.RedHeart.String()
	TextLifeEmpty = emoji.BlackHeart.String()
)

// display
var (
	TextSelectMode        = emoji.Joystick.String() + " Select a game mode: 1 single player, 2 two players"
	TextEnterNames        = emoji.VideoGame.String() + " Two Player Challenge Mode! Enter both player names separated by a comma"
	TextSinglePlayerTitle = "Guess the word with cryptic clues!"
	TextTwoPlayerTitle    = "Two Player Challenge Mode!"
	TextPlaceholderMask   = "_ _ _ _ _"
	TextPlaceholderClue   = "Select a game mode to start!"
	TextLevel             = "Level: %d/%d   Score: %d"
	TextRound             = "Round: %d/%d   %s's Turn"
	TextPlayerScore       = "%s: %d"
	TextWord              = "Word:    %s"
	TextClue              = "Clue:    %s"
	TextGuessed           = "Guessed: %s"
	TextLives             = "Lives:   %s (%d)"
	TextGuessPrompt       = "Type a letter to guess"
	TextNextLevelPrompt   = emoji.Rocket.String() + " Type next for the next level or new for another word"
	TextRetryPrompt       = "Type new to try another word"
	TextPlayAgainPrompt   = emoji.ChequeredFlag.String() + " Type reset to play again"
	TextConfirmReset      = "Are you sure you want to reset the game? All progress will be lost. (y/n)"
	TextResetCancelled    = "Reset cancelled"
	TextBye               = "Bye!"
)

var TextHelp = emoji.Bookmark.String() + " Commands\n\n" +
	"1 or single - single player, five levels of growing words\n" +
	"2 or two - two players take turns for five rounds\n" +
	"A..Z - guess a letter\n" +
	"new - deal another word on the current level\n" +
	"next - go to the next level after a guessed word\n" +
	"reset - start over\n" +
	"help - show this message\n" +
	"quit - leave the game"

// notifications
var (
	TextWonMsg            = emoji.PartyPopper.String() + " Congratulations! You earned %d points!\n\nWord: %s"
	TextReadyNextLevelMsg = "\nReady for Level %d?"
	TextGameCompletedMsg  = emoji.Trophy.String() + " GAME COMPLETED!\n\nFinal Score: %d\nYou've mastered all levels!"
	TextPlayerWonMsg      = emoji.PartyPopper.String() + " %s guessed correctly!\n\nWord: %s\nPoints earned: %d"
	TextLostMsg           = emoji.Skull.String() + " Game Over!\n\nThe word was: %s\nFinal Score: %d"
	TextPlayerLostMsg     = emoji.Skull.String() + " %s failed to guess the word!\n\nThe word was: %s"
	TextTurnMsg           = emoji.VideoGame.String() + " Round %d: %s's turn"
	TextSessionEndedMsg   = emoji.Trophy.String() + " GAME OVER!\n\n%s: %d points\n%s: %d points\n\nWinner: %s"
	TextTie               = "It's a tie!"
	TextErrorMsg          = emoji.CrossMark.String() + " %s"
	TextSelectModeErr     = "Please type 1 or 2!"
	TextEnterNamesErr     = "Please enter both player names!"
	TextSingleLetterErr   = "Please enter a single letter!"
	TextDuplicateErr      = "You already guessed that letter!"
)
