package game

import "fmt"

var (
	ErrValidation     = fmt.Errorf("validation error")
	ErrInvalidInput   = fmt.Errorf("invalid input")
	ErrDuplicateGuess = fmt.Errorf("duplicate guess")
	ErrInvalidState   = fmt.Errorf("invalid state")
)
