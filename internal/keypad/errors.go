package keypad

import (
	"errors"
	"fmt"
)

var (
	// ErrBlocked is returned when a command moves the cursor off the grid.
	ErrBlocked = errors.New("move leaves keypad")
	// ErrEmptyCode is returned for a blank code line.
	ErrEmptyCode = errors.New("empty code")
)

// InvalidButtonError reports a character that is not a button of a keypad.
type InvalidButtonError struct {
	Keypad Kind
	Char   rune
	Pos    int
}

func (e *InvalidButtonError) Error() string {
	return fmt.Sprintf("invalid %s keypad button %q at position %d", e.Keypad, e.Char, e.Pos)
}
