// Package keypad defines the numeric and directional keypads of a robot chain
// and the cursor moves allowed on them.
package keypad

import (
	"fmt"
	"strings"
)

// Button is a key on a keypad, identified by its glyph.
type Button byte

func (b Button) String() string { return string(b) }

// Command is a primitive action a layer issues to the keypad beneath it.
type Command byte

// Commands. A directional keypad carries exactly these as buttons.
const (
	Up       Command = '^'
	Down     Command = 'v'
	Left     Command = '<'
	Right    Command = '>'
	Activate Command = 'A'
)

// A is the activate button present on both keypads.
const A = Button(Activate)

// Moves are the commands moving the cursor.
var Moves = [...]Command{Up, Down, Left, Right}

// Button returns the directional keypad button of c.
func (c Command) Button() Button { return Button(c) }

func (c Command) String() string { return string(c) }

// Inverse returns the command undoing a move. Activate is its own inverse.
func (c Command) Inverse() Command {
	switch c {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return c
}

func (c Command) delta() (dx, dy int) {
	switch c {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Kind selects one of the two keypad layouts.
type Kind int

// Keypad kinds.
const (
	NumericKind Kind = iota
	DirectionalKind
)

func (k Kind) String() string {
	switch k {
	case NumericKind:
		return "numeric"
	case DirectionalKind:
		return "directional"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type coord struct{ x, y int }

// Keypad is an immutable grid of buttons.
type Keypad struct {
	kind    Kind
	pos     map[Button]coord
	at      map[coord]Button
	buttons []Button
}

// gap marks the missing corner in a layout row.
const gap = ' '

func newKeypad(kind Kind, rows ...string) *Keypad {
	k := &Keypad{kind: kind, pos: map[Button]coord{}, at: map[coord]Button{}}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == gap {
				continue
			}
			b, c := Button(row[x]), coord{x, y}
			k.pos[b] = c
			k.at[c] = b
			k.buttons = append(k.buttons, b)
		}
	}
	return k
}

// The two keypads of the chain.
//
//	+---+---+---+          +---+---+
//	| 7 | 8 | 9 |          | ^ | A |
//	+---+---+---+      +---+---+---+
//	| 4 | 5 | 6 |      | < | v | > |
//	+---+---+---+      +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
var (
	Numeric     = newKeypad(NumericKind, "789", "456", "123", " 0A")
	Directional = newKeypad(DirectionalKind, " ^A", "<v>")
)

// Kind returns the layout kind of k.
func (k *Keypad) Kind() Kind { return k.kind }

func (k *Keypad) String() string { return k.kind.String() }

// Start returns the button the cursor rests on before any command.
func (k *Keypad) Start() Button { return A }

// Has reports whether b is a button of k.
func (k *Keypad) Has(b Button) bool {
	_, ok := k.pos[b]
	return ok
}

// Buttons returns the buttons of k in row-major order.
func (k *Keypad) Buttons() []Button {
	buttons := make([]Button, len(k.buttons))
	copy(buttons, k.buttons)
	return buttons
}

// Apply returns the button reached by applying c with the cursor on b.
// Activate keeps the cursor in place. ok is false if b is not on k or the
// move would leave the grid.
func (k *Keypad) Apply(b Button, c Command) (next Button, ok bool) {
	p, ok := k.pos[b]
	if !ok {
		return 0, false
	}
	if c == Activate {
		return b, true
	}
	dx, dy := c.delta()
	if dx == 0 && dy == 0 {
		return 0, false
	}
	next, ok = k.at[coord{p.x + dx, p.y + dy}]
	return next, ok
}

// Validate checks that all buttons belong to k.
func (k *Keypad) Validate(buttons []Button) error {
	for i, b := range buttons {
		if !k.Has(b) {
			return &InvalidButtonError{Keypad: k.kind, Char: rune(b), Pos: i}
		}
	}
	return nil
}

// Parse converts s into buttons of k.
func (k *Keypad) Parse(s string) ([]Button, error) {
	buttons := make([]Button, 0, len(s))
	for i, r := range s {
		if r > 0xff || !k.Has(Button(r)) {
			return nil, &InvalidButtonError{Keypad: k.kind, Char: r, Pos: i}
		}
		buttons = append(buttons, Button(r))
	}
	return buttons, nil
}

// Execute runs commands on k starting at the start button and returns the
// buttons activated.
func (k *Keypad) Execute(commands []Command) ([]Button, error) {
	var pressed []Button
	cur := k.Start()
	for i, c := range commands {
		if c == Activate {
			pressed = append(pressed, cur)
			continue
		}
		next, ok := k.Apply(cur, c)
		if !ok {
			return nil, fmt.Errorf("%w: %s keypad, command %d %q at button %q", ErrBlocked, k, i, c, cur)
		}
		cur = next
	}
	return pressed, nil
}

// ParseCode parses one line of the numeric keypad, e.g. "029A".
func ParseCode(s string) ([]Button, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyCode
	}
	return Numeric.Parse(s)
}

// NumericValue returns the number formed by the digits of code.
func NumericValue(code []Button) int64 {
	var v int64
	for _, b := range code {
		if b >= '0' && b <= '9' {
			v = v*10 + int64(b-'0')
		}
	}
	return v
}

// Format renders buttons as their glyphs.
func Format(buttons []Button) string {
	var sb strings.Builder
	sb.Grow(len(buttons))
	for _, b := range buttons {
		sb.WriteByte(byte(b))
	}
	return sb.String()
}

// FormatCommands renders commands as "^v<>A" glyphs.
func FormatCommands(commands []Command) string {
	return Format(ButtonsOf(commands))
}

// ParseCommands parses a "^v<>A" string.
func ParseCommands(s string) ([]Command, error) {
	buttons, err := Directional.Parse(s)
	if err != nil {
		return nil, err
	}
	return CommandsOf(buttons), nil
}

// ButtonsOf returns the directional keypad buttons issuing commands.
func ButtonsOf(commands []Command) []Button {
	buttons := make([]Button, len(commands))
	for i, c := range commands {
		buttons[i] = c.Button()
	}
	return buttons
}

// CommandsOf returns the commands issued by pressing directional keypad buttons.
func CommandsOf(buttons []Button) []Command {
	commands := make([]Command, len(buttons))
	for i, b := range buttons {
		commands[i] = Command(b)
	}
	return commands
}
