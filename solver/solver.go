// Package solver computes the minimal number of presses a human has to make
// to enter a code on a numeric keypad through a chain of robots, each
// operating a directional keypad for the robot beneath it.
//
// Presses are never materialized: every layer caches the minimal cost of
// each (from, to) move, which the next robot layer reuses for all codes.
package solver

import (
	"errors"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/packed"
	"github.com/go-ricrob/keypadsolver/internal/partmap"
	"github.com/go-ricrob/keypadsolver/internal/paths"
)

// ErrNegativeDepth is returned by New for a negative chain depth.
var ErrNegativeDepth = errors.New("negative chain depth")

// Evaluator returns the number of presses the human has to make so that a
// keypad of a layer registers a sequence of buttons.
type Evaluator interface {
	Cost(seq []keypad.Button) (int64, error)
}

type evaluator interface {
	Evaluator
	// presses returns one minimal sequence of human presses for seq.
	presses(seq []keypad.Button) ([]keypad.Button, error)
}

var (
	_ evaluator = direct{}
	_ evaluator = (*layer)(nil)
)

// Direct is the layer operated by the human: one press per button.
var Direct Evaluator = direct{}

type direct struct{}

func (direct) Cost(seq []keypad.Button) (int64, error) { return int64(len(seq)), nil }

func (direct) presses(seq []keypad.Button) ([]keypad.Button, error) {
	p := make([]keypad.Button, len(seq))
	copy(p, seq)
	return p, nil
}

// layer is a robot pressing buttons on keypad, driven by the commands
// typed on the layer next.
type layer struct {
	keypad *keypad.Keypad
	next   evaluator
	enum   paths.Enumerator
	cache  *partmap.Map[packed.Pair, int64]
}

func newLayer(k *keypad.Keypad, next evaluator, o *options) *layer {
	return &layer{
		keypad: k,
		next:   next,
		enum:   o.enum,
		cache:  partmap.New[packed.Pair, int64](o.numPart),
	}
}

func (l *layer) Cost(seq []keypad.Button) (int64, error) {
	var total int64
	from := l.keypad.Start()
	for _, to := range seq {
		cost, err := l.moveCost(from, to)
		if err != nil {
			return 0, err
		}
		total += cost
		from = to
	}
	return total, nil
}

// moveCost returns the minimal cost of moving from one button to another and
// pressing it.
func (l *layer) moveCost(from, to keypad.Button) (int64, error) {
	key := packed.Pack(from, to)
	if cost, ok := l.cache.Load(key); ok {
		return cost, nil
	}
	_, cost, err := l.best(from, to)
	if err != nil {
		return 0, err
	}
	// concurrent callers may have computed the same value
	cost, _ = l.cache.LoadOrStore(key, cost)
	return cost, nil
}

// best returns the candidate path with minimal cost at the next layer.
func (l *layer) best(from, to keypad.Button) ([]keypad.Button, int64, error) {
	candidates, err := l.enum.Paths(l.keypad, from, to)
	if err != nil {
		return nil, 0, err
	}
	var best []keypad.Button
	var bestCost int64
	for _, commands := range candidates {
		buttons := keypad.ButtonsOf(commands)
		cost, err := l.next.Cost(buttons)
		if err != nil {
			return nil, 0, err
		}
		if best == nil || cost < bestCost {
			best, bestCost = buttons, cost
		}
	}
	if best == nil {
		return nil, 0, &paths.DisconnectedButtonsError{Keypad: l.keypad.Kind(), From: from, To: to}
	}
	return best, bestCost, nil
}

func (l *layer) presses(seq []keypad.Button) ([]keypad.Button, error) {
	var presses []keypad.Button
	from := l.keypad.Start()
	for _, to := range seq {
		best, _, err := l.best(from, to)
		if err != nil {
			return nil, err
		}
		p, err := l.next.presses(best)
		if err != nil {
			return nil, err
		}
		presses = append(presses, p...)
		from = to
	}
	return presses, nil
}
