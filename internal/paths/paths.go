// Package paths enumerates the shortest command sequences moving the cursor
// of a keypad from one button to another.
package paths

import (
	"fmt"
	"sync/atomic"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"golang.org/x/exp/slices"
)

// DisconnectedButtonsError is returned if no path leads from one button to
// another, including buttons not on the keypad.
type DisconnectedButtonsError struct {
	Keypad   keypad.Kind
	From, To keypad.Button
}

func (e *DisconnectedButtonsError) Error() string {
	return fmt.Sprintf("no path on %s keypad from %q to %q", e.Keypad, e.From, e.To)
}

// Enumerator returns all shortest command sequences moving from one button to
// another, each terminated by keypad.Activate.
type Enumerator interface {
	Paths(k *keypad.Keypad, from, to keypad.Button) ([][]keypad.Command, error)
}

// EnumeratorFunc adapts a function to an Enumerator.
type EnumeratorFunc func(k *keypad.Keypad, from, to keypad.Button) ([][]keypad.Command, error)

// Paths calls f.
func (f EnumeratorFunc) Paths(k *keypad.Keypad, from, to keypad.Button) ([][]keypad.Command, error) {
	return f(k, from, to)
}

// Shortest is the breadth-first search Enumerator.
var Shortest Enumerator = EnumeratorFunc(shortest)

type node struct {
	button keypad.Button
	path   []keypad.Command
}

func extend(path []keypad.Command, c keypad.Command) []keypad.Command {
	// room for the trailing activate
	p := make([]keypad.Command, len(path), len(path)+2)
	copy(p, path)
	return append(p, c)
}

// shortest searches level by level. A button is closed only after the level
// it was first reached on, so every path of minimal length survives.
func shortest(k *keypad.Keypad, from, to keypad.Button) ([][]keypad.Command, error) {
	if !k.Has(from) || !k.Has(to) {
		return nil, &DisconnectedButtonsError{Keypad: k.Kind(), From: from, To: to}
	}
	if from == to {
		return [][]keypad.Command{{keypad.Activate}}, nil
	}

	closed := map[keypad.Button]bool{from: true}
	source := []node{{button: from}}
	var found [][]keypad.Command

	for len(source) > 0 && len(found) == 0 {
		var target []node
		var reached []keypad.Button

		for _, n := range source {
			for _, c := range keypad.Moves {
				next, ok := k.Apply(n.button, c)
				if !ok || closed[next] {
					continue
				}
				path := extend(n.path, c)
				if next == to {
					found = append(found, append(path, keypad.Activate))
					continue
				}
				if !slices.Contains(reached, next) {
					reached = append(reached, next)
				}
				target = append(target, node{button: next, path: path})
			}
		}

		for _, b := range reached {
			closed[b] = true
		}
		source = target
	}

	if len(found) == 0 {
		return nil, &DisconnectedButtonsError{Keypad: k.Kind(), From: from, To: to}
	}
	return found, nil
}

// Counter is an Enumerator counting the calls to the wrapped Enumerator.
type Counter struct {
	Enumerator
	calls atomic.Int64
}

// Count wraps e into a Counter.
func Count(e Enumerator) *Counter { return &Counter{Enumerator: e} }

// Paths counts the call and delegates to the wrapped Enumerator.
func (c *Counter) Paths(k *keypad.Keypad, from, to keypad.Button) ([][]keypad.Command, error) {
	c.calls.Add(1)
	return c.Enumerator.Paths(k, from, to)
}

// Calls returns the number of calls so far.
func (c *Counter) Calls() int64 { return c.calls.Load() }
