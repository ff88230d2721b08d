package solver

import (
	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/paths"
)

type options struct {
	enum    paths.Enumerator
	numPart int
}

// Option configures a Chain.
type Option func(o *options)

// WithEnumerator sets the path enumerator used by all layers.
func WithEnumerator(enum paths.Enumerator) Option {
	return func(o *options) { o.enum = enum }
}

// WithNumPart sets the number of parts of each layer cache.
func WithNumPart(numPart int) Option {
	return func(o *options) { o.numPart = numPart }
}

var _ Evaluator = (*Chain)(nil)

// Chain is a numeric keypad robot driven through depth directional keypad
// robots by a human. A Chain is safe for concurrent use; its caches live as
// long as the Chain.
//
// At depth 0 no robot is involved and the human presses the numeric keypad.
type Chain struct {
	depth  int
	top    evaluator
	layers []*layer // human side last
}

// New returns a chain of depth directional robot layers.
func New(depth int, opts ...Option) (*Chain, error) {
	if depth < 0 {
		return nil, ErrNegativeDepth
	}
	o := &options{enum: paths.Shortest}
	for _, opt := range opts {
		opt(o)
	}

	c := &Chain{depth: depth}
	var next evaluator = direct{}
	if depth == 0 {
		c.top = next
		return c, nil
	}

	layers := make([]*layer, depth+1)
	for i := depth; i > 0; i-- {
		l := newLayer(keypad.Directional, next, o)
		layers[i] = l
		next = l
	}
	layers[0] = newLayer(keypad.Numeric, next, o)
	c.top, c.layers = layers[0], layers
	return c, nil
}

// Depth returns the number of directional robot layers.
func (c *Chain) Depth() int { return c.depth }

// TotalCost returns the minimal number of human presses entering code.
func (c *Chain) TotalCost(code []keypad.Button) (int64, error) {
	if err := keypad.Numeric.Validate(code); err != nil {
		return 0, err
	}
	return c.top.Cost(code)
}

// Cost implements Evaluator.
func (c *Chain) Cost(code []keypad.Button) (int64, error) { return c.TotalCost(code) }

// Complexity returns the numeric value of code times its total cost.
func (c *Chain) Complexity(code []keypad.Button) (int64, error) {
	cost, err := c.TotalCost(code)
	if err != nil {
		return 0, err
	}
	return keypad.NumericValue(code) * cost, nil
}

// Presses returns one minimal sequence of human presses entering code. The
// sequence grows exponentially with the depth.
func (c *Chain) Presses(code []keypad.Button) ([]keypad.Button, error) {
	if err := keypad.Numeric.Validate(code); err != nil {
		return nil, err
	}
	return c.top.presses(code)
}

// CacheSize returns the number of (from, to) moves cached over all layers.
func (c *Chain) CacheSize() int {
	size := 0
	for _, l := range c.layers {
		size += l.cache.Size()
	}
	return size
}
