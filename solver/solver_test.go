package solver

import (
	"testing"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var examples = []struct {
	code  string
	value int64
	cost  int64
}{
	{"029A", 29, 68},
	{"980A", 980, 60},
	{"179A", 179, 68},
	{"456A", 456, 64},
	{"379A", 379, 64},
}

func parseCode(t *testing.T, s string) []keypad.Button {
	t.Helper()
	code, err := keypad.ParseCode(s)
	require.NoError(t, err)
	return code
}

func TestDirect(t *testing.T) {
	for _, k := range []*keypad.Keypad{keypad.Numeric, keypad.Directional} {
		for _, b := range k.Buttons() {
			cost, err := Direct.Cost([]keypad.Button{b})
			require.NoError(t, err)
			assert.Equal(t, int64(1), cost)
		}
	}
}

func TestNegativeDepth(t *testing.T) {
	_, err := New(-1)
	assert.ErrorIs(t, err, ErrNegativeDepth)
}

func TestDepthZero(t *testing.T) {
	c, err := New(0)
	require.NoError(t, err)
	for _, test := range examples {
		cost, err := c.TotalCost(parseCode(t, test.code))
		require.NoError(t, err)
		assert.Equal(t, int64(len(test.code)), cost, test.code)
	}
}

func TestTotalCost(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Depth())

	var sum int64
	for _, test := range examples {
		code := parseCode(t, test.code)
		cost, err := c.TotalCost(code)
		require.NoError(t, err)
		assert.Equal(t, test.cost, cost, test.code)

		complexity, err := c.Complexity(code)
		require.NoError(t, err)
		assert.Equal(t, test.value*test.cost, complexity, test.code)
		sum += complexity
	}
	assert.Equal(t, int64(126384), sum)
}

func TestTotalCostDepths(t *testing.T) {
	tests := []struct {
		depth int
		cost  int64
	}{
		{0, 4},  // 029A
		{1, 28}, // v<<A>>^A<A>AvA<^AA>A<vAAA>^A
		{2, 68},
	}
	for _, test := range tests {
		c, err := New(test.depth)
		require.NoError(t, err)
		cost, err := c.TotalCost(parseCode(t, "029A"))
		require.NoError(t, err)
		assert.Equal(t, test.cost, cost, "depth %d", test.depth)
	}
}

func TestMonotonic(t *testing.T) {
	for _, test := range examples {
		code := parseCode(t, test.code)
		var prev int64
		for depth := 0; depth <= 8; depth++ {
			c, err := New(depth)
			require.NoError(t, err)
			cost, err := c.TotalCost(code)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, cost, prev, "%s depth %d", test.code, depth)
			prev = cost
		}
	}
}

func TestCached(t *testing.T) {
	counter := paths.Count(paths.Shortest)
	c, err := New(3, WithEnumerator(counter), WithNumPart(4))
	require.NoError(t, err)

	code := parseCode(t, "179A")
	first, err := c.TotalCost(code)
	require.NoError(t, err)
	calls := counter.Calls()
	require.Positive(t, calls)
	size := c.CacheSize()

	second, err := c.TotalCost(code)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, calls, counter.Calls(), "cached moves were enumerated again")
	assert.Equal(t, size, c.CacheSize())
}

// Each (from, to) move of a layer is enumerated at most once.
func TestCachedMoves(t *testing.T) {
	counter := paths.Count(paths.Shortest)
	c, err := New(25, WithEnumerator(counter))
	require.NoError(t, err)
	for _, test := range examples {
		_, err := c.TotalCost(parseCode(t, test.code))
		require.NoError(t, err)
	}
	assert.Equal(t, int64(c.CacheSize()), counter.Calls())
}

func TestPresses(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)
	for _, test := range examples {
		code := parseCode(t, test.code)
		presses, err := c.Presses(code)
		require.NoError(t, err)
		assert.Len(t, presses, int(test.cost), test.code)

		commands := keypad.CommandsOf(presses)
		for i := 0; i < c.Depth(); i++ {
			pressed, err := keypad.Directional.Execute(commands)
			require.NoError(t, err)
			commands = keypad.CommandsOf(pressed)
		}
		pressed, err := keypad.Numeric.Execute(commands)
		require.NoError(t, err)
		assert.Equal(t, test.code, keypad.Format(pressed))
	}
}

func TestPressesDepthZero(t *testing.T) {
	c, err := New(0)
	require.NoError(t, err)
	presses, err := c.Presses(parseCode(t, "029A"))
	require.NoError(t, err)
	assert.Equal(t, "029A", keypad.Format(presses))
}

func TestInvalidCode(t *testing.T) {
	for depth := 0; depth <= 2; depth++ {
		c, err := New(depth)
		require.NoError(t, err)
		_, err = c.TotalCost([]keypad.Button{'0', '^', 'A'})
		var invalid *keypad.InvalidButtonError
		assert.ErrorAs(t, err, &invalid, "depth %d", depth)
	}
}

func TestDisconnected(t *testing.T) {
	empty := paths.EnumeratorFunc(func(*keypad.Keypad, keypad.Button, keypad.Button) ([][]keypad.Command, error) {
		return nil, nil
	})
	c, err := New(1, WithEnumerator(empty))
	require.NoError(t, err)
	_, err = c.TotalCost(parseCode(t, "029A"))
	var disconnected *paths.DisconnectedButtonsError
	require.ErrorAs(t, err, &disconnected)
	assert.Equal(t, keypad.NumericKind, disconnected.Keypad)
	assert.Equal(t, keypad.A, disconnected.From)
	assert.Equal(t, keypad.Button('0'), disconnected.To)
}

func TestTotalCostDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep chain")
	}
	c, err := New(25)
	require.NoError(t, err)
	var sum int64
	for _, test := range examples {
		complexity, err := c.Complexity(parseCode(t, test.code))
		require.NoError(t, err)
		sum += complexity
	}
	assert.Equal(t, int64(154115708116294), sum)
}
