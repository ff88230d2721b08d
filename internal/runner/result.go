package runner

import (
	"errors"
	"fmt"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"golang.org/x/exp/constraints"
)

// Entry is the evaluation of one code.
type Entry struct {
	Code       string
	Value      int64 // numeric part of the code
	Cost       int64 // human presses
	Complexity int64 // Value * Cost
	Err        error
}

// Result is the evaluation of a batch of codes.
type Result struct {
	Depth   int
	Entries []Entry
}

func newResult(depth int, codes [][]keypad.Button) *Result {
	r := &Result{Depth: depth, Entries: make([]Entry, len(codes))}
	for i, code := range codes {
		r.Entries[i].Code = keypad.Format(code)
		r.Entries[i].Value = keypad.NumericValue(code)
	}
	return r
}

func sum[T constraints.Integer](values ...T) T {
	var s T
	for _, v := range values {
		s += v
	}
	return s
}

// Sum returns the sum of the complexities of all successful entries.
func (r *Result) Sum() int64 {
	complexities := make([]int64, 0, len(r.Entries))
	for _, e := range r.Entries {
		if e.Err == nil {
			complexities = append(complexities, e.Complexity)
		}
	}
	return sum(complexities...)
}

// NumFailed returns the number of entries with an error.
func (r *Result) NumFailed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Err != nil {
			n++
		}
	}
	return n
}

// Err returns the errors of all failed entries joined, or nil.
func (r *Result) Err() error {
	var errs []error
	for _, e := range r.Entries {
		if e.Err != nil {
			errs = append(errs, fmt.Errorf("code %s: %w", e.Code, e.Err))
		}
	}
	return errors.Join(errs...)
}
