// Package packed provides compact, hashable keys for pairs of buttons.
package packed

import (
	"hash/maphash"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
)

// Packable defines the constraints for keys of a partitioned map.
type Packable interface {
	comparable
	Hash(seed maphash.Seed) uint64
}

// Pair is a compressed (from, to) button pair.
type Pair [2]byte

// Hash returns a hash value of p.
func (p Pair) Hash(seed maphash.Seed) uint64 { return maphash.Bytes(seed, p[:]) }

// Pack returns the packed representation of a move from one button to another.
func Pack(from, to keypad.Button) Pair { return Pair{byte(from), byte(to)} }

// Unpack returns the buttons stored in p.
func (p Pair) Unpack() (from, to keypad.Button) { return keypad.Button(p[0]), keypad.Button(p[1]) }

func (p Pair) String() string { return string(p[:]) }
