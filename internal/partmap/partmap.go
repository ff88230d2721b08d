// Package partmap provides a partitioned map safe for concurrent use.
//
// Keys are spread over parts by hash, each part guarded by its own spinlock,
// so concurrent cost evaluations only contend on the same part.
package partmap

import (
	"hash/maphash"

	"github.com/go-ricrob/keypadsolver/internal/packed"
	"github.com/go-ricrob/keypadsolver/internal/spinlock"
)

// DefaultNumPart is the number of parts used if none is given.
const DefaultNumPart = 16

type part[K packed.Packable, V any] struct {
	mu spinlock.Mutex
	m  map[K]V
}

// Map is a partitioned map.
type Map[K packed.Packable, V any] struct {
	numPart uint64
	seed    maphash.Seed
	parts   []*part[K, V]
}

// New returns an empty map with numPart parts (DefaultNumPart if numPart < 1).
func New[K packed.Packable, V any](numPart int) *Map[K, V] {
	if numPart < 1 {
		numPart = DefaultNumPart
	}
	pm := &Map[K, V]{
		numPart: uint64(numPart),
		seed:    maphash.MakeSeed(),
		parts:   make([]*part[K, V], numPart),
	}
	for i := range pm.parts {
		pm.parts[i] = &part[K, V]{m: map[K]V{}}
	}
	return pm
}

func (pm *Map[K, V]) part(k K) *part[K, V] { return pm.parts[k.Hash(pm.seed)%pm.numPart] }

// Load returns the value stored for k.
func (pm *Map[K, V]) Load(k K) (V, bool) {
	part := pm.part(k)
	part.mu.Lock()
	v, ok := part.m[k]
	part.mu.Unlock()
	return v, ok
}

// Store sets the value for k.
func (pm *Map[K, V]) Store(k K, v V) {
	part := pm.part(k)
	part.mu.Lock()
	part.m[k] = v
	part.mu.Unlock()
}

// LoadOrStore returns the existing value for k if present. Otherwise it
// stores and returns v. loaded reports whether the value was already present.
func (pm *Map[K, V]) LoadOrStore(k K, v V) (actual V, loaded bool) {
	part := pm.part(k)
	part.mu.Lock()
	if actual, ok := part.m[k]; ok {
		part.mu.Unlock()
		return actual, true
	}
	part.m[k] = v
	part.mu.Unlock()
	return v, false
}

// Size returns the number of stored keys.
func (pm *Map[K, V]) Size() int {
	size := 0
	for _, part := range pm.parts {
		part.mu.Lock()
		size += len(part.m)
		part.mu.Unlock()
	}
	return size
}

// NumPart returns the number of parts.
func (pm *Map[K, V]) NumPart() int { return int(pm.numPart) }
