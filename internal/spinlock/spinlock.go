// Package spinlock provides a spinlock mutex.
package spinlock

import (
	"runtime"
	"sync"
	"sync/atomic"
)

var _ sync.Locker = (*Mutex)(nil)

// Mutex represents a spinlock. The zero value is an unlocked mutex.
type Mutex struct {
	state atomic.Int32
}

// Lock locks the mutex busy waiting (spinlock).
func (m *Mutex) Lock() {
	for !m.state.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

// TryLock tries to lock m without waiting and reports whether it succeeded.
func (m *Mutex) TryLock() bool { return m.state.CompareAndSwap(0, 1) }

// Unlock unlocks the mutex.
func (m *Mutex) Unlock() { m.state.Store(0) }
