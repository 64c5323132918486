package memory

import (
	"fmt"
	"sync"
)

// Limited wraps another resource with a byte budget. Allocations beyond
// the budget fail with ErrExhausted; deallocations return their bytes to
// the budget. Useful for exercising allocation-failure paths
// deterministically.
type Limited struct {
	inner     Resource
	mu        sync.Mutex
	remaining int
}

// NewLimited creates a resource over inner that can hold at most budget
// outstanding bytes. A nil inner defaults to the shared Heap resource.
func NewLimited(inner Resource, budget int) *Limited {
	if inner == nil {
		inner = Default()
	}
	return &Limited{inner: inner, remaining: budget}
}

// Allocate forwards to the inner resource if the budget allows.
func (l *Limited) Allocate(n int) ([]byte, error) {
	l.mu.Lock()
	if n > l.remaining {
		free := l.remaining
		l.mu.Unlock()
		return nil, fmt.Errorf("allocate %d bytes (%d in budget): %w", n, free, ErrExhausted)
	}
	l.remaining -= n
	l.mu.Unlock()

	b, err := l.inner.Allocate(n)
	if err != nil {
		l.mu.Lock()
		l.remaining += n
		l.mu.Unlock()
		return nil, err
	}
	return b, nil
}

// Deallocate returns the bytes to the budget and forwards to the inner
// resource.
func (l *Limited) Deallocate(b []byte) {
	l.mu.Lock()
	l.remaining += len(b)
	l.mu.Unlock()
	l.inner.Deallocate(b)
}

// Equal reports whether other is this same limited resource.
func (l *Limited) Equal(other Resource) bool {
	o, ok := other.(*Limited)
	return ok && o == l
}

// SelectOnCopy returns the receiver.
func (l *Limited) SelectOnCopy() Resource { return l }

// Traits returns the zero policy: not always equal, no propagation.
func (l *Limited) Traits() Traits { return Traits{} }

// Remaining returns the unspent byte budget.
func (l *Limited) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remaining
}
