//go:build unix

package memory

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// arenaAlign keeps every allocation 8-byte aligned within the region.
const arenaAlign = 8

// Arena is a fixed-capacity bump allocator over an anonymous mmap region
// outside the Go heap. The garbage collector never sees the region, so
// buffers carved from it produce no GC pressure.
//
// Deallocate does not return individual buffers; the arena recycles the
// whole region once every outstanding allocation has been returned.
// Close unmaps the region and fails while allocations are outstanding.
//
// Arenas are stateful: two arenas never compare equal, and an arena does
// not propagate across values.
type Arena struct {
	mu     sync.Mutex
	region []byte
	off    int
	live   int
	closed bool
}

// NewArena maps an anonymous region of the given capacity.
func NewArena(capacity int) (*Arena, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("arena capacity must be positive, got %d", capacity)
	}
	region, err := unix.Mmap(-1, 0, capacity,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", capacity, err)
	}
	return &Arena{region: region}, nil
}

// Allocate carves n bytes from the region. It fails with ErrExhausted
// when the region cannot hold n more bytes, and with ErrClosed after
// Close. The returned buffer's contents are unspecified once the region
// has been recycled.
func (a *Arena) Allocate(n int) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil, ErrClosed
	}
	if n < 0 || n > len(a.region)-a.off {
		return nil, fmt.Errorf("allocate %d bytes (%d free): %w", n, len(a.region)-a.off, ErrExhausted)
	}
	b := a.region[a.off : a.off+n : a.off+n]
	step := (n + arenaAlign - 1) &^ (arenaAlign - 1)
	if step > len(a.region)-a.off {
		step = len(a.region) - a.off
	}
	a.off += step
	a.live++
	return b, nil
}

// Deallocate returns a buffer to the arena. Individual buffers are not
// reclaimed; when the last outstanding buffer is returned, the whole
// region becomes available again.
func (a *Arena) Deallocate(b []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.live == 0 {
		return
	}
	a.live--
	if a.live == 0 {
		a.off = 0
	}
}

// Equal reports whether other is this same arena.
func (a *Arena) Equal(other Resource) bool {
	o, ok := other.(*Arena)
	return ok && o == a
}

// SelectOnCopy returns the receiver.
func (a *Arena) SelectOnCopy() Resource { return a }

// Traits returns the zero policy: not always equal, no propagation.
func (a *Arena) Traits() Traits { return Traits{} }

// Capacity returns the size of the mapped region.
func (a *Arena) Capacity() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.region)
}

// Live returns the number of outstanding allocations.
func (a *Arena) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.live
}

// Close unmaps the region. It fails while allocations are outstanding,
// since unmapping would invalidate live buffers. Closing an already
// closed arena is a no-op.
func (a *Arena) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	if a.live > 0 {
		return fmt.Errorf("arena has %d outstanding allocations", a.live)
	}
	a.closed = true
	region := a.region
	a.region = nil
	if err := unix.Munmap(region); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}
