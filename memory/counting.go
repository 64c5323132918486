package memory

import "sync/atomic"

// Counting wraps another resource and tracks allocation traffic. It is
// intended for leak checks: a balanced workload ends with Live() == 0.
//
// Counting propagates on copy, move, and swap, and SelectOnCopy returns
// the receiver, so clones of a counted value keep feeding the same
// counters. Equality is identity: only this instance can free what it
// allocated.
type Counting struct {
	inner    Resource
	allocs   atomic.Int64
	deallocs atomic.Int64
	live     atomic.Int64
	liveSize atomic.Int64
}

// NewCounting creates a counting resource over inner. A nil inner
// defaults to the shared Heap resource.
func NewCounting(inner Resource) *Counting {
	if inner == nil {
		inner = Default()
	}
	return &Counting{inner: inner}
}

// Allocate forwards to the inner resource, counting on success.
func (c *Counting) Allocate(n int) ([]byte, error) {
	b, err := c.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	c.allocs.Add(1)
	c.live.Add(1)
	c.liveSize.Add(int64(n))
	return b, nil
}

// Deallocate counts the return and forwards to the inner resource.
func (c *Counting) Deallocate(b []byte) {
	c.deallocs.Add(1)
	c.live.Add(-1)
	c.liveSize.Add(int64(-len(b)))
	c.inner.Deallocate(b)
}

// Equal reports whether other is this same counting resource.
func (c *Counting) Equal(other Resource) bool {
	o, ok := other.(*Counting)
	return ok && o == c
}

// SelectOnCopy returns the receiver, so copies share the counters.
func (c *Counting) SelectOnCopy() Resource { return c }

// Traits propagates on every assignment flavor.
func (c *Counting) Traits() Traits {
	return Traits{PropagateOnCopy: true, PropagateOnMove: true, PropagateOnSwap: true}
}

// Allocs returns the total number of successful allocations.
func (c *Counting) Allocs() int64 { return c.allocs.Load() }

// Deallocs returns the total number of deallocations.
func (c *Counting) Deallocs() int64 { return c.deallocs.Load() }

// Live returns the number of outstanding allocations.
func (c *Counting) Live() int64 { return c.live.Load() }

// LiveBytes returns the number of outstanding allocated bytes.
func (c *Counting) LiveBytes() int64 { return c.liveSize.Load() }
