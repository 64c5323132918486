package memory

import (
	"math/bits"
	"sync"
)

// Size classes are powers of two from 1<<minClassShift up to
// 1<<maxClassShift. Requests above the largest class fall through to
// plain heap allocation and are not recycled.
const (
	minClassShift = 6  // 64 B
	maxClassShift = 20 // 1 MiB
	numClasses    = maxClassShift - minClassShift + 1
)

// Pool is a size-classed recycling resource built on sync.Pool. Buffers
// are rounded up to the next power-of-two class and returned to a
// per-class pool on Deallocate, reducing GC pressure under churn.
//
// Pools are stateful: two pools never compare equal, and a pool does
// not propagate across values.
type Pool struct {
	classes [numClasses]sync.Pool
}

// NewPool creates a new pool resource with empty size classes.
func NewPool() *Pool {
	p := &Pool{}
	for c := range p.classes {
		size := 1 << (minClassShift + c)
		p.classes[c].New = func() interface{} {
			b := make([]byte, size)
			return &b
		}
	}
	return p
}

// classFor returns the size-class index for a request of n bytes, or -1
// when n is above the largest class.
func classFor(n int) int {
	shift := bits.Len(uint(n - 1))
	if shift < minClassShift {
		shift = minClassShift
	}
	if shift > maxClassShift {
		return -1
	}
	return shift - minClassShift
}

// Allocate returns a buffer of exactly n bytes, backed by a size-class
// slab of at least n capacity. Contents are unspecified.
func (p *Pool) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}
	c := classFor(n)
	if c < 0 {
		return make([]byte, n), nil
	}
	slab := p.classes[c].Get().(*[]byte)
	return (*slab)[:n:cap(*slab)], nil
}

// Deallocate recycles the buffer into its size class. Buffers above the
// largest class are dropped for the garbage collector.
func (p *Pool) Deallocate(b []byte) {
	n := cap(b)
	if n < 1<<minClassShift || n > 1<<maxClassShift || n&(n-1) != 0 {
		return
	}
	slab := b[:n:n]
	p.classes[classFor(n)].Put(&slab)
}

// Equal reports whether other is this same pool.
func (p *Pool) Equal(other Resource) bool {
	o, ok := other.(*Pool)
	return ok && o == p
}

// SelectOnCopy returns the receiver.
func (p *Pool) SelectOnCopy() Resource { return p }

// Traits returns the zero policy: not always equal, no propagation.
func (p *Pool) Traits() Traits { return Traits{} }
