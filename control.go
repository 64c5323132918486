package sharedstr

import (
	"fmt"
	"sync/atomic"

	"github.com/dshills/sharedstr/memory"
)

// control is the shared unit of ownership: a reference count guarding a
// buffer, plus the resource that allocated the buffer and must free it.
//
// The buffer is written exactly once, in newControl, before the block is
// visible to any second owner; afterwards it is read-only. The refcount
// is the only cross-goroutine mutable state.
type control struct {
	refs atomic.Int64
	res  memory.Resource
	buf  []byte
}

// newControl allocates a buffer for content through res, copies the
// content in, and returns a block with refcount 1. On allocation
// failure nothing is retained and the error carries the resource's
// cause, so callers can leave their own state untouched.
func newControl(content []byte, res memory.Resource) (*control, error) {
	buf, err := res.Allocate(len(content))
	if err != nil {
		return nil, fmt.Errorf("allocate %d bytes: %w", len(content), err)
	}
	copy(buf, content)
	c := &control{res: res, buf: buf}
	c.refs.Store(1)
	return c, nil
}

// acquire increments the refcount and returns the block. The caller
// must already hold a live reference, so the increment cannot race with
// the final release.
func (c *control) acquire() *control {
	c.refs.Add(1)
	return c
}

// release decrements the refcount. The goroutine that observes the 1->0
// transition frees the buffer through the resource that allocated it.
// atomic.Int64.Add is sequentially consistent, which covers the
// release/acquire ordering the last-owner-frees idiom requires: every
// owner's reads complete before the freeing goroutine deallocates.
func (c *control) release() {
	if c.refs.Add(-1) == 0 {
		c.res.Deallocate(c.buf)
		c.buf = nil
	}
}
