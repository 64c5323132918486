package memory

import (
	"errors"
	"reflect"
)

// Errors returned by memory resources.
var (
	// ErrExhausted indicates a resource cannot supply the requested storage.
	ErrExhausted = errors.New("resource exhausted")

	// ErrClosed indicates an allocation was attempted on a closed resource.
	ErrClosed = errors.New("resource closed")
)

// Traits describes the compile-time policy of a Resource implementation.
// The values returned by Traits must be constant for a given type.
type Traits struct {
	// AlwaysEqual declares that any two instances of this resource type
	// are interchangeable. Stateless resources set this.
	AlwaysEqual bool

	// PropagateOnCopy makes copy-assignment adopt the source's resource
	// when the two resources are unequal.
	PropagateOnCopy bool

	// PropagateOnMove makes move-assignment adopt the source's resource
	// when the two resources are unequal.
	PropagateOnMove bool

	// PropagateOnSwap makes swap exchange the two resources. Present for
	// interface completeness; swap in this module always exchanges the
	// resources (see sharedstr.String.Swap).
	PropagateOnSwap bool
}

// Resource supplies raw storage for sharedstr values. Buffers allocated
// by a resource must be returned to an equal resource.
//
// Implementations must be safe for concurrent use: independent values
// sharing a resource may allocate and deallocate from multiple
// goroutines without external locking.
type Resource interface {
	// Allocate returns a buffer of exactly n bytes. The contents are
	// unspecified; callers overwrite the full buffer. Allocate fails
	// when the resource cannot supply the storage.
	Allocate(n int) ([]byte, error)

	// Deallocate returns a buffer previously obtained from an equal
	// resource. Deallocate must not fail.
	Deallocate(b []byte)

	// Equal reports whether buffers from this resource may be freed by
	// other and vice versa. The relation is reflexive, symmetric, and
	// transitive.
	Equal(other Resource) bool

	// SelectOnCopy returns the resource a copy-constructed value should
	// use. Most implementations return the receiver; a resource may
	// return an unrelated instance instead.
	SelectOnCopy() Resource

	// Traits returns the fixed policy of this resource type.
	Traits() Traits
}

// Equivalent reports whether a and b are equal resources, applying the
// always-equal shortcut before consulting Equal. Two always-equal
// resources are compared by dynamic type only.
//
// Implementations whose Equal is identity-based must have non-zero
// size: the runtime gives all zero-size allocations a single address,
// so two separately constructed zero-size instances are one identity,
// both here and in Equal itself.
func Equivalent(a, b Resource) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Traits().AlwaysEqual && b.Traits().AlwaysEqual {
		return reflect.TypeOf(a) == reflect.TypeOf(b)
	}
	return a.Equal(b)
}
