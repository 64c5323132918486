// Package memory provides the pluggable memory-resource abstraction used
// by sharedstr values to manage their backing storage.
//
// A Resource supplies raw buffer allocation and deallocation, an equality
// relation between resource instances, and a set of propagation traits
// that decide whether container operations adopt the other operand's
// resource. The traits are fixed per implementation, not runtime state.
//
// # Implementations
//
// The package ships several resources:
//
//   - Heap: the default, stateless resource backed by the Go heap.
//     Deallocate is a no-op; the garbage collector reclaims buffers.
//   - Arena: a fixed-capacity bump allocator over an anonymous mmap
//     region outside the Go heap. Useful when buffer lifetimes are
//     bounded and GC pressure matters. Unix only.
//   - Pool: a size-classed recycling resource built on sync.Pool.
//   - Counting: wraps another resource with allocation counters, for
//     leak detection and tests.
//   - Limited: wraps another resource with a byte budget, failing with
//     ErrExhausted once the budget is spent.
//
// # Equality
//
// Two resources compare equal when buffers allocated by one may be
// deallocated by the other. Sharing a buffer between two sharedstr
// values requires their resources to be equal; the Equivalent helper
// applies the always-equal shortcut before falling back to Equal.
//
// # Basic Usage
//
//	res := memory.NewCounting(memory.Default())
//	s, _ := sharedstr.FromString("Hello, World!", res)
//	c, _ := s.Clone() // shares storage, no new allocation
//	c.Clear()
//	s.Clear()
//	// res.Live() == 0
package memory
