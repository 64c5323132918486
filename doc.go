// Package sharedstr provides an immutable, shared-ownership string value
// type. Copying a value is O(1) and allocation-free whenever the two
// values' memory resources agree; the backing buffer is reference
// counted and freed exactly once, when the last owner releases it.
//
// # Ownership
//
// A String is in one of three ownership states:
//
//   - Empty: no storage at all.
//   - Owned: the value references a heap control block holding an
//     atomically reference-counted buffer obtained from its resource.
//   - Static: the value borrows externally owned immutable storage,
//     such as a Go string literal. No control block, no refcount
//     traffic, and nothing is ever freed.
//
// Two values share ownership when they reference the same live control
// block. Whether an operation shares or deep-copies is decided by the
// memory resources involved: sharing requires the resources to be
// equal, so a buffer is always freed by a resource that is equal to the
// one that allocated it. See the memory package for the resource
// abstraction and its propagation traits.
//
// # Lifecycle
//
// Go has no destructors, so releasing ownership is explicit: Clear
// releases the value's reference and resets it to Empty. A buffer is
// destroyed when its last owner calls Clear (or replaces its value via
// Assign, MoveFrom, Set, or a failed-over deep copy). Values backed by
// the default Heap resource may skip Clear and let the garbage
// collector reclaim the buffer; values backed by arenas, pools, or
// counted resources should always be cleared.
//
// # Basic Usage
//
//	s, _ := sharedstr.FromString("Hello, World!", nil)
//	defer s.Clear()
//
//	c, _ := s.Clone() // O(1); shares the buffer
//	defer c.Clear()
//
//	sub, _ := s.Substr(7, 5) // "World"; shares the buffer
//	defer sub.Clear()
//
//	lit := sharedstr.FromStatic("no allocation at all")
//
// # Thread Safety
//
// Distinct String instances may be used concurrently without locking,
// even when they share a control block; the buffer is immutable after
// publication and the refcount is maintained with atomic operations.
// A single instance must not be mutated (Assign, MoveFrom, Set, Swap,
// Clear) concurrently with any other operation on that same instance.
//
// # Error Handling
//
// Checked index access fails with ErrOutOfRange. Deep copies fail with
// the resource's allocation error (wrap target memory.ErrExhausted for
// the bounded resources). Every failing operation leaves the receiver
// exactly as it was: replacement storage is fully constructed before
// the old storage is released.
package sharedstr
