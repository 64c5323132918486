package memory

// Heap is the default resource, backed by the Go heap. It is stateless:
// all Heap instances are interchangeable. Deallocate is a no-op because
// the garbage collector reclaims unreferenced buffers.
type Heap struct{}

var defaultHeap = &Heap{}

// Default returns the shared Heap resource.
func Default() Resource { return defaultHeap }

// NewHeap returns a new Heap resource. All Heap instances compare equal.
func NewHeap() *Heap { return &Heap{} }

// Allocate returns a zeroed buffer of n bytes from the Go heap.
func (h *Heap) Allocate(n int) ([]byte, error) {
	return make([]byte, n), nil
}

// Deallocate is a no-op; the garbage collector owns the buffer.
func (h *Heap) Deallocate(b []byte) {}

// Equal reports whether other is also a Heap resource.
func (h *Heap) Equal(other Resource) bool {
	_, ok := other.(*Heap)
	return ok
}

// SelectOnCopy returns the receiver.
func (h *Heap) SelectOnCopy() Resource { return h }

// Traits mirrors the standard allocator: always equal, propagating on move.
func (h *Heap) Traits() Traits {
	return Traits{AlwaysEqual: true, PropagateOnMove: true}
}
