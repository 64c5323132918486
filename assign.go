package sharedstr

import (
	"fmt"

	"github.com/dshills/sharedstr/internal/mem"
	"github.com/dshills/sharedstr/memory"
)

// Clone returns a new value with the same content, the Go rendering of
// copy construction. The clone's resource is SelectOnCopy of the
// source's; when that resource is equal to the source's, the clone
// shares the control block in O(1) with no allocation, otherwise the
// content is deep-copied through the clone's resource. Static borrows
// are borrowed again without allocating.
func (s *String) Clone() (*String, error) {
	res := s.Resource().SelectOnCopy()
	switch s.kind {
	case ownerOwned:
		if memory.Equivalent(res, s.Resource()) {
			return &String{res: res, kind: ownerOwned, ctrl: s.ctrl.acquire(), view: s.view}, nil
		}
		c, err := newControl(s.view, res)
		if err != nil {
			return nil, fmt.Errorf("clone: %w", err)
		}
		return &String{res: res, kind: ownerOwned, ctrl: c, view: c.buf}, nil
	case ownerStatic:
		return &String{res: res, kind: ownerStatic, view: s.view}, nil
	default:
		return &String{res: res}, nil
	}
}

// Move transfers the receiver's value into a new String, the Go
// rendering of move construction. An owned receiver is reset to empty;
// a static borrow is borrowed by both, since nothing is owned. Move
// never allocates and never fails.
func (s *String) Move() *String {
	out := &String{res: s.res, kind: s.kind, ctrl: s.ctrl, view: s.view}
	if s.kind == ownerOwned {
		s.kind = ownerEmpty
		s.ctrl = nil
		s.view = nil
	}
	return out
}

// Assign replaces the receiver's value with src's, the Go rendering of
// copy assignment. When the resources are equal the storage is shared;
// when they are unequal and the receiver's resource propagates on copy,
// the receiver adopts src's resource and shares; otherwise the content
// is deep-copied through the receiver's own resource. On failure the
// receiver is left exactly as it was.
func (s *String) Assign(src *String) error {
	if s == src {
		return nil
	}
	res := s.Resource()
	share := memory.Equivalent(res, src.Resource())
	if !share && res.Traits().PropagateOnCopy {
		res = src.Resource()
		share = true
	}

	switch {
	case src.kind == ownerOwned && share:
		ctrl := src.ctrl.acquire()
		s.releaseCurrent()
		s.res, s.kind, s.ctrl, s.view = res, ownerOwned, ctrl, src.view
	case src.kind == ownerOwned:
		// Unequal, non-propagating resources force a deep copy. Build the
		// replacement first so a failed allocation leaves s untouched.
		c, err := newControl(src.view, res)
		if err != nil {
			return fmt.Errorf("assign: %w", err)
		}
		s.releaseCurrent()
		s.res, s.kind, s.ctrl, s.view = res, ownerOwned, c, c.buf
	case src.kind == ownerStatic:
		// Static storage outlives every resource; borrowing it is always
		// valid regardless of resource equality.
		s.releaseCurrent()
		s.res, s.kind, s.ctrl, s.view = res, ownerStatic, nil, src.view
	default:
		s.releaseCurrent()
		s.res, s.kind, s.ctrl, s.view = res, ownerEmpty, nil, nil
	}
	return nil
}

// MoveFrom replaces the receiver's value by taking src's, the Go
// rendering of move assignment. When the resources are equal the block
// is stolen without refcount traffic and src is reset to empty; when
// they are unequal and the receiver's resource propagates on move, the
// receiver adopts src's resource and steals; otherwise the move
// degrades to a deep copy through the receiver's own resource and src
// keeps its value. On failure the receiver is left exactly as it was.
func (s *String) MoveFrom(src *String) error {
	if s == src {
		return nil
	}
	res := s.Resource()
	steal := memory.Equivalent(res, src.Resource())
	if !steal && res.Traits().PropagateOnMove {
		res = src.Resource()
		steal = true
	}

	switch {
	case src.kind == ownerOwned && steal:
		ctrl, view := src.ctrl, src.view
		src.kind, src.ctrl, src.view = ownerEmpty, nil, nil
		s.releaseCurrent()
		s.res, s.kind, s.ctrl, s.view = res, ownerOwned, ctrl, view
	case src.kind == ownerOwned:
		c, err := newControl(src.view, res)
		if err != nil {
			return fmt.Errorf("move: %w", err)
		}
		s.releaseCurrent()
		s.res, s.kind, s.ctrl, s.view = res, ownerOwned, c, c.buf
	case src.kind == ownerStatic:
		// Nothing to steal from a borrow; both values keep the span.
		s.releaseCurrent()
		s.res, s.kind, s.ctrl, s.view = res, ownerStatic, nil, src.view
	default:
		s.releaseCurrent()
		s.res, s.kind, s.ctrl, s.view = res, ownerEmpty, nil, nil
	}
	return nil
}

// Set replaces the value with a deep copy of content made through the
// receiver's own resource. Zero-length content clears the value. On
// failure the receiver is left exactly as it was.
func (s *String) Set(content string) error {
	return s.SetBytes(mem.Bytes(content))
}

// SetBytes replaces the value with a deep copy of content made through
// the receiver's own resource. Zero-length content clears the value. On
// failure the receiver is left exactly as it was.
func (s *String) SetBytes(content []byte) error {
	if len(content) == 0 {
		s.Clear()
		return nil
	}
	// Copy before releasing: content may alias the current buffer.
	c, err := newControl(content, s.Resource())
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	s.releaseCurrent()
	s.kind, s.ctrl, s.view = ownerOwned, c, c.buf
	return nil
}

// Substr returns a new value presenting n bytes starting at pos. The
// result always shares the receiver's storage: same control block (or
// static span) with a re-offset view, no allocation. A negative n, or
// an n past the end, takes everything from pos. Substr fails with
// ErrOutOfRange when pos is not in [0, Len()].
func (s *String) Substr(pos, n int) (*String, error) {
	if pos < 0 || pos > len(s.view) {
		return nil, ErrOutOfRange
	}
	if n < 0 || n > len(s.view)-pos {
		n = len(s.view) - pos
	}
	if n == 0 {
		return &String{res: s.res}, nil
	}
	view := s.view[pos : pos+n]
	if s.kind == ownerStatic {
		return &String{res: s.res, kind: ownerStatic, view: view}, nil
	}
	return &String{res: s.res, kind: ownerOwned, ctrl: s.ctrl.acquire(), view: view}, nil
}

// Swap exchanges the full state of the two values, resources included.
// Swapping values whose resources are unequal and non-propagating would
// otherwise leave each value with storage its own resource never
// guaranteed, so the resources always travel with their storage. Swap
// performs no refcount traffic and never fails.
func (s *String) Swap(other *String) {
	if s == other {
		return
	}
	*s, *other = *other, *s
}

// Clear releases the value's ownership and resets it to empty; the
// resource is kept. If this was the last owner of a control block, the
// buffer is freed through the resource that allocated it. Clear never
// fails and is safe to call repeatedly.
func (s *String) Clear() {
	s.releaseCurrent()
	s.kind = ownerEmpty
	s.ctrl = nil
	s.view = nil
}

// releaseCurrent drops the receiver's reference, if it owns one, without
// resetting the view fields.
func (s *String) releaseCurrent() {
	if s.kind == ownerOwned {
		s.ctrl.release()
	}
}
