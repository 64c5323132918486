package sharedstr

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dshills/sharedstr/internal/mem"
	"github.com/dshills/sharedstr/memory"
)

// ownershipKind discriminates the three ownership states of a String.
// Empty and static both have a nil control block; the discriminant keeps
// them distinct.
type ownershipKind uint8

const (
	ownerEmpty ownershipKind = iota
	ownerOwned
	ownerStatic
)

// String is an immutable, shared-ownership string value. The zero value
// is an empty string using the default resource.
//
// A String must be handled through its pointer and its methods; copying
// the struct bypasses the reference count. Sharing is established via
// Clone, Assign, MoveFrom, and Substr.
type String struct {
	res  memory.Resource
	kind ownershipKind
	ctrl *control
	view []byte
}

// New returns an empty value carrying the given resource. A nil
// resource selects the default Heap resource.
func New(res memory.Resource) *String {
	return &String{res: res}
}

// FromString constructs a value by deep-copying content through res
// (nil selects the default resource). Zero-length content yields an
// empty value without allocating.
func FromString(content string, res memory.Resource) (*String, error) {
	return FromBytes(mem.Bytes(content), res)
}

// FromBytes constructs a value by deep-copying content through res
// (nil selects the default resource). Zero-length content yields an
// empty value without allocating.
func FromBytes(content []byte, res memory.Resource) (*String, error) {
	s := New(res)
	if err := s.SetBytes(content); err != nil {
		return nil, err
	}
	return s, nil
}

// FromReader reads r to completion and constructs a value from the
// content through res (nil selects the default resource).
func FromReader(r io.Reader, res memory.Resource) (*String, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return FromBytes(content, res)
}

// FromStatic constructs a value that borrows the storage of content
// rather than owning a copy. Go string storage is immutable and lives
// for the program's lifetime, so the value performs no allocation and
// no refcount traffic, and Clear never frees anything.
func FromStatic(content string) *String {
	if len(content) == 0 {
		return &String{}
	}
	return &String{kind: ownerStatic, view: mem.Bytes(content)}
}

// Resource returns the value's memory resource. The zero value and
// values created with a nil resource report the default Heap resource.
func (s *String) Resource() memory.Resource {
	if s.res == nil {
		return memory.Default()
	}
	return s.res
}

// Len returns the number of bytes in the value.
func (s *String) Len() int { return len(s.view) }

// IsEmpty reports whether the value has length zero.
func (s *String) IsEmpty() bool { return len(s.view) == 0 }

// At returns the byte at index i, failing with ErrOutOfRange when i is
// not in [0, Len()).
func (s *String) At(i int) (byte, error) {
	if i < 0 || i >= len(s.view) {
		return 0, ErrOutOfRange
	}
	return s.view[i], nil
}

// Byte returns the byte at index i without bounds checking beyond the
// runtime's; the index must be in [0, Len()).
func (s *String) Byte(i int) byte { return s.view[i] }

// Front returns the first byte. The value must not be empty.
func (s *String) Front() byte { return s.view[0] }

// Back returns the last byte. The value must not be empty.
func (s *String) Back() byte { return s.view[len(s.view)-1] }

// Bytes returns the value's content as a read-only byte slice, valid
// while the value (or any sharing partner) is live. The slice must not
// be modified.
func (s *String) Bytes() []byte { return s.view }

// String returns the content as a string without copying. The result
// aliases the shared buffer, which is immutable, so it remains valid
// while any owner is live; for arena-backed values it must not outlive
// the arena.
func (s *String) String() string { return mem.String(s.view) }

// Equal reports whether two values have identical content.
func (s *String) Equal(other *String) bool {
	return bytes.Equal(s.view, other.view)
}

// EqualString reports whether the content equals t.
func (s *String) EqualString(t string) bool {
	return mem.String(s.view) == t
}

// WriteTo writes the content to w. It implements io.WriterTo.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	if len(s.view) == 0 {
		return 0, nil
	}
	n, err := w.Write(s.view)
	return int64(n), err
}

// SharesStorage reports whether s and other own the same live control
// block. Static borrows and empty values never share ownership, even
// when their views alias the same storage.
func (s *String) SharesStorage(other *String) bool {
	return s.kind == ownerOwned && other.kind == ownerOwned && s.ctrl == other.ctrl
}
