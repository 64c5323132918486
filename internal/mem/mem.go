// Package mem converts between strings and byte slices without copying.
//
// The conversions alias the underlying storage, so they are only safe
// when that storage is immutable for the lifetime of both views. Callers
// in this module use them for string literals and for owned buffers that
// are never written after publication.
package mem

import "unsafe"

// Bytes returns a byte slice aliasing the storage of s.
// The returned slice must not be modified.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// String returns a string aliasing the storage of b.
// The slice must not be modified while the string is in use.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
