package sharedstr

import (
	"errors"
	"testing"
)

// FuzzRoundTrip checks that construction reproduces arbitrary content
// exactly, byte by byte, through every read path.
func FuzzRoundTrip(f *testing.F) {
	f.Add("")
	f.Add("Hello, World!")
	f.Add("hello\nworld")
	f.Add("日本語")
	f.Add("\x00\x01\x02")

	f.Fuzz(func(t *testing.T, content string) {
		s, err := FromString(content, nil)
		if err != nil {
			t.Fatalf("FromString failed: %v", err)
		}
		defer s.Clear()

		if s.Len() != len(content) {
			t.Fatalf("Len() = %d, want %d", s.Len(), len(content))
		}
		if s.String() != content {
			t.Error("content mismatch")
		}
		for i := 0; i < len(content); i++ {
			b, err := s.At(i)
			if err != nil {
				t.Fatalf("At(%d) failed: %v", i, err)
			}
			if b != content[i] {
				t.Fatalf("At(%d) = %q, want %q", i, b, content[i])
			}
		}
		if _, err := s.At(len(content)); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(Len()) error = %v, want ErrOutOfRange", err)
		}
	})
}

// FuzzSubstr checks that substrings agree with Go slicing for arbitrary
// inputs and positions.
func FuzzSubstr(f *testing.F) {
	f.Add("Hello, World!", 0, 5)
	f.Add("Hello, World!", 7, 100)
	f.Add("", 0, 0)
	f.Add("abc", 3, 1)
	f.Add("abc", -1, 1)

	f.Fuzz(func(t *testing.T, content string, pos, n int) {
		s, err := FromString(content, nil)
		if err != nil {
			t.Fatalf("FromString failed: %v", err)
		}
		defer s.Clear()

		sub, err := s.Substr(pos, n)
		if pos < 0 || pos > len(content) {
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("Substr(%d, %d) error = %v, want ErrOutOfRange", pos, n, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Substr(%d, %d) failed: %v", pos, n, err)
		}
		defer sub.Clear()

		want := content[pos:]
		if n >= 0 && n < len(content)-pos {
			want = content[pos : pos+n]
		}
		if got := sub.String(); got != want {
			t.Errorf("Substr(%d, %d) = %q, want %q", pos, n, got, want)
		}
	})
}
