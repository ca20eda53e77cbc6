// Package slot provides Slot, a single-owner container holding exactly one
// value that can be replaced through a pointer.
//
// A Slot is not safe for concurrent use.
package slot

// Slot holds one value of type T. The zero Slot holds the zero T.
type Slot[T any] struct {
	v T
}

func New[T any](v T) Slot[T] {
	return Slot[T]{v: v}
}

// Get returns a copy of the value held by s.
func Get[T Copy](s *Slot[T]) T {
	return s.v
}

// Set overwrites the held value, discarding the previous one.
func (s *Slot[T]) Set(v T) {
	s.v = v
}

// Replace stores v and returns the previous value.
func (s *Slot[T]) Replace(v T) T {
	old := s.v
	s.v = v
	return old
}

// Take moves the value out, leaving the zero T behind.
func (s *Slot[T]) Take() T {
	var zero T
	return s.Replace(zero)
}

// Swap exchanges the values of s and other.
func (s *Slot[T]) Swap(other *Slot[T]) {
	if s == other {
		return
	}
	s.v, other.v = other.v, s.v
}
