// Package cellref provides Cell, a single-owner value container with
// closure based access to the held value by pointer.
//
// Two families of access functions exist:
//
//   - Get, With and WithMut work on Copy types. They operate on a copy of
//     the held value and never vacate the cell.
//   - WithTaken, WithTakenMut and GetCloned work on any type. They move the
//     value out of the cell, leaving the zero value in its place, hand the
//     caller's closure a pointer to the moved value, then store it back.
//
// While a WithTaken or WithTakenMut closure runs, the cell holds the zero
// value. A closure that reaches back into the same cell observes that zero
// value and never the value it was handed. If the closure panics the value
// is not stored back and the cell keeps holding the zero value.
//
// A type that is Copy may be used with either family; the first never
// empties the cell, the second always does for the duration of the call.
//
// A Cell is not safe for concurrent use.
package cellref

import (
	"github.com/rawbytedev/cellref/pkg/slot"
)

// Copy is the set of types accepted by Get, With and WithMut.
type Copy = slot.Copy

// Cloner is implemented by types that can produce an independent duplicate
// of themselves.
type Cloner[T any] interface {
	Clone() T
}

// Cell wraps a slot.Slot. The zero Cell holds the zero T and is ready to use.
type Cell[T any] struct {
	s slot.Slot[T]
}

// New returns a cell holding v.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{s: slot.New(v)}
}

// FromSlot returns a cell holding the value of s.
func FromSlot[T any](s slot.Slot[T]) *Cell[T] {
	return &Cell[T]{s: s}
}

// IntoSlot moves the held value into a new slot.Slot, leaving c holding the
// zero T.
func (c *Cell[T]) IntoSlot() slot.Slot[T] {
	return slot.New(c.s.Take())
}

// IntoInner moves the held value out, leaving c holding the zero T.
func (c *Cell[T]) IntoInner() T {
	return c.s.Take()
}

// Slot returns the underlying container.
func (c *Cell[T]) Slot() *slot.Slot[T] {
	return &c.s
}

func (c *Cell[T]) Set(v T) {
	c.s.Set(v)
}

func (c *Cell[T]) Replace(v T) T {
	return c.s.Replace(v)
}

func (c *Cell[T]) Take() T {
	return c.s.Take()
}

// Swap exchanges the contents of c and other.
func (c *Cell[T]) Swap(other *Cell[T]) {
	c.s.Swap(&other.s)
}

// Get returns a copy of the value held by c.
func Get[T Copy](c *Cell[T]) T {
	return slot.Get(&c.s)
}

// With calls f with a pointer to a copy of the held value. Writes through
// the pointer are discarded.
func With[T Copy, R any](c *Cell[T], f func(*T) R) R {
	v := Get(c)
	return f(&v)
}

// WithMut calls f with a pointer to a copy of the held value and stores the
// copy back once f returns. If f panics c keeps its previous value.
func WithMut[T Copy, R any](c *Cell[T], f func(*T) R) R {
	v := Get(c)
	r := f(&v)
	c.Set(v)
	return r
}
