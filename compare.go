package cellref

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Ord is the set of Copy types with a total order.
type Ord interface {
	constraints.Integer | ~string
}

// Equal reports whether a and b hold equal values.
func Equal[T Copy](a, b *Cell[T]) bool {
	return Get(a) == Get(b)
}

// Compare returns -1, 0 or +1 depending on whether the value in a is less
// than, equal to or greater than the value in b.
func Compare[T Ord](a, b *Cell[T]) int {
	x, y := Get(a), Get(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// PartialCompare is Compare for types that may hold unordered values. The
// boolean is false when either value is NaN.
func PartialCompare[T constraints.Ordered](a, b *Cell[T]) (int, bool) {
	x, y := Get(a), Get(b)
	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	case x == y:
		return 0, true
	default:
		return 0, false
	}
}

// Clone returns a new cell holding a copy of the value in c.
func Clone[T Copy](c *Cell[T]) *Cell[T] {
	return New(Get(c))
}

// String formats the held value. It has a value receiver so a Cell stored
// by value prints the same as a *Cell; it works on the receiver copy.
func (c Cell[T]) String() string {
	return WithTaken(&c, func(v *T) string {
		return fmt.Sprintf("Cell { value: %v }", *v)
	})
}

func (c Cell[T]) GoString() string {
	return WithTaken(&c, func(v *T) string {
		return fmt.Sprintf("Cell { value: %#v }", *v)
	})
}
