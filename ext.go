package cellref

// WithTaken calls f with a pointer to the held value for reading. The value
// is moved out of c for the duration of the call, so c holds the zero T
// while f runs. If f panics, c is left holding the zero T.
//
// Go cannot hand out a read-only pointer; anything f writes through it is
// stored back just as with WithTakenMut.
func WithTaken[T any, R any](c *Cell[T], f func(*T) R) R {
	return WithTakenMut(c, f)
}

// WithTakenMut moves the held value out of c, calls f with a pointer to it
// and moves the possibly modified value back. c holds the zero T while f
// runs. If f panics, c is left holding the zero T.
func WithTakenMut[T any, R any](c *Cell[T], f func(*T) R) R {
	v := c.Take()
	r := f(&v)
	c.Set(v)
	return r
}

// GetCloned returns clone applied to the held value.
func GetCloned[T any](c *Cell[T], clone func(T) T) T {
	return WithTaken(c, func(v *T) T { return clone(*v) })
}

// GetClone returns a duplicate of the held value made by its Clone method.
func GetClone[T Cloner[T]](c *Cell[T]) T {
	return GetCloned(c, func(v T) T { return v.Clone() })
}
