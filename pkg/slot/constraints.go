package slot

import "golang.org/x/exp/constraints"

// Copy is satisfied by types whose values can be duplicated by plain
// assignment without the duplicate sharing any mutable state with the
// original. Pointers, slices, maps, channels and funcs are left out since
// their copies alias the same backing memory.
type Copy interface {
	constraints.Integer | constraints.Float | constraints.Complex |
		~bool | ~string
}
