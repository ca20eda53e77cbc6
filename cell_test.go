package cellref

import (
	"testing"
	"testing/quick"

	"github.com/rawbytedev/cellref/pkg/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func FuzzWithMut(f *testing.F) {
	f.Add(int64(0), int64(1))
	f.Add(int64(-7), int64(42))
	f.Fuzz(fuzzWithMut)
}

func fuzzWithMut(t *testing.T, v, d int64) {
	c := New(v)
	got := WithMut(c, func(x *int64) int64 {
		*x += d
		return *x
	})
	require.Equal(t, v+d, got)
	require.Equal(t, v+d, Get(c))
}

func TestCopyScenario(t *testing.T) {
	c := New(uint8(2))
	WithMut(c, func(x *uint8) uint8 {
		*x += 3
		return *x
	})
	require.Equal(t, uint8(5), Get(c))
}

func TestCopyType(t *testing.T) {
	for _, c := range []*Cell[int]{New(5), FromSlot(slot.New(5))} {
		WithMut(c, func(x *int) int {
			*x++
			return *x
		})
		require.Equal(t, 6, Get(c))
		c.Set(10)
		ok := With(c, func(x *int) bool { return *x == 10 })
		require.True(t, ok)
	}
}

func TestRoundTrip(t *testing.T) {
	ints := func(v int64) bool {
		return Get(New(v)) == v
	}
	require.NoError(t, quick.Check(ints, &quick.Config{}))

	strs := func(v string) bool {
		return Get(New(v)) == v
	}
	require.NoError(t, quick.Check(strs, &quick.Config{}))
}

func TestMutationVisible(t *testing.T) {
	condition := func(v, d int32) bool {
		c := New(v)
		WithMut(c, func(x *int32) int32 {
			*x = *x*3 + d
			return *x
		})
		return Get(c) == v*3+d
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestWithDoesNotWriteBack(t *testing.T) {
	condition := func(v int16) bool {
		c := New(v)
		With(c, func(x *int16) int16 {
			*x = *x + 1
			return *x
		})
		return Get(c) == v
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestWithMutPanicKeepsValue(t *testing.T) {
	c := New(7)
	assert.Panics(t, func() {
		WithMut(c, func(x *int) int {
			*x = 100
			panic("boom")
		})
	})
	require.Equal(t, 7, Get(c))
}

func TestWithMutReentrant(t *testing.T) {
	c := New(1)
	r := WithMut(c, func(x *int) int {
		inner := Get(c)
		c.Set(50)
		*x += 1
		return inner
	})
	require.Equal(t, 1, r)
	// the outer write back wins over the nested Set
	require.Equal(t, 2, Get(c))
}

func TestZeroCell(t *testing.T) {
	var c Cell[int]
	require.Equal(t, 0, Get(&c))
	c.Set(3)
	require.Equal(t, 3, Get(&c))
}

func TestConvert(t *testing.T) {
	c := FromSlot(slot.New[uint8](1))
	require.Equal(t, uint8(1), Get(c))

	s := New[uint8](2).IntoSlot()
	require.Equal(t, uint8(2), slot.Get(&s))
}

func TestConvertRoundTrip(t *testing.T) {
	condition := func(v uint16) bool {
		s := FromSlot(slot.New(v)).IntoSlot()
		return slot.Get(&s) == v
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))

	fromCell := func(v uint16) bool {
		return Get(FromSlot(New(v).IntoSlot())) == v
	}
	require.NoError(t, quick.Check(fromCell, &quick.Config{}))
}

func TestForwarding(t *testing.T) {
	c := New("a")
	require.Equal(t, "a", c.Replace("b"))
	require.Equal(t, "b", c.Take())
	require.Equal(t, "", Get(c))

	c.Slot().Set("c")
	require.Equal(t, "c", Get(c))

	d := New("d")
	c.Swap(d)
	require.Equal(t, "d", Get(c))
	require.Equal(t, "c", Get(d))

	c.Swap(c)
	require.Equal(t, "d", Get(c))

	require.Equal(t, "d", c.IntoInner())
	require.Equal(t, "", Get(c))
}
