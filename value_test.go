package bitmap

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClone(t *testing.T) {
	b := New[uint8]()
	b.Set(9)

	c := b.Clone()
	assert.True(t, b.Equal(c))

	c.Set(20)
	assert.False(t, b.Test(20), "clone must not share storage")
	assert.False(t, b.Equal(c))

	b.Unset(9)
	assert.True(t, c.Test(9))
}

func TestEqualIsPhysical(t *testing.T) {
	shrunk := New[uint8]()
	shrunk.Set(5)

	padded := New[uint8]()
	padded.Set(5)
	padded.Set(100)
	padded.Unset(100)

	// Same set bits, different trailing zero words.
	assert.Equal(t, shrunk.Count(), padded.Count())
	assert.False(t, shrunk.Equal(padded))
	assert.NotZero(t, shrunk.Compare(padded))

	padded.ShrinkToFit()
	assert.True(t, shrunk.Equal(padded))
	assert.Zero(t, shrunk.Compare(padded))
}

func TestEqualAfterClearAll(t *testing.T) {
	b := New[uint8]()
	b.Set(42)
	b.ClearAll()
	assert.True(t, b.Equal(New[uint8]()))
}

func TestCompare(t *testing.T) {
	empty := New[uint8]()

	one := New[uint8]()
	one.Set(0) // [1]

	two := New[uint8]()
	two.Set(1) // [2]

	oneLong := New[uint8]()
	oneLong.Set(0)
	oneLong.Set(8) // [1 1]

	assert.Negative(t, empty.Compare(one))
	assert.Positive(t, one.Compare(empty))
	assert.Negative(t, one.Compare(two))
	assert.Negative(t, one.Compare(oneLong), "a prefix orders before its extension")
	assert.Zero(t, one.Compare(one.Clone()))
}

func TestCompareGivesDeterministicSort(t *testing.T) {
	a := New[uint8]()
	a.Set(7)
	b := New[uint8]()
	b.Set(0)
	c := New[uint8]()
	c.Set(9)

	maps := []*BitMap[uint8]{a, b, c}
	sort.Slice(maps, func(i, j int) bool { return maps[i].Compare(maps[j]) < 0 })

	assert.Same(t, c, maps[0]) // [0 2]
	assert.Same(t, b, maps[1]) // [1]
	assert.Same(t, a, maps[2]) // [128]
}

func TestHashMatchesEquality(t *testing.T) {
	a := New[uint8]()
	a.Set(3)
	a.Set(64)

	b := a.Clone()
	assert.Equal(t, a.Hash(), b.Hash())

	b.Set(65)
	assert.NotEqual(t, a.Hash(), b.Hash())

	// Trailing zero words are part of the hashed sequence.
	c := a.Clone()
	c.Set(200)
	c.Unset(200)
	assert.NotEqual(t, a.Hash(), c.Hash())
	c.ShrinkToFit()
	assert.Equal(t, a.Hash(), c.Hash())
}

func TestWordsReturnsCopy(t *testing.T) {
	b := New[uint8]()
	b.Set(0)
	b.Set(1)
	b.Set(9)
	assert.Equal(t, []uint8{3, 2}, b.Words())

	words := b.Words()
	words[0] = 0
	assert.True(t, b.Test(0))
}

func TestString(t *testing.T) {
	b := New[uint8]()
	assert.Equal(t, "[]", b.String())

	b.Set(0)
	b.Set(1)
	b.Set(9)
	assert.Equal(t, "[3 2]", b.String())
}
