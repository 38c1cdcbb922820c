package bitmap

import (
	"fmt"
	"slices"
)

// FNV-1a parameters, from hash/fnv.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Clone returns a deep copy. The clone owns its own word slice, so mutating
// either bitmap never affects the other.
func (b *BitMap[W]) Clone() *BitMap[W] {
	words := make([]W, len(b.words))
	copy(words, b.words)
	return &BitMap[W]{words: words}
}

// Equal reports whether b and o hold identical word sequences. Equality is
// physical, not set-semantic: two bitmaps with the same set bits but
// different trailing zero-word counts compare unequal. Callers that want
// set-semantic comparison should ShrinkToFit both sides first.
func (b *BitMap[W]) Equal(o *BitMap[W]) bool {
	return slices.Equal(b.words, o.words)
}

// Compare orders two bitmaps lexicographically: word by word from the start,
// with a shorter sequence ordering before any extension of it. The result is
// -1, 0, or +1. The order is deterministic and consistent with Equal, but it
// is not a numeric comparison of the represented sets.
func (b *BitMap[W]) Compare(o *BitMap[W]) int {
	return slices.Compare(b.words, o.words)
}

// Hash returns a 64-bit FNV-1a hash over the little-endian bytes of the word
// sequence. It is a pure function of the physical sequence: bitmaps that are
// Equal hash identically, and trailing zero words change the hash just as
// they break equality.
func (b *BitMap[W]) Hash() uint64 {
	h := uint64(fnvOffset64)
	w := wordBits[W]()
	for _, word := range b.words {
		for shift := uint(0); shift < w; shift += 8 {
			h ^= uint64(word>>shift) & 0xff
			h *= fnvPrime64
		}
	}
	return h
}

// Words returns a copy of the stored word sequence, least significant word
// first. It is a diagnostic view of the representation, not a stable
// serialization format.
func (b *BitMap[W]) Words() []W {
	words := make([]W, len(b.words))
	copy(words, b.words)
	return words
}

// String renders the stored words as a list of per-word integer values,
// e.g. "[3 2]" for a bitmap with bits 0, 1, and 9 set over 8-bit words.
func (b *BitMap[W]) String() string {
	return fmt.Sprintf("%d", b.words)
}
