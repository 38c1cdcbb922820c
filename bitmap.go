// Package bitmap provides a growable, densely packed boolean array indexed
// by non-negative integers.
//
// Bits are stored contiguously in a slice of fixed-width unsigned words,
// with bit 0 in the least significant bit of the first word. Storage grows
// transparently when a bit beyond the current capacity is set, and reads
// beyond the end of storage are valid: they report the bit as unset rather
// than failing.
//
// A BitMap is not safe for concurrent use. Many goroutines may call the
// read-only methods concurrently, but a mutation requires exclusive access
// to the instance.
package bitmap

import "math/bits"

// Word is the set of storage widths a BitMap can be instantiated with.
// Wider words shorten the slice walked by Count and IsEmpty; narrower words
// waste less space when the highest set bit lands just past a word boundary.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMap is a growable compact boolean array backed by words of type W.
//
// The zero value is an empty bitmap ready for use.
type BitMap[W Word] struct {
	words []W
}

// data layout:
// bit i lives in words[i / wordBits] at offset i % wordBits.

func wordBits[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

func bitIndex[W Word](pos uint) (uint, uint) {
	w := wordBits[W]()
	return pos / w, pos % w
}

// New creates an empty BitMap. It does not allocate.
func New[W Word]() *BitMap[W] {
	return &BitMap[W]{}
}

// WithCapacity creates an empty BitMap that can hold at least capacity bits
// without reallocating. The reservation rounds up to a whole number of
// words, so the resulting Capacity may exceed the request; a capacity of 0
// behaves exactly like New and does not allocate.
func WithCapacity[W Word](capacity uint) *BitMap[W] {
	if capacity == 0 {
		return New[W]()
	}
	w := wordBits[W]()
	return &BitMap[W]{words: make([]W, 0, (capacity+w-1)/w)}
}

// IsEmpty reports whether every bit is 0. It scans the stored words rather
// than consulting a cached flag, so it costs linear time in storage length.
func (b *BitMap[W]) IsEmpty() bool {
	for _, word := range b.words {
		if word != 0 {
			return false
		}
	}
	return true
}

// Test reports whether bit pos is set. Positions beyond the end of storage
// are valid and report false. Test never allocates.
func (b *BitMap[W]) Test(pos uint) bool {
	major, minor := bitIndex[W](pos)
	if major >= uint(len(b.words)) {
		return false
	}
	return b.words[major]&(1<<minor) != 0
}

// Set sets bit pos to 1 and reports whether this call changed it, i.e. true
// exactly when the bit was previously 0. If pos lies beyond the end of
// storage, the word slice grows to reach it, zero-filling the new words.
// Set is the only method that grows storage.
func (b *BitMap[W]) Set(pos uint) bool {
	major, minor := bitIndex[W](pos)
	if major >= uint(len(b.words)) {
		b.words = append(b.words, make([]W, major+1-uint(len(b.words)))...)
	}
	mask := W(1) << minor
	prev := b.words[major] & mask
	b.words[major] |= mask
	return prev == 0
}

// Unset clears bit pos to 0 and reports whether this call changed it, i.e.
// true exactly when the bit was previously 1. A position beyond the end of
// storage is already 0, so Unset returns false without allocating. Unset
// never frees storage either: a word zeroed out by clearing its last bit
// stays in place until ShrinkToFit.
func (b *BitMap[W]) Unset(pos uint) bool {
	major, minor := bitIndex[W](pos)
	if major >= uint(len(b.words)) {
		return false
	}
	mask := W(1) << minor
	prev := b.words[major] & mask
	b.words[major] &^= mask
	return prev != 0
}

// ClearAll resets every bit to 0 by truncating the word sequence to zero
// length. The allocation is kept, so Capacity is unchanged and subsequent
// Sets within the old capacity do not reallocate.
func (b *BitMap[W]) ClearAll() {
	b.words = b.words[:0]
}

// Count returns the number of set bits.
func (b *BitMap[W]) Count() uint {
	total := uint(0)
	for _, word := range b.words {
		total += uint(bits.OnesCount64(uint64(word)))
	}
	return total
}

// Capacity returns the number of bits the bitmap can hold without
// reallocating.
func (b *BitMap[W]) Capacity() uint {
	return uint(cap(b.words)) * wordBits[W]()
}

// ShrinkToFit drops the trailing run of all-zero words and reallocates the
// storage down to the remaining length. Zero words before the last nonzero
// word are kept: removing one would shift the position of every bit after
// it. The runtime may round the new allocation up slightly, so Capacity
// afterwards is close to, but not guaranteed equal to, the minimum.
func (b *BitMap[W]) ShrinkToFit() {
	n := len(b.words)
	for n > 0 && b.words[n-1] == 0 {
		n--
	}
	if n == 0 {
		b.words = nil
		return
	}
	words := make([]W, n)
	copy(words, b.words)
	b.words = words
}
