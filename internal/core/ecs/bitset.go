package ecs

import (
	"math/bits"
	"strings"
)

const bitsPerWord = 64

// Bitset is a dynamically sized bit vector backed by uint64 words. It tracks
// an exact bit length, so two bitsets with the same set bits but different
// lengths are not equal. Bits beyond the length are always kept zero.
//
// The zero value is an empty bitset ready for use.
type Bitset struct {
	words []uint64
	size  int
}

// NewBitset creates a bitset of bitCount bits, all set to initial.
func NewBitset(bitCount int, initial bool) Bitset {
	b := Bitset{
		words: make([]uint64, wordCount(bitCount)),
		size:  bitCount,
	}
	if initial {
		for i := range b.words {
			b.words[i] = ^uint64(0)
		}
		b.maskTail()
	}
	return b
}

// BitsetOf creates a bitset from an explicit list of bit values.
func BitsetOf(values ...bool) Bitset {
	b := NewBitset(len(values), false)
	for i, v := range values {
		if v {
			b.words[i>>6] |= 1 << (i & 63)
		}
	}
	return b
}

func wordCount(bitCount int) int {
	return (bitCount + bitsPerWord - 1) / bitsPerWord
}

// maskTail clears the unused bits of the last word so they never leak into
// word-level comparisons or population counts.
func (b *Bitset) maskTail() {
	if tail := b.size & 63; tail != 0 && len(b.words) > 0 {
		b.words[len(b.words)-1] &= (1 << tail) - 1
	}
}

// Size returns the bit length.
func (b *Bitset) Size() int {
	return b.size
}

// Test reports whether the bit at index is set. It panics when index is out
// of range, matching slice indexing.
func (b *Bitset) Test(index int) bool {
	if index < 0 || index >= b.size {
		panic("ecs: bitset index out of range")
	}
	return b.words[index>>6]&(1<<(index&63)) != 0
}

// SetBit sets the bit at index to value, growing the bitset (new bits false)
// when index is beyond the current length.
func (b *Bitset) SetBit(index int, value bool) {
	if index >= b.size {
		b.Resize(index + 1)
	}
	if value {
		b.words[index>>6] |= 1 << (index & 63)
	} else {
		b.words[index>>6] &^= 1 << (index & 63)
	}
}

// Resize changes the bit length. Grown bits start false; shrunk bits are
// discarded.
func (b *Bitset) Resize(newSize int) {
	if newSize < 0 {
		panic("ecs: negative bitset size")
	}
	n := wordCount(newSize)
	switch {
	case n > len(b.words):
		grown := make([]uint64, n)
		copy(grown, b.words)
		b.words = grown
	case n < len(b.words):
		b.words = b.words[:n]
	}
	b.size = newSize
	b.maskTail()
}

// Reset clears every bit while keeping the length.
func (b *Bitset) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Clear empties the bitset down to length zero.
func (b *Bitset) Clear() {
	b.words = b.words[:0]
	b.size = 0
}

// IsEmpty reports whether no bit is set. A zero-length bitset is empty.
func (b *Bitset) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// SetBitCount returns the number of set bits.
func (b *Bitset) SetBitCount() int {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// UnsetBitCount returns the number of clear bits.
func (b *Bitset) UnsetBitCount() int {
	return b.size - b.SetBitCount()
}

// Not returns a copy with every bit within the length flipped.
func (b *Bitset) Not() Bitset {
	res := NewBitset(b.size, false)
	for i, w := range b.words {
		res.words[i] = ^w
	}
	res.maskTail()
	return res
}

// And returns the intersection, sized to the smaller operand. The truncation
// is deliberate: bits past the shorter operand's length cannot intersect, so
// only the overlap is computed.
func (b *Bitset) And(other Bitset) Bitset {
	res := NewBitset(min(b.size, other.size), false)
	for i := range res.words {
		res.words[i] = b.words[i] & other.words[i]
	}
	res.maskTail()
	return res
}

// Or returns the union over the overlap, sized to the smaller operand. As
// with And, bits past the shorter length are deliberately dropped.
func (b *Bitset) Or(other Bitset) Bitset {
	res := NewBitset(min(b.size, other.size), false)
	for i := range res.words {
		res.words[i] = b.words[i] | other.words[i]
	}
	res.maskTail()
	return res
}

// Xor returns the symmetric difference over the overlap, sized to the
// smaller operand.
func (b *Bitset) Xor(other Bitset) Bitset {
	res := NewBitset(min(b.size, other.size), false)
	for i := range res.words {
		res.words[i] = b.words[i] ^ other.words[i]
	}
	res.maskTail()
	return res
}

// Intersects reports whether the two bitsets share any set bit. Equivalent
// to !b.And(other).IsEmpty() without the allocation; Refresh runs this once
// per entity per system, every frame.
func (b *Bitset) Intersects(other Bitset) bool {
	n := min(len(b.words), len(other.words))
	for i := 0; i < n; i++ {
		if b.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// GrowBy extends the length by n bits, filled false. Together with ShrinkBy
// it replaces the shift operators of a fixed-width bitset: the choice here
// is a pure resize that leaves existing bit values in place, not an
// arithmetic shift.
func (b *Bitset) GrowBy(n int) {
	if n < 0 {
		panic("ecs: negative bitset growth")
	}
	b.Resize(b.size + n)
}

// ShrinkBy drops the last n bits. It panics when n exceeds the length.
func (b *Bitset) ShrinkBy(n int) {
	if n < 0 || n > b.size {
		panic("ecs: bitset shrink out of range")
	}
	b.Resize(b.size - n)
}

// Equal reports bit-for-bit equality. Lengths must match.
func (b *Bitset) Equal(other Bitset) bool {
	if b.size != other.size {
		return false
	}
	for i, w := range b.words {
		if w != other.words[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (b *Bitset) Clone() Bitset {
	res := Bitset{
		words: make([]uint64, len(b.words)),
		size:  b.size,
	}
	copy(res.words, b.words)
	return res
}

// String renders the bits most-significant-last, e.g. "10010".
func (b *Bitset) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		if b.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
