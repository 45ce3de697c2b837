// Package bitset implements an append only bit array.
//
// It carries codeword streams between the QR data encoding stages and the
// error correction encoder.
package bitset

import (
	"bytes"
	"fmt"
)

// Bitset stores an array of bits.
type Bitset struct {
	// The number of bits stored.
	numBits int

	// Storage, packed eight bits per byte, most significant bit first.
	bits []byte
}

// New returns an initialised Bitset holding the given bits.
func New(v ...bool) *Bitset {
	b := &Bitset{numBits: 0, bits: make([]byte, 0)}
	b.AppendBools(v...)

	return b
}

// Clone returns a deep copy of from.
func Clone(from *Bitset) *Bitset {
	return &Bitset{numBits: from.numBits, bits: append([]byte(nil), from.bits...)}
}

// Len returns the number of bits stored.
func (b *Bitset) Len() int {
	return b.numBits
}

// At returns the value of the bit at index.
func (b *Bitset) At(index int) bool {
	if index < 0 || index >= b.numBits {
		panic(fmt.Sprintf("bitset: index %d out of range [0, %d)", index, b.numBits))
	}

	return (b.bits[index/8] & (0x80 >> uint(index%8))) != 0
}

// AppendBools appends bits to the Bitset.
func (b *Bitset) AppendBools(bits ...bool) {
	for _, v := range bits {
		if b.numBits%8 == 0 {
			b.bits = append(b.bits, 0)
		}

		if v {
			b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
		}

		b.numBits++
	}
}

// AppendNumBools appends num bits of value value.
func (b *Bitset) AppendNumBools(num int, value bool) {
	for i := 0; i < num; i++ {
		b.AppendBools(value)
	}
}

// AppendByte appends the numBits least significant bits of value, most
// significant of those first.
func (b *Bitset) AppendByte(value byte, numBits int) {
	if numBits < 0 || numBits > 8 {
		panic(fmt.Sprintf("bitset: numBits %d out of range [0, 8]", numBits))
	}

	for i := numBits - 1; i >= 0; i-- {
		b.AppendBools(value&(1<<uint(i)) != 0)
	}
}

// AppendBytes appends whole bytes, most significant bit first.
func (b *Bitset) AppendBytes(data []byte) {
	for _, d := range data {
		b.AppendByte(d, 8)
	}
}

// Append appends all bits of other.
func (b *Bitset) Append(other *Bitset) {
	for i := 0; i < other.numBits; i++ {
		b.AppendBools(other.At(i))
	}
}

// ByteAt returns the eight bits starting at index packed into a byte, most
// significant bit first. If fewer than eight bits remain, the value holds
// just those bits in its least significant positions.
func (b *Bitset) ByteAt(index int) (byte, error) {
	if index < 0 || index >= b.numBits {
		return 0, fmt.Errorf("bitset: index %d out of range [0, %d)", index, b.numBits)
	}

	var result byte
	for i := index; i < index+8 && i < b.numBits; i++ {
		result <<= 1
		if b.At(i) {
			result |= 1
		}
	}

	return result, nil
}

// Substr returns the bits in the range [start, end).
func (b *Bitset) Substr(start, end int) (*Bitset, error) {
	if start < 0 || start > end || end > b.numBits {
		return nil, fmt.Errorf("bitset: substring [%d, %d) out of range [0, %d)",
			start, end, b.numBits)
	}

	result := New()
	for i := start; i < end; i++ {
		result.AppendBools(b.At(i))
	}

	return result, nil
}

// Equals returns true if other holds the same bit sequence.
func (b *Bitset) Equals(other *Bitset) bool {
	if b.numBits != other.numBits {
		return false
	}

	if !bytes.Equal(b.bits[0:b.numBits/8], other.bits[0:b.numBits/8]) {
		return false
	}

	for i := 8 * (b.numBits / 8); i < b.numBits; i++ {
		if b.At(i) != other.At(i) {
			return false
		}
	}

	return true
}

// String returns the bit sequence as a string of '0' and '1' characters.
func (b *Bitset) String() string {
	var buf bytes.Buffer
	for i := 0; i < b.numBits; i++ {
		if b.At(i) {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}

	return buf.String()
}
