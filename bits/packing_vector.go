package bits

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"

	"github.com/zeebo/xxh3"
)

var _ BitString = (*PackingVector)(nil)

// PackingVector is a mutable inclusion vector: coordinate i is 1 when item i
// is packed. Coordinate i lives in bit i%64 of word i/64; bits beyond the size
// are always zero.
type PackingVector struct {
	data     []uint64
	sizeBits uint32
}

func NewPackingVector(sizeBits uint32) *PackingVector {
	return &PackingVector{
		data:     make([]uint64, wordsFor(sizeBits)),
		sizeBits: sizeBits,
	}
}

// NewPackingVectorFromBinary parses a string of '0' and '1', coordinate 0 first.
func NewPackingVectorFromBinary(text string) *PackingVector {
	for _, r := range text {
		if r != '0' && r != '1' {
			panic(fmt.Sprintf("invalid string format, %q", text))
		}
	}

	v := NewPackingVector(uint32(len(text)))
	for i, r := range text {
		if r == '1' {
			v.data[i/64] |= uint64(1) << (uint32(i) % 64)
		}
	}
	return v
}

func (v *PackingVector) Size() uint32 {
	return v.sizeBits
}

func (v *PackingVector) IsEmpty() bool {
	return v.sizeBits == 0
}

func (v *PackingVector) At(index uint32) bool {
	if index >= v.sizeBits {
		panic("index out of bounds")
	}
	return v.data[index/64]&(uint64(1)<<(index%64)) != 0
}

func (v *PackingVector) Set(index uint32, value bool) {
	if index >= v.sizeBits {
		panic("index out of bounds")
	}
	if value {
		v.data[index/64] |= uint64(1) << (index % 64)
	} else {
		v.data[index/64] &^= uint64(1) << (index % 64)
	}
}

// Reset clears every coordinate.
func (v *PackingVector) Reset() {
	for i := range v.data {
		v.data[i] = 0
	}
}

// LastSet returns the highest coordinate equal to 1, or -1 for the empty packing.
func (v *PackingVector) LastSet() int {
	for w := len(v.data) - 1; w >= 0; w-- {
		if msb := MostSignificantBit(v.data[w]); msb >= 0 {
			return w*64 + msb
		}
	}
	return -1
}

// TrailingZeros counts the zero coordinates scanned from index Size()-1
// backward up to the first 1. The empty packing yields Size().
func (v *PackingVector) TrailingZeros() uint32 {
	return uint32(int(v.sizeBits) - 1 - v.LastSet())
}

func (v *PackingVector) OnesCount() int {
	count := 0
	for _, w := range v.data {
		count += bits.OnesCount64(w)
	}
	return count
}

func (v *PackingVector) Clone() *PackingVector {
	data := make([]uint64, len(v.data))
	copy(data, v.data)
	return &PackingVector{data: data, sizeBits: v.sizeBits}
}

// CopyFrom overwrites v with src. Both vectors must have the same size.
func (v *PackingVector) CopyFrom(src *PackingVector) {
	if v.sizeBits != src.sizeBits {
		panic("packing vector size mismatch")
	}
	copy(v.data, src.data)
}

func (v *PackingVector) Equal(other BitString) bool {
	if v.sizeBits != other.Size() {
		return false
	}
	if o, ok := other.(*PackingVector); ok {
		for i := range v.data {
			if v.data[i] != o.data[i] {
				return false
			}
		}
		return true
	}
	for i := uint32(0); i < v.sizeBits; i++ {
		if v.At(i) != other.At(i) {
			return false
		}
	}
	return true
}

func (v *PackingVector) String() string {
	var sb strings.Builder
	sb.Grow(int(v.sizeBits))
	for i := uint32(0); i < v.sizeBits; i++ {
		if v.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Data returns the coordinates packed little-endian, ceil(Size()/8) bytes.
func (v *PackingVector) Data() []byte {
	buf := make([]byte, len(v.data)*8)
	for i, w := range v.data {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return buf[:(v.sizeBits+7)/8]
}

// Hash mixes the size in, so "100" and "1000" differ.
func (v *PackingVector) Hash() uint64 {
	buf := make([]byte, 4, 4+len(v.data)*8)
	binary.LittleEndian.PutUint32(buf, v.sizeBits)
	buf = append(buf, v.Data()...)
	return xxh3.Hash(buf)
}

func (v *PackingVector) HashWithSeed(seed uint64) uint64 {
	h := xxh3.New()

	seedBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(seedBuf, seed)
	h.Write(seedBuf)

	sizeBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(sizeBuf, v.sizeBits)
	h.Write(sizeBuf)

	h.Write(v.Data())
	return h.Sum64()
}
