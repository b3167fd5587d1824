package bitslice

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

// ToBitlist returns the bits of the field as a bitfield.Bitlist of Width() bits,
// bit i of the field at index i of the list.
func (bf *BitField) ToBitlist() bitfield.Bitlist {
	v := bf.Int()
	bl := bitfield.NewBitlist(uint64(bf.size))
	for i := uint(0); i < bf.size; i++ {
		if bitAt(v, i) {
			bl.SetBitAt(uint64(i), true)
		}
	}
	return bl
}

// FromBitlist creates a field whose width is the length of the list.
func FromBitlist(bl bitfield.Bitlist) (*BitField, error) {
	n := bl.Len()
	if n == 0 || n > MaxWidth {
		return nil, errors.Wrapf(ErrInvalidWidth, "bitlist of length %v", n)
	}
	v := new(uint256.Int)
	for i := uint64(0); i < n; i++ {
		if bl.BitAt(i) {
			v[i/64] |= 1 << (i % 64)
		}
	}
	return newField(v, uint(n)), nil
}
