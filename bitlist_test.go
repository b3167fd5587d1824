package bitslice

import (
	"testing"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBitlist(t *testing.T) {
	bf := mustNew(t, 0b1001_0110, 8)

	bl := bf.ToBitlist()
	require.Equal(t, uint64(8), bl.Len())
	for i := uint64(0); i < bl.Len(); i++ {
		isSet, err := bf.IsSet(uint(i))
		require.NoError(t, err)
		assert.Equal(t, isSet, bl.BitAt(i), "bit %v", i)
	}
}

func TestBitlistRoundTrip(t *testing.T) {
	for _, size := range []uint{1, 7, 64, 65, 200, MaxWidth} {
		bf, err := Parse("0x5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A", size)
		require.NoError(t, err)

		back, err := FromBitlist(bf.ToBitlist())
		require.NoError(t, err)
		assert.Equal(t, size, back.Width())
		assert.Equal(t, bf.Bits(), back.Bits())
	}
}

func TestFromBitlistWidth(t *testing.T) {
	_, err := FromBitlist(bitfield.NewBitlist(MaxWidth + 1))
	assert.ErrorIs(t, err, ErrInvalidWidth)

	_, err = FromBitlist(bitfield.NewBitlist(0))
	assert.ErrorIs(t, err, ErrInvalidWidth)

	bl := bitfield.NewBitlist(3)
	bl.SetBitAt(2, true)
	bf, err := FromBitlist(bl)
	require.NoError(t, err)
	assert.Equal(t, "0x0004 (4)", bf.String())
}
