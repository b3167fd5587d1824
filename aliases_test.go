package bitslice

import (
	"math/rand"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliasExample(t *testing.T) {
	bf := mustNew(t, 5, 4)
	require.NoError(t, bf.AddAlias("lower", 0, 1))
	require.NoError(t, bf.AddAlias("upper", 2, 3))

	lower, err := bf.Get(Alias("lower"))
	require.NoError(t, err)
	upper, err := bf.Get(Alias("upper"))
	require.NoError(t, err)

	assert.Equal(t, uint64(1), lower.Uint64())
	assert.Equal(t, uint64(1), upper.Uint64())
	assert.Equal(t, uint(2), upper.Width())

	require.NoError(t, bf.Set(Alias("upper"), Uint64(0b10)))
	assert.Equal(t, uint64(0b1001), bf.Uint64())
}

func TestAliasEquivalence(t *testing.T) {
	fuzzer := fuzz.NewWithSeed(0)
	rnd := rand.New(rand.NewSource(0))

	for i := 0; i < 2000; i++ {
		var v, w uint64
		fuzzer.Fuzz(&v)
		fuzzer.Fuzz(&w)
		size := uint(1 + rnd.Intn(64))
		start, end := uint(rnd.Intn(int(size))), uint(rnd.Intn(int(size)))
		r := NewRange(start, end)

		viaAlias := mustNew(t, v, size)
		viaRange := mustNew(t, v, size)
		require.NoError(t, viaAlias.AddAlias("field", start, end))

		resolved, err := viaAlias.Aliases().Resolve("field")
		require.NoError(t, err)
		require.Equal(t, r, resolved)

		a, err := viaAlias.Get(Alias("field"))
		require.NoError(t, err)
		b, err := viaRange.GetRange(r)
		require.NoError(t, err)
		require.Equal(t, b.String(), a.String())

		w &= mask64(r.Width())
		require.NoError(t, viaAlias.Set(Alias("field"), Uint64(w)))
		require.NoError(t, viaRange.SetRange(r, Uint64(w)))
		require.Equal(t, viaRange.String(), viaAlias.String())
	}
}

func TestAliasTable(t *testing.T) {
	bf := mustNew(t, 0xA5, 8)
	at := bf.Aliases()

	t.Run("unknown", func(t *testing.T) {
		_, err := at.Resolve("nope")
		assert.ErrorIs(t, err, ErrUnknownAlias)
		_, err = bf.Get(Alias("nope"))
		assert.ErrorIs(t, err, ErrUnknownAlias)
		assert.ErrorIs(t, bf.Set(Alias("nope"), Uint64(1)), ErrUnknownAlias)
	})

	t.Run("empty_name", func(t *testing.T) {
		assert.ErrorIs(t, at.Add("", 0, 1), ErrInvalidAlias)
	})

	t.Run("out_of_bounds", func(t *testing.T) {
		assert.ErrorIs(t, at.Add("high", 8, 4), ErrRangeOutOfBounds)
		assert.ErrorIs(t, at.Add("high", 4, 8), ErrRangeOutOfBounds)
		_, err := at.Resolve("high")
		assert.ErrorIs(t, err, ErrUnknownAlias)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, at.Add("nibble", 3, 0))
		require.NoError(t, at.Add("nibble", 7, 4))
		r, err := at.Resolve("nibble")
		require.NoError(t, err)
		assert.Equal(t, Range{High: 7, Low: 4}, r)

		nibble, err := bf.Get(Alias("nibble"))
		require.NoError(t, err)
		assert.Equal(t, uint64(0xA), nibble.Uint64())
	})

	t.Run("names_and_remove", func(t *testing.T) {
		require.NoError(t, at.Add("b", 1, 1))
		require.NoError(t, at.Add("a", 0, 0))
		assert.Equal(t, []string{"a", "b", "nibble"}, at.Names())

		at.Remove("b")
		at.Remove("never-added")
		assert.Equal(t, []string{"a", "nibble"}, at.Names())
	})
}

func TestAliasResolvesAtAccessTime(t *testing.T) {
	bf := mustNew(t, 0, 8)
	require.NoError(t, bf.AddAlias("flag", 0, 0))

	require.NoError(t, bf.SetBit(0, 1))
	flag, err := bf.Get(Alias("flag"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), flag.Uint64())

	require.NoError(t, bf.SetBit(0, 0))
	flag, err = bf.Get(Alias("flag"))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), flag.Uint64())
}
