package bitslice

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"
	"sync"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// MaxWidth is the widest BitField that can be declared.
const MaxWidth = 256

// Integer is anything that can be used as the right-hand side of an operator
// or as a value written into a range. A nil Integer reads as zero.
type Integer interface {
	Int() *uint256.Int
}

func intOf(x Integer) *uint256.Int {
	if x == nil {
		return new(uint256.Int)
	}
	return x.Int()
}

// Uint64 is a plain unsigned constant usable as an Integer.
type Uint64 uint64

func (u Uint64) Int() *uint256.Int {
	return uint256.NewInt(uint64(u))
}

// BitField is an unsigned integer of fixed width with Verilog-like bit addressing.
// Every mutation truncates the value to the width; overflow is never an error.
// A BitField is safe for concurrent use.
type BitField struct {
	mu    sync.Mutex
	value uint256.Int
	// always in range [1 ; MaxWidth]
	size    uint
	aliases *AliasTable
}

// New creates a BitField of the given width. The value is truncated to the width.
func New(value uint64, size uint) (*BitField, error) {
	if err := checkWidth(size); err != nil {
		return nil, err
	}
	return newField(uint256.NewInt(value), size), nil
}

// NewAuto creates a BitField just wide enough to hold value, at least 1 bit.
func NewAuto(value uint64) *BitField {
	return newField(uint256.NewInt(value), maxUint(1, uint(bits.Len64(value))))
}

// NewFromInt creates a BitField from a wide value. A zero size selects the
// minimal width that represents the value.
func NewFromInt(value *uint256.Int, size uint) (*BitField, error) {
	if value == nil {
		value = new(uint256.Int)
	}
	if size == 0 {
		size = maxUint(1, uint(value.BitLen()))
	}
	if err := checkWidth(size); err != nil {
		return nil, err
	}
	return newField(value, size), nil
}

// Parse reads decimal, 0x hex, 0o octal or 0b binary text. A zero size
// selects the minimal width. Negative text fails like a bad width.
func Parse(s string, size uint) (*BitField, error) {
	b, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidValue, "cannot parse %q", s)
	}
	if b.Sign() < 0 {
		return nil, errors.Wrapf(ErrInvalidWidth, "negative value %q", s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, errors.Wrapf(ErrInvalidValue, "%q does not fit in %v bits", s, MaxWidth)
	}
	return NewFromInt(v, size)
}

func newField(value *uint256.Int, size uint) *BitField {
	bf := &BitField{size: size, aliases: newAliasTable(size)}
	bf.value.And(value, mask(size))
	return bf
}

// Width returns the declared width in bits. It never changes for a given receiver.
func (bf *BitField) Width() uint {
	return bf.size
}

// Int returns a copy of the value.
func (bf *BitField) Int() *uint256.Int {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	return bf.value.Clone()
}

// Uint64 returns the low 64 bits of the value.
func (bf *BitField) Uint64() uint64 {
	return bf.Int().Uint64()
}

// IsUint64 reports whether the value fits in a uint64.
func (bf *BitField) IsUint64() bool {
	return bf.Int().IsUint64()
}

func (bf *BitField) Big() *big.Int {
	return bf.Int().ToBig()
}

// Aliases returns the alias table of the receiver.
func (bf *BitField) Aliases() *AliasTable {
	return bf.aliases
}

// AddAlias binds name to the bits between start and end, in either order.
func (bf *BitField) AddAlias(name string, start uint, end uint) error {
	return bf.aliases.Add(name, start, end)
}

// Get reads the bits selected by key as a BitField of the selected width.
func (bf *BitField) Get(key Key) (*BitField, error) {
	r, err := key.rangeIn(bf)
	if err != nil {
		return nil, err
	}
	bf.mu.Lock()
	v := field(&bf.value, r)
	bf.mu.Unlock()
	return newField(v, r.Width()), nil
}

// Set writes value into the bits selected by key. The value is truncated to
// the selected width, bits outside of it are left unchanged.
func (bf *BitField) Set(key Key, value Integer) error {
	r, err := key.rangeIn(bf)
	if err != nil {
		return err
	}
	v := intOf(value)

	bf.mu.Lock()
	defer bf.mu.Unlock()
	setField(&bf.value, r, v)
	return nil
}

func (bf *BitField) GetRange(r Range) (*BitField, error) {
	return bf.Get(r)
}

func (bf *BitField) SetRange(r Range, value Integer) error {
	return bf.Set(r, value)
}

// GetBit returns 0 or 1.
func (bf *BitField) GetBit(index uint) (uint, error) {
	isSet, err := bf.IsSet(index)
	if isSet {
		return 1, err
	}
	return 0, err
}

// SetBit writes the lowest bit of value at index.
func (bf *BitField) SetBit(index uint, value uint) error {
	return bf.Set(Bit(index), Uint64(value))
}

func (bf *BitField) ClearBit(index uint) error {
	return bf.SetBit(index, 0)
}

func (bf *BitField) ToggleBit(index uint) error {
	if err := checkRange(bf.size, Range{index, index}); err != nil {
		return err
	}
	bf.mu.Lock()
	defer bf.mu.Unlock()
	bf.value[index/64] ^= 1 << (index % 64)
	return nil
}

func (bf *BitField) IsSet(index uint) (bool, error) {
	if err := checkRange(bf.size, Range{index, index}); err != nil {
		return false, err
	}
	bf.mu.Lock()
	defer bf.mu.Unlock()
	return bitAt(&bf.value, index), nil
}

// Copies the low bits of a source field into a destination field.
// Returns the number of bits copied, which will be the minimum of src.Width() and dst.Width().
func Copy(dst *BitField, src *BitField) uint {
	copyLen := minUint(src.size, dst.size)
	v := src.Int()

	dst.mu.Lock()
	defer dst.mu.Unlock()
	setField(&dst.value, Range{High: copyLen - 1}, v)
	return copyLen
}

// BitIterator walks the bits of a field from the least significant one.
type BitIterator struct {
	bf    *BitField
	index uint
}

// Iterator returns a BitIterator positioned before bit 0.
func (bf *BitField) Iterator() *BitIterator {
	return &BitIterator{bf: bf}
}

// Next returns the next bit and its index. ok is false after the last bit.
func (it *BitIterator) Next() (ok bool, value bool, index uint) {
	if it.index == it.bf.size {
		return false, false, it.index
	}
	index = it.index
	it.index++
	it.bf.mu.Lock()
	value = bitAt(&it.bf.value, index)
	it.bf.mu.Unlock()
	return true, value, index
}

// String renders the value as hex, at least four digits, followed by decimal: 0x0005 (5).
func (bf *BitField) String() string {
	b := bf.Big()
	digits := maxUint(4, (bf.size+3)/4)
	return fmt.Sprintf("0x%0*X (%s)", int(digits), b, b.String())
}

// Bits renders the value in binary, most significant bit first, exactly Width() digits.
func (bf *BitField) Bits() string {
	return fmt.Sprintf("%0*b", int(bf.size), bf.Big())
}

// mask returns width ones. 1<<256 wraps to zero, so width 256 yields all ones.
func mask(width uint) *uint256.Int {
	m := new(uint256.Int).Lsh(uint256.NewInt(1), width)
	return m.Sub(m, uint256.NewInt(1))
}

func field(v *uint256.Int, r Range) *uint256.Int {
	z := new(uint256.Int).Rsh(v, r.Low)
	return z.And(z, mask(r.Width()))
}

// setField clears the range, then ors the truncated value in.
func setField(v *uint256.Int, r Range, value *uint256.Int) {
	m := mask(r.Width())
	nv := new(uint256.Int).And(value, m)
	nv.Lsh(nv, r.Low)

	clr := new(uint256.Int).Lsh(m, r.Low)
	clr.Not(clr)
	v.And(v, clr)
	v.Or(v, nv)
}

func bitAt(v *uint256.Int, index uint) bool {
	return (v[index/64]>>(index%64))&1 == 1
}

func minUint(a uint, b uint) uint {
	if a < b {
		return a
	}
	return b
}

func maxUint(a uint, b uint) uint {
	if a > b {
		return a
	}
	return b
}
