package bitslice

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Key selects bits of a BitField. It is one of Bit, Range or Alias.
type Key interface {
	rangeIn(bf *BitField) (Range, error)
}

// Range is an inclusive span of bits, High first, counted from the least significant bit.
type Range struct {
	High uint
	Low  uint
}

// NewRange accepts the bounds in either order: [1:3] and [3:1] select the same bits.
func NewRange(start uint, end uint) Range {
	return Range{High: maxUint(start, end), Low: minUint(start, end)}
}

// Width returns the number of bits in the range.
func (r Range) Width() uint {
	return r.High - r.Low + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[%v:%v]", r.High, r.Low)
}

func (r Range) rangeIn(bf *BitField) (Range, error) {
	// literal Range{} values may be ascending too
	r = NewRange(r.High, r.Low)
	return r, checkRange(bf.size, r)
}

// Bit selects a single bit.
type Bit uint

func (b Bit) rangeIn(bf *BitField) (Range, error) {
	r := Range{High: uint(b), Low: uint(b)}
	return r, checkRange(bf.size, r)
}

// Alias selects the range bound to a name with AddAlias.
type Alias string

func (a Alias) rangeIn(bf *BitField) (Range, error) {
	return bf.aliases.Resolve(string(a))
}

// Resolve returns the bounds-checked range selected by key.
func (bf *BitField) Resolve(key Key) (Range, error) {
	return key.rangeIn(bf)
}

// ParseKey reads the textual forms "3", "7:0" and "name".
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.Wrap(ErrInvalidKey, "empty key")
	}

	if strings.Contains(s, ":") {
		r, err := ParseRange(s)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	if i, err := strconv.ParseUint(s, 10, 0); err == nil {
		return Bit(i), nil
	}

	for _, r := range s {
		if unicode.IsSpace(r) {
			return nil, errors.Wrapf(ErrInvalidKey, "alias name %q", s)
		}
	}
	if first := []rune(s)[0]; first != '_' && !unicode.IsLetter(first) {
		return nil, errors.Wrapf(ErrInvalidKey, "alias name %q must start with a letter", s)
	}
	return Alias(s), nil
}

// ParseRange reads "7:0" or a single index "3" as a Range. Names are rejected.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	high, low, ok := strings.Cut(s, ":")
	if !ok {
		low = high
	}
	h, err := strconv.ParseUint(strings.TrimSpace(high), 10, 0)
	if err != nil {
		return Range{}, errors.Wrapf(ErrInvalidKey, "range %q", s)
	}
	l, err := strconv.ParseUint(strings.TrimSpace(low), 10, 0)
	if err != nil {
		return Range{}, errors.Wrapf(ErrInvalidKey, "range %q", s)
	}
	return NewRange(uint(h), uint(l)), nil
}
