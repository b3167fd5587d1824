package bitslice

import "github.com/pkg/errors"

var (
	// ErrInvalidWidth is returned when a declared width is zero or wider than MaxWidth,
	// or when the value is negative.
	ErrInvalidWidth = errors.New("invalid width")
	// ErrRangeOutOfBounds is returned when a bit index or a range high bound is not below the width.
	ErrRangeOutOfBounds = errors.New("range out of bounds")
	// ErrUnknownAlias is returned when resolving a name that was never added.
	ErrUnknownAlias = errors.New("unknown alias")
	// ErrInvalidAlias is returned when adding an alias with an empty name.
	ErrInvalidAlias = errors.New("invalid alias")
	// ErrInvalidValue is returned for unparsable or too wide input values.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidKey is returned by ParseKey for text that is neither an index, a range nor a name.
	ErrInvalidKey = errors.New("invalid key")
)

func checkWidth(size uint) error {
	if size == 0 || size > MaxWidth {
		return errors.Wrapf(ErrInvalidWidth, "width %v not in [1:%v]", size, MaxWidth)
	}
	return nil
}

func checkRange(size uint, r Range) error {
	if r.High >= size {
		if r.High == r.Low {
			return errors.Wrapf(ErrRangeOutOfBounds, "index [%v] with width %v", r.High, size)
		}
		return errors.Wrapf(ErrRangeOutOfBounds, "range [%v:%v] with width %v", r.High, r.Low, size)
	}
	return nil
}
