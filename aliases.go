package bitslice

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// AliasTable binds names to bit ranges of one BitField.
// Bindings are resolved at access time, no bits are copied.
type AliasTable struct {
	mu     sync.RWMutex
	size   uint
	ranges map[string]Range
}

func newAliasTable(size uint) *AliasTable {
	return &AliasTable{size: size, ranges: make(map[string]Range)}
}

// Add binds name to the bits between start and end, in either order.
// Adding an existing name replaces its range.
func (at *AliasTable) Add(name string, start uint, end uint) error {
	if name == "" {
		return errors.Wrap(ErrInvalidAlias, "empty name")
	}
	r := NewRange(start, end)
	if err := checkRange(at.size, r); err != nil {
		return errors.Wrapf(err, "alias %q", name)
	}

	at.mu.Lock()
	defer at.mu.Unlock()
	at.ranges[name] = r
	return nil
}

// Remove drops a binding. Removing an unknown name does nothing.
func (at *AliasTable) Remove(name string) {
	at.mu.Lock()
	defer at.mu.Unlock()
	delete(at.ranges, name)
}

func (at *AliasTable) Resolve(name string) (Range, error) {
	at.mu.RLock()
	defer at.mu.RUnlock()
	r, ok := at.ranges[name]
	if !ok {
		return Range{}, errors.Wrapf(ErrUnknownAlias, "%q", name)
	}
	return r, nil
}

// Names returns the bound names in sorted order.
func (at *AliasTable) Names() []string {
	at.mu.RLock()
	names := maps.Keys(at.ranges)
	at.mu.RUnlock()
	slices.Sort(names)
	return names
}

func (at *AliasTable) clone() *AliasTable {
	at.mu.RLock()
	defer at.mu.RUnlock()
	return &AliasTable{size: at.size, ranges: maps.Clone(at.ranges)}
}
