package bloom

import (
	"github.com/bits-and-blooms/bitset"
)

// Filter is a fixed-capacity Bloom filter over strings.
//
// The bitset answers PossiblyContains (no false negatives); the record of
// literally-added strings answers CertainlyContains (no false positives).
// Filter is not safe for concurrent mutation; see the package doc.
type Filter struct {
	bits  *bitset.BitSet
	mBits uint
	k     uint
	added map[string]struct{}
}

// New returns an empty filter with DefaultBits capacity and k hash
// functions. k must be positive.
func New(k int) (*Filter, error) {
	return NewWithBits(DefaultBits, k)
}

// NewWithBits returns an empty filter with mBits capacity and k hash
// functions. Both must be positive.
func NewWithBits(mBits uint, k int) (*Filter, error) {
	if mBits == 0 || k <= 0 {
		return nil, ErrInvalidConfig
	}
	return &Filter{
		bits:  bitset.New(mBits),
		mBits: mBits,
		k:     uint(k),
		added: make(map[string]struct{}),
	}, nil
}

// AddString adds the literal string s, with no file probing.
func (f *Filter) AddString(s string) {
	h1, h2 := hashPair(s)
	for i := uint(0); i < f.k; i++ {
		f.bits.Set(position(h1, h2, i, f.mBits))
	}
	f.added[s] = struct{}{}
}

// PossiblyContains reports whether item may have been added.
//
// A false result is definitive; a true result may be a false positive.
func (f *Filter) PossiblyContains(item string) bool {
	h1, h2 := hashPair(item)
	for i := uint(0); i < f.k; i++ {
		if !f.bits.Test(position(h1, h2, i, f.mBits)) {
			return false
		}
	}
	return true
}

// CertainlyContains reports whether item was previously added as a literal
// string. Never a false positive.
func (f *Filter) CertainlyContains(item string) bool {
	_, ok := f.added[item]
	return ok
}

// Len returns the number of distinct literal strings added since the last
// Reset.
func (f *Filter) Len() int {
	return len(f.added)
}

// Reset clears all bits and the confirmation record, leaving the filter
// indistinguishable from a newly constructed one of the same configuration.
func (f *Filter) Reset() {
	f.bits.ClearAll()
	f.added = make(map[string]struct{})
}

// Clone returns a deep copy sharing no storage with f.
func (f *Filter) Clone() *Filter {
	added := make(map[string]struct{}, len(f.added))
	for s := range f.added {
		added[s] = struct{}{}
	}
	return &Filter{
		bits:  f.bits.Clone(),
		mBits: f.mBits,
		k:     f.k,
		added: added,
	}
}
