// Package bloom provides approximate set membership for deduplicating
// requests within a run.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by strings. It is not safe for
// concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected keys
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen adds key and reports whether it might have been added before.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(key string) bool {
	return f.f.TestAndAddString(key)
}
