// Package bloom suppresses repeated item URLs within one extraction run.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultFalsePositiveRate keeps the chance of wrongly skipping a distinct
// URL negligible for index pages with a few thousand entries.
const DefaultFalsePositiveRate = 1e-7

// SeenSet remembers URLs visited during a single routine invocation.
type SeenSet struct {
	f *bloom.BloomFilter
}

// NewSeenSet returns a set sized for n expected URLs.
// A non-positive n is treated as 1.
func NewSeenSet(n int) *SeenSet {
	if n < 1 {
		n = 1
	}
	return &SeenSet{
		f: bloom.NewWithEstimates(uint(n), DefaultFalsePositiveRate),
	}
}

// Visit records url and reports whether it had been visited before.
func (s *SeenSet) Visit(url string) (seen bool) {
	return s.f.TestAndAddString(url)
}

// Len returns the approximate number of distinct URLs visited.
func (s *SeenSet) Len() int {
	return int(s.f.ApproximatedSize())
}
