package crawl

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Repeat detector sizing.
const (
	// repeatExpectedURLs is the expected number of links per run.
	repeatExpectedURLs = 10000
	// repeatFalsePositiveRate is the acceptable false positive rate.
	repeatFalsePositiveRate = 0.01
)

// repeats flags links that were already attempted earlier in the run.
// It is diagnostic only: repeated links are still fetched.
type repeats struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

func newRepeats() *repeats {
	return &repeats{f: bloom.NewWithEstimates(repeatExpectedURLs, repeatFalsePositiveRate)}
}

// seen records url and reports whether it was probably recorded before.
func (r *repeats) seen(url string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.f.TestAndAddString(url)
}
