package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/artcrawl"
	"golang.org/x/time/rate"
)

// DefaultDelay is the pause after every request.
const DefaultDelay = 100 * time.Millisecond

var _ artcrawl.Pacer = (*Pacer)(nil)

// Pacer pauses for a fixed delay after each request. It is shared by all
// workers: pauses run one at a time and each lasts the full delay, however
// long the preceding fetch took. It is not host-aware.
type Pacer struct {
	mu      sync.Mutex
	limiter *rate.Limiter
}

// NewPacer creates a Pacer that pauses for delay on every Wait.
// A delay of zero or less disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks for the full delay, counted from the call.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.limiter.Limit() != rate.Inf {
		p.drain(time.Now())
	}
	return p.limiter.Wait(ctx)
}

// drain discards the tokens refilled since the previous pause, so the next
// token is a whole delay away. Tokens are clamped to the burst, so dropping
// the burst to zero empties the bucket.
func (p *Pacer) drain(now time.Time) {
	p.limiter.SetBurstAt(now, 0)
	p.limiter.SetBurstAt(now, 1)
}
