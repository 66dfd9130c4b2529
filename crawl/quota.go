package crawl

import "sync/atomic"

// Quota counts accepted articles against a cap. It is safe for concurrent
// use. The count only grows and never exceeds the cap.
type Quota struct {
	limit int64
	count atomic.Int64
}

// NewQuota returns a Quota that admits up to limit articles.
// A limit of zero or less means unlimited.
func NewQuota(limit int) *Quota {
	return &Quota{limit: int64(limit)}
}

// Take claims one slot. It returns false if the quota is already full,
// in which case the count is left unchanged.
func (q *Quota) Take() bool {
	for {
		n := q.count.Load()
		if q.limit > 0 && n >= q.limit {
			return false
		}
		if q.count.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Reached reports whether no more articles can be admitted.
func (q *Quota) Reached() bool {
	return q.limit > 0 && q.count.Load() >= q.limit
}

// Count returns the number of slots taken so far.
func (q *Quota) Count() int {
	return int(q.count.Load())
}

// Limit returns the configured cap; zero or less means unlimited.
func (q *Quota) Limit() int {
	return int(q.limit)
}
