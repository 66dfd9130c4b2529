package crawl

import (
	"sync"

	"github.com/fwojciec/artcrawl"
)

// FailureSet is an insertion-ordered set of links that have not produced an
// acceptable article. Each URL appears at most once; recording a URL that is
// already present only refreshes its cause. It is safe for concurrent use.
type FailureSet struct {
	mu    sync.Mutex
	order []string
	errs  map[string]error
}

// NewFailureSet creates an empty FailureSet.
func NewFailureSet() *FailureSet {
	return &FailureSet{errs: make(map[string]error)}
}

// Add records url with its failure cause. It returns false if url was already
// a member.
func (s *FailureSet) Add(url string, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.errs[url]
	s.errs[url] = err
	if ok {
		return false
	}
	s.order = append(s.order, url)
	return true
}

// Remove deletes url from the set. It returns false if url was not a member.
func (s *FailureSet) Remove(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.errs[url]; !ok {
		return false
	}
	delete(s.errs, url)
	for i, u := range s.order {
		if u == url {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether url is a member.
func (s *FailureSet) Contains(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.errs[url]
	return ok
}

// Len returns the number of members.
func (s *FailureSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Failures returns a snapshot of the members in insertion order.
func (s *FailureSet) Failures() []artcrawl.Failure {
	s.mu.Lock()
	defer s.mu.Unlock()

	failures := make([]artcrawl.Failure, len(s.order))
	for i, u := range s.order {
		failures[i] = artcrawl.Failure{URL: u, Err: s.errs[u]}
	}
	return failures
}
