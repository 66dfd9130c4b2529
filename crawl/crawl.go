// Package crawl drives the two-pass article crawl. The primary pass fetches
// every seed, follows each link found on it exactly one level deep and keeps
// the pages that pass the admission rule. The retry pass gives every link that
// failed a single second attempt. A shared quota stops both passes early.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/artcrawl"
	"golang.org/x/sync/errgroup"
)

// DefaultQuota is the number of accepted articles after which a crawl stops.
const DefaultQuota = 1000

// linkDepth is the recursion depth of links discovered on a seed page.
// Links are never followed further than this.
const linkDepth = 1

// Crawler orchestrates the crawl of a list of seed pages.
type Crawler struct {
	Fetcher artcrawl.Fetcher
	Parser  artcrawl.Parser

	// Pacer is waited on after every fetch attempt. Nil disables pacing.
	Pacer artcrawl.Pacer

	// Logger receives per-link diagnostics. Nil discards them.
	Logger *slog.Logger

	// Quota caps the number of accepted articles. Zero or less means unlimited.
	Quota int

	// Concurrency bounds the number of links of one seed fetched in parallel
	// during the primary pass. Values below 1 mean sequential.
	Concurrency int
}

// Result holds the outcome of a crawl.
type Result struct {
	// Articles are the accepted articles in acceptance order.
	Articles []*artcrawl.Article

	// Failures are the links that still failed after the retry pass,
	// in the order they first failed.
	Failures []artcrawl.Failure

	Seeds        int // seed pages fetched
	Attempts     int // article fetch attempts across both passes
	Retried      int // attempts made by the retry pass
	Recovered    int // links accepted by the retry pass
	Repeats      int // links that had already been attempted earlier in the run
	QuotaReached bool
	Aborted      bool
}

// Run crawls seeds in order and returns the accumulated result.
// Per-link failures never produce an error; if ctx is canceled the crawl
// stops issuing requests and the partial result is returned with Aborted set.
func (c *Crawler) Run(ctx context.Context, seeds []string) (*Result, error) {
	if c.Fetcher == nil {
		return nil, artcrawl.Errorf(artcrawl.EINVALID, "crawler fetcher required")
	}
	if c.Parser == nil {
		return nil, artcrawl.Errorf(artcrawl.EINVALID, "crawler parser required")
	}

	r := &run{
		Crawler:  c,
		logger:   c.Logger,
		quota:    NewQuota(c.Quota),
		failures: NewFailureSet(),
		repeats:  newRepeats(),
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}

	r.logger.Info("primary pass", "seeds", len(seeds), "quota", c.Quota)
	r.primary(ctx, seeds)

	if !r.stopped(ctx) {
		r.logger.Info("retry pass", "failures", r.failures.Len(), "accepted", r.quota.Count())
		r.retry(ctx)
	}

	result := &Result{
		Articles:     r.articles,
		Failures:     r.failures.Failures(),
		Seeds:        int(r.seeds.Load()),
		Attempts:     int(r.attempts.Load()),
		Retried:      r.retried,
		Recovered:    r.recovered,
		Repeats:      int(r.repeated.Load()),
		QuotaReached: r.quota.Reached(),
		Aborted:      ctx.Err() != nil,
	}
	if result.Articles == nil {
		result.Articles = []*artcrawl.Article{}
	}

	r.logger.Info("crawl finished",
		"accepted", len(result.Articles),
		"failed", len(result.Failures),
		"attempts", result.Attempts,
		"quota_reached", result.QuotaReached,
		"aborted", result.Aborted,
	)
	return result, nil
}

// run holds the mutable state of a single crawl.
type run struct {
	*Crawler

	logger   *slog.Logger
	quota    *Quota
	failures *FailureSet
	repeats  *repeats

	seeds    atomic.Int64
	attempts atomic.Int64
	repeated atomic.Int64

	// Only touched by the coordinating goroutine.
	articles  []*artcrawl.Article
	retried   int
	recovered int
}

// stopped reports whether no further fetches may start.
func (r *run) stopped(ctx context.Context) bool {
	return ctx.Err() != nil || r.quota.Reached()
}

// primary visits every link of every seed, in seed order.
func (r *run) primary(ctx context.Context, seeds []string) {
	for _, seed := range seeds {
		if r.stopped(ctx) {
			return
		}
		r.visit(ctx, r.discover(ctx, seed))
	}
}

// discover fetches a seed page and returns its links.
// A seed that cannot be fetched or parsed yields no links.
func (r *run) discover(ctx context.Context, seed string) []string {
	r.seeds.Add(1)
	html, err := r.Fetcher.Fetch(ctx, seed)
	r.pause(ctx)
	if err != nil {
		r.logger.Warn("seed failed", "url", seed, "err", err)
		return nil
	}

	links, err := r.Parser.ExtractLinks(html)
	if err != nil {
		r.logger.Warn("seed failed", "url", seed, "err", err)
		return nil
	}

	for _, link := range links {
		r.logger.Debug("link", "url", link, "seed", seed, "depth", linkDepth)
	}
	return links
}

// visit attempts every link of one seed. Accepted articles are appended in
// link order once all workers have drained.
func (r *run) visit(ctx context.Context, links []string) {
	accepted := make([]*artcrawl.Article, len(links))

	var g errgroup.Group
	g.SetLimit(max(r.Concurrency, 1))

	for i, link := range links {
		if r.stopped(ctx) {
			break
		}
		if r.repeats.seen(link) {
			r.repeated.Add(1)
			r.logger.Debug("repeated link", "url", link, "depth", linkDepth)
		}

		g.Go(func() error {
			if r.stopped(ctx) {
				return nil
			}
			article, err := r.attempt(ctx, link)
			if err != nil {
				r.fail(ctx, link, err)
				return nil
			}
			if r.accept(article, "primary") {
				accepted[i] = article
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, article := range accepted {
		if article != nil {
			r.articles = append(r.articles, article)
		}
	}
}

// retry gives each link in the failure set one more attempt.
// The set is snapshotted first, so links removed during the pass are not
// revisited.
func (r *run) retry(ctx context.Context) {
	for _, f := range r.failures.Failures() {
		if r.stopped(ctx) {
			return
		}

		r.retried++
		article, err := r.attempt(ctx, f.URL)
		if err != nil {
			r.fail(ctx, f.URL, err)
			continue
		}
		if !r.accept(article, "retry") {
			return
		}
		r.articles = append(r.articles, article)
		r.failures.Remove(f.URL)
		r.recovered++
	}
}

// attempt fetches url, extracts its article and applies the admission rule.
func (r *run) attempt(ctx context.Context, url string) (*artcrawl.Article, error) {
	r.attempts.Add(1)
	html, err := r.Fetcher.Fetch(ctx, url)
	r.pause(ctx)
	if err != nil {
		return nil, err
	}

	article, err := r.Parser.ExtractArticle(url, html)
	if err != nil {
		return nil, err
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}

	if !article.Acceptable() {
		return nil, artcrawl.Errorf(artcrawl.EREJECTED,
			"article not longer than description for %s (%d <= %d)",
			url, utf8.RuneCountInString(article.Article), utf8.RuneCountInString(article.Description))
	}
	return article, nil
}

// accept claims a quota slot for article.
// It returns false if the quota was filled by another attempt first.
func (r *run) accept(article *artcrawl.Article, pass string) bool {
	if !r.quota.Take() {
		return false
	}
	r.logger.Info("accepted",
		"url", article.ID,
		"pass", pass,
		"chars", utf8.RuneCountInString(article.Article),
		"hash", ContentHash(article.Article),
		"count", r.quota.Count(),
	)
	return true
}

// fail records url in the failure set unless the crawl was aborted.
func (r *run) fail(ctx context.Context, url string, err error) {
	if ctx.Err() != nil {
		return
	}
	r.failures.Add(url, err)
	r.logger.Info("failed", "url", url, "code", artcrawl.ErrorCode(err), "err", err)
}

func (r *run) pause(ctx context.Context) {
	if r.Pacer == nil {
		return
	}
	_ = r.Pacer.Wait(ctx)
}

// ContentHash returns a short hex digest of content.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
