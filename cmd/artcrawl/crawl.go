package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/artcrawl/crawl"
	"github.com/fwojciec/artcrawl/fs"
)

// CrawlCmd reads the seed file, crawls, and writes the article document.
type CrawlCmd struct {
	Seeds       string
	Output      string
	Quota       int
	Concurrency int
	Print       bool
}

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	// Seeds are read before any network activity.
	seeds, err := fs.ReadSeeds(c.Seeds)
	if err != nil {
		return fmt.Errorf("read seeds: %w", err)
	}

	crawler := &crawl.Crawler{
		Fetcher:     deps.Fetcher,
		Parser:      deps.Parser,
		Pacer:       deps.Pacer,
		Logger:      deps.Logger,
		Quota:       c.Quota,
		Concurrency: c.Concurrency,
	}

	result, err := crawler.Run(deps.Ctx, seeds)
	if err != nil {
		return err
	}

	// Partial results are still written after an abort.
	ctx := context.WithoutCancel(deps.Ctx)

	if err := deps.Store.WriteArticles(ctx, result.Articles); err != nil {
		return fmt.Errorf("write articles: %w", err)
	}

	written, err := fs.Verify(ctx, deps.Store, result.Articles)
	if err != nil {
		return fmt.Errorf("verify articles: %w", err)
	}

	if c.Print {
		data, err := fs.Marshal(written)
		if err != nil {
			return err
		}
		_, _ = deps.Stdout.Write(data)
	}

	fmt.Fprintf(deps.Stdout, "Saved %d articles to %s\n", len(written), c.Output)
	c.report(deps, result)

	if result.Aborted {
		return errors.New("crawl aborted")
	}
	return nil
}

// report lists the links that never produced an acceptable article.
// It is informational and does not affect the exit status.
func (c *CrawlCmd) report(deps *Dependencies, result *crawl.Result) {
	if len(result.Failures) == 0 {
		return
	}
	fmt.Fprintf(deps.Stdout, "The following %d URLs failed:\n", len(result.Failures))
	for _, f := range result.Failures {
		fmt.Fprintln(deps.Stdout, f.URL)
	}
}
