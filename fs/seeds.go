// Package fs provides file-based input and output for a crawl: the seed
// list and the JSON article document.
package fs

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/fwojciec/artcrawl"
)

// ReadSeeds reads one URL per line from path, in file order.
// Blank lines are ignored and surrounding whitespace is trimmed.
// An empty file yields an empty list.
func ReadSeeds(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, artcrawl.Errorf(artcrawl.ENOTFOUND, "seed file %q not found", path)
	} else if err != nil {
		return nil, artcrawl.Errorf(artcrawl.EINVALID, "open seed file %q: %v", path, err)
	}
	defer f.Close()

	seeds := []string{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		seeds = append(seeds, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, artcrawl.Errorf(artcrawl.EINVALID, "read seed file %q: %v", path, err)
	}
	return seeds, nil
}
