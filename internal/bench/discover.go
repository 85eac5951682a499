package bench

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverFixtures expands each glob in patterns (e.g. "testdata/**/*.aut",
// "testdata/**/*.gm") rooted at root into a sorted, deduplicated list of
// matching file paths.
func DiscoverFixtures(root string, patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	for _, pattern := range patterns {
		full := filepath.Join(root, filepath.FromSlash(pattern))
		hits, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, fmt.Errorf("bench: glob %q: %w", pattern, err)
		}
		for _, h := range hits {
			if _, dup := seen[h]; dup {
				continue
			}
			seen[h] = struct{}{}
			out = append(out, h)
		}
	}
	sort.Strings(out)

	return out, nil
}
