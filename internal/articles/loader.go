package articles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LoadDir reads additional articles from a content directory. Only files
// matching one of the include patterns (and none of the exclude patterns)
// are loaded; patterns use doublestar globs relative to dir. A missing
// directory is not an error — the site just runs on its builtin posts.
func LoadDir(dir string, include, exclude []string) ([]Article, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var out []Article
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if len(include) > 0 && !matchesAny(rel, include) {
			return nil
		}
		if matchesAny(rel, exclude) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		slug := strings.TrimSuffix(filepath.Base(path), ".md")
		out = append(out, Article{
			Slug:     slug,
			Markdown: string(data),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking content dir %s: %w", dir, err)
	}

	return out, nil
}

// matchesAny checks if rel matches any of the given glob patterns.
func matchesAny(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}
