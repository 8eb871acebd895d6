package articles

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "first.md", "# First\n\nbody\n")
	writeFile(t, dir, "notes/second.md", "# Second\n\nbody\n")
	writeFile(t, dir, "ignore.txt", "not markdown")

	loaded, err := LoadDir(dir, []string{"**/*.md"}, nil)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(loaded))
	}

	slugs := map[string]bool{}
	for _, a := range loaded {
		slugs[a.Slug] = true
	}
	if !slugs["first"] || !slugs["second"] {
		t.Errorf("unexpected slugs: %v", slugs)
	}
}

func TestLoadDirExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "post.md", "# Post\n")
	writeFile(t, dir, "drafts/wip.md", "# WIP\n")
	writeFile(t, dir, "old.draft.md", "# Old\n")

	loaded, err := LoadDir(dir, []string{"**/*.md"}, []string{"drafts/**", "*.draft.md"})
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 article, got %d", len(loaded))
	}
	if loaded[0].Slug != "post" {
		t.Errorf("slug = %q, want post", loaded[0].Slug)
	}
}

func TestLoadDirEmptyInclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "post.md", "# Post\n")

	// No include patterns means everything is included.
	loaded, err := LoadDir(dir, nil, nil)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 article, got %d", len(loaded))
	}
}

func TestLoadDirMissing(t *testing.T) {
	loaded, err := LoadDir(filepath.Join(t.TempDir(), "nope"), nil, nil)
	if err != nil {
		t.Fatalf("LoadDir should tolerate a missing dir: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected nil articles for missing dir, got %d", len(loaded))
	}
}
