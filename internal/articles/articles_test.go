package articles

import (
	"strings"
	"testing"
)

func TestNewRegistryBuiltin(t *testing.T) {
	reg, err := NewRegistry("upmath")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if reg.DefaultSlug() != "upmath" {
		t.Errorf("default slug = %q, want %q", reg.DefaultSlug(), "upmath")
	}

	for _, slug := range []string{"upmath", "implementing_smith_waterman_on_CUDA_part_1", "about"} {
		a, ok := reg.Get(slug)
		if !ok {
			t.Fatalf("builtin article %q not found", slug)
		}
		if a.Title == "" {
			t.Errorf("article %q has empty title", slug)
		}
		if a.HTML == "" {
			t.Errorf("article %q has empty rendered HTML", slug)
		}
	}
}

func TestNewRegistryOrder(t *testing.T) {
	reg, err := NewRegistry("upmath")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	all := reg.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 builtin articles, got %d", len(all))
	}
	if all[0].Slug != "upmath" {
		t.Errorf("first article = %q, want upmath", all[0].Slug)
	}
	if all[2].Slug != "about" {
		t.Errorf("last article = %q, want about", all[2].Slug)
	}
}

func TestNewRegistryUnknownDefault(t *testing.T) {
	if _, err := NewRegistry("nope"); err == nil {
		t.Error("expected error for unknown default slug")
	}
}

func TestNewRegistryExtraArticles(t *testing.T) {
	extra := Article{
		Slug:      "hello",
		Published: "2020-01-01",
		Markdown:  "# Hello\n\nA test post.\n",
	}

	reg, err := NewRegistry("hello", extra)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	a, ok := reg.Get("hello")
	if !ok {
		t.Fatal("extra article not found")
	}
	if a.Title != "Hello" {
		t.Errorf("title = %q, want %q (from H1)", a.Title, "Hello")
	}
}

func TestNewRegistryDuplicateSlug(t *testing.T) {
	dup := Article{Slug: "upmath", Markdown: "# Dup\n"}
	if _, err := NewRegistry("upmath", dup); err == nil {
		t.Error("expected error for duplicate slug")
	}
}

func TestGetUnknown(t *testing.T) {
	reg, err := NewRegistry("about")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if _, ok := reg.Get("missing"); ok {
		t.Error("Get should report missing articles")
	}
}

func TestBuiltinCodeHighlighting(t *testing.T) {
	reg, err := NewRegistry("upmath")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	a, _ := reg.Get("implementing_smith_waterman_on_CUDA_part_1")
	html := string(a.HTML)

	// Fenced code blocks come out of the highlighter as styled <pre> markup,
	// not literal backticks.
	if !strings.Contains(html, "<pre") {
		t.Error("expected highlighted <pre> block in rendered article")
	}
	if strings.Contains(html, "```") {
		t.Error("rendered article still contains raw code fences")
	}
}
