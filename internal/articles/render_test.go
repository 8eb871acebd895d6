package articles

import (
	"strings"
	"testing"
)

func TestRenderHeadingsAndParagraphs(t *testing.T) {
	html, err := Render("# Title\n\nSome *emphasis* here.\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	s := string(html)
	if !strings.Contains(s, "<h1") {
		t.Errorf("expected <h1> in output, got %q", s)
	}
	if !strings.Contains(s, "<em>emphasis</em>") {
		t.Errorf("expected <em> in output, got %q", s)
	}
}

func TestRenderGFMTable(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	html, err := Render(src)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "<table>") {
		t.Errorf("expected GFM table in output, got %q", html)
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		markdown string
		fallback string
		want     string
	}{
		{"# My Post\n\nbody", "slug", "My Post"},
		{"intro\n\n# Later Heading\n", "slug", "Later Heading"},
		{"## Only H2\n", "slug", "slug"},
		{"", "slug", "slug"},
		{"#NoSpace\n", "slug", "slug"},
	}
	for _, tt := range tests {
		got := ExtractTitle(tt.markdown, tt.fallback)
		if got != tt.want {
			t.Errorf("ExtractTitle(%q) = %q, want %q", tt.markdown, got, tt.want)
		}
	}
}
