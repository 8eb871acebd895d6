package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ndanilin/homepage/internal/articles"
)

// Generator exports the rendered site as static HTML files: one page per
// article, a stylesheet, and an index.html that redirects to the default
// article the way the served / route does.
type Generator struct {
	Registry   *articles.Registry
	OutputDir  string
	SiteTitle  string
	Background string // asset URL for the exported pages' background
}

// indexTemplate is the static stand-in for the server's / redirect.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta http-equiv="refresh" content="0; url=%s.html">
  <title>%s</title>
</head>
<body>
  <p><a href="%s.html">Continue to %s</a></p>
</body>
</html>
`

// Generate writes the static site. Returns the number of article pages
// written (the index and stylesheet are not counted).
func (g *Generator) Generate() (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, fmt.Errorf("writing stylesheet: %w", err)
	}

	all := g.Registry.All()
	nav := make([]NavItem, len(all))
	for i, a := range all {
		nav[i] = NavItem{Href: a.Slug + ".html", Title: a.Title}
	}

	for i, a := range all {
		pageNav := make([]NavItem, len(nav))
		copy(pageNav, nav)
		pageNav[i].Active = true

		var buf bytes.Buffer
		err := RenderPage(&buf, PageData{
			SiteTitle:  g.SiteTitle,
			Title:      a.Title,
			Published:  a.Published,
			Content:    a.HTML,
			Nav:        pageNav,
			Background: g.Background,
			CSSHref:    "style.css",
		})
		if err != nil {
			return 0, fmt.Errorf("rendering %s: %w", a.Slug, err)
		}

		out := filepath.Join(g.OutputDir, a.Slug+".html")
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", out, err)
		}
	}

	def := g.Registry.DefaultSlug()
	defTitle := def
	if a, ok := g.Registry.Get(def); ok {
		defTitle = a.Title
	}
	index := fmt.Sprintf(indexTemplate, def, g.SiteTitle, def, defTitle)
	if err := os.WriteFile(filepath.Join(g.OutputDir, "index.html"), []byte(index), 0o644); err != nil {
		return 0, fmt.Errorf("writing index: %w", err)
	}

	return len(all), nil
}
