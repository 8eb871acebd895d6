// Package articles holds the site's posts: a few builtin markdown articles,
// optional articles loaded from a content directory, and the registry that
// maps URL slugs to rendered pages.
package articles

import (
	"fmt"
	"html/template"
)

// Article is a single post. Markdown is the authored source; HTML is the
// rendered page body, filled in when the article enters a Registry.
type Article struct {
	Slug      string
	Title     string
	Published string // ISO date, empty for undated pages
	Markdown  string
	HTML      template.HTML
}

// Registry is an ordered, slug-addressable collection of rendered articles.
type Registry struct {
	order       []string
	bySlug      map[string]*Article
	defaultSlug string
}

// NewRegistry renders the builtin articles plus any extra ones and returns
// a registry. defaultSlug must name one of the articles; it is the target
// of the / redirect.
func NewRegistry(defaultSlug string, extra ...Article) (*Registry, error) {
	r := &Registry{bySlug: make(map[string]*Article)}

	for _, a := range append(Builtin(), extra...) {
		if err := r.add(a); err != nil {
			return nil, err
		}
	}

	if _, ok := r.bySlug[defaultSlug]; !ok {
		return nil, fmt.Errorf("default article %q not found", defaultSlug)
	}
	r.defaultSlug = defaultSlug

	return r, nil
}

func (r *Registry) add(a Article) error {
	if a.Slug == "" {
		return fmt.Errorf("article %q has no slug", a.Title)
	}
	if _, exists := r.bySlug[a.Slug]; exists {
		return fmt.Errorf("duplicate article slug %q", a.Slug)
	}

	html, err := Render(a.Markdown)
	if err != nil {
		return fmt.Errorf("rendering article %q: %w", a.Slug, err)
	}
	a.HTML = html

	if a.Title == "" {
		a.Title = ExtractTitle(a.Markdown, a.Slug)
	}

	r.order = append(r.order, a.Slug)
	r.bySlug[a.Slug] = &a
	return nil
}

// Get returns the article for the given slug.
func (r *Registry) Get(slug string) (*Article, bool) {
	a, ok := r.bySlug[slug]
	return a, ok
}

// All returns the articles in registration order.
func (r *Registry) All() []*Article {
	out := make([]*Article, 0, len(r.order))
	for _, slug := range r.order {
		out = append(out, r.bySlug[slug])
	}
	return out
}

// DefaultSlug returns the slug the / route redirects to.
func (r *Registry) DefaultSlug() string {
	return r.defaultSlug
}
