package web

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/ndanilin/homepage/internal/site"
	"github.com/ndanilin/homepage/internal/visits"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/"+s.registry.DefaultSlug(), http.StatusFound)
}

func (s *Server) handleArticle(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := s.registry.Get(slug)
		if !ok {
			s.handleNotFound(w, r)
			return
		}

		s.recordVisit(r, slug)

		var buf bytes.Buffer
		err := site.RenderPage(&buf, site.PageData{
			SiteTitle:  s.cfg.SiteTitle,
			Title:      a.Title,
			Published:  a.Published,
			Content:    a.HTML,
			Nav:        s.nav(slug),
			Background: s.store.URL(s.store.Image()),
			AssetBase:  s.cfg.AssetBase,
			CSSHref:    "/static/style.css",
			Live:       true,
		})
		if err != nil {
			log.Printf("web: rendering %s: %v", slug, err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := site.RenderPage(&buf, site.PageData{
		SiteTitle: s.cfg.SiteTitle,
		Title:     "Not found",
		Content:   template.HTML("<h1>404</h1><p>There is no such page. The articles live in the navigation above.</p>"),
		Nav:       s.nav(""),
		AssetBase: s.cfg.AssetBase,
		CSSHref:   "/static/style.css",
		Live:      true,
	})
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(buf.Bytes())
}

// nav builds the header navigation with the given slug marked active.
func (s *Server) nav(active string) []site.NavItem {
	all := s.registry.All()
	items := make([]site.NavItem, len(all))
	for i, a := range all {
		items[i] = site.NavItem{
			Href:   "/" + a.Slug,
			Title:  a.Title,
			Active: a.Slug == active,
		}
	}
	return items
}

// recordVisit logs the page view. Failures only cost a count, so they are
// logged and otherwise ignored.
func (s *Server) recordVisit(r *http.Request, slug string) {
	if s.visits == nil {
		return
	}
	err := s.visits.Record(r.Context(), visits.Visit{
		Slug:       slug,
		RemoteAddr: r.RemoteAddr,
		UserAgent:  r.UserAgent(),
	})
	if err != nil {
		log.Printf("web: recording visit for %s: %v", slug, err)
	}
}

func handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(site.CSS()))
}
