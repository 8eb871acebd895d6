// Package site owns the HTML presentation of the blog: the page template,
// the stylesheet, and a generator that exports the whole site as static
// files. The HTTP server renders through this package so served and
// exported pages stay identical.
package site

import (
	"fmt"
	"html/template"
	"io"
)

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// NavItem is one entry of the header navigation.
type NavItem struct {
	Href   string
	Title  string
	Active bool
}

// PageData is everything the page template needs.
type PageData struct {
	SiteTitle string
	Title     string
	Published string
	Content   template.HTML
	Nav       []NavItem

	// Background is the asset URL of the initial background image;
	// AssetBase is the prefix the live script uses for later swaps.
	Background string
	AssetBase  string

	CSSHref string
	// Live enables the websocket background script; static exports leave
	// it off.
	Live bool
}

// RenderPage writes the full HTML page for data to w.
func RenderPage(w io.Writer, data PageData) error {
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}

// CSS returns the site stylesheet.
func CSS() string {
	return cssContent
}
