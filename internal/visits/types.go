// Package visits records article page views in SQLite and serves per-slug
// counts over the API.
package visits

import "time"

// Visit is one recorded page view.
type Visit struct {
	ID         string    `json:"id"`
	Slug       string    `json:"slug"`
	VisitedAt  time.Time `json:"visited_at"`
	RemoteAddr string    `json:"remote_addr,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
}

// Count is the aggregated view count for one article.
type Count struct {
	Slug  string `json:"slug"`
	Views int    `json:"views"`
}
