package visits

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ndanilin/homepage/internal/db"
)

// Store provides persistence for page views.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a page view. If v.ID is empty a UUID is generated.
func (s *Store) Record(ctx context.Context, v Visit) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (id, slug, remote_addr, user_agent)
		VALUES (?, ?, ?, ?)`,
		v.ID, v.Slug, v.RemoteAddr, v.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("inserting visit: %w", err)
	}
	return nil
}

// Counts returns per-slug view counts, most viewed first.
func (s *Store) Counts(ctx context.Context) ([]Count, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slug, COUNT(*) AS views
		FROM visits
		GROUP BY slug
		ORDER BY views DESC, slug ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying visit counts: %w", err)
	}
	defer rows.Close()

	var out []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Slug, &c.Views); err != nil {
			return nil, fmt.Errorf("scanning visit count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Total returns the view count for a single slug.
func (s *Store) Total(ctx context.Context, slug string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visits WHERE slug = ?`, slug).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting visits for %s: %w", slug, err)
	}
	return n, nil
}
