package visits

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the visit-count endpoints under /api/visits.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/visits", func(r chi.Router) {
		r.Get("/", handleCounts(store))
		r.Get("/{slug}", handleTotal(store))
	})
}

func handleCounts(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := store.Counts(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if counts == nil {
			counts = []Count{}
		}
		writeJSON(w, http.StatusOK, counts)
	}
}

func handleTotal(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		n, err := store.Total(r.Context(), slug)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, Count{Slug: slug, Views: n})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
