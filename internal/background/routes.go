package background

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the background API and websocket feed on the given
// router. The POST endpoints are the store's mutation entry points over HTTP.
func RegisterRoutes(r chi.Router, store *Store, hub *Hub) {
	r.Route("/api/background", func(r chi.Router) {
		r.Get("/", handleState(store))
		r.Post("/", handleSetImage(store))
		r.Post("/transition", handleSetTransition(store))
	})
	r.Get("/ws/background", hub.HandleWS)
}

// stateResponse extends the broadcast State with the fixed parts of the
// store for the GET endpoint.
type stateResponse struct {
	State
	Base   string   `json:"base"`
	Images []string `json:"images"`
}

type setImageRequest struct {
	Image string `json:"image"`
}

type setTransitionRequest struct {
	InTransition bool `json:"in_transition"`
}

func handleState(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stateResponse{
			State:  store.Snapshot(),
			Base:   store.Base(),
			Images: store.Images(),
		})
	}
}

func handleSetImage(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Image == "" {
			http.Error(w, "image is required", http.StatusBadRequest)
			return
		}

		store.SetImage(req.Image)
		writeJSON(w, http.StatusOK, store.Snapshot())
	}
}

func handleSetTransition(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setTransitionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		store.SetTransition(req.InTransition)
		writeJSON(w, http.StatusOK, store.Snapshot())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
