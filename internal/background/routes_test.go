package background

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) (chi.Router, *Store) {
	t.Helper()
	store := NewStore("/static/img/", testImages)
	hub := NewHub(store)

	r := chi.NewRouter()
	RegisterRoutes(r, store, hub)
	return r, store
}

func TestGetState(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/background", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp stateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Image != "one.png" {
		t.Errorf("image = %q, want one.png", resp.Image)
	}
	if resp.Base != "/static/img/" {
		t.Errorf("base = %q", resp.Base)
	}
	if len(resp.Images) != len(testImages) {
		t.Errorf("images = %v", resp.Images)
	}
}

func TestPostSetImage(t *testing.T) {
	r, store := newTestRouter(t)

	req := httptest.NewRequest("POST", "/api/background", strings.NewReader(`{"image":"two.png"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if store.Image() != "two.png" {
		t.Errorf("store image = %q, want two.png", store.Image())
	}
}

func TestPostSetImageEmpty(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest("POST", "/api/background", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing image, got %d", w.Code)
	}
}

func TestPostSetImageBadBody(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest("POST", "/api/background", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad body, got %d", w.Code)
	}
}

func TestPostTransition(t *testing.T) {
	r, store := newTestRouter(t)

	req := httptest.NewRequest("POST", "/api/background/transition", strings.NewReader(`{"in_transition":true}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !store.InTransition() {
		t.Error("expected store to be in transition")
	}

	req = httptest.NewRequest("POST", "/api/background/transition", strings.NewReader(`{"in_transition":false}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if store.InTransition() {
		t.Error("expected transition flag cleared")
	}
}
