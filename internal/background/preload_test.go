package background

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestPreloadEachOneRequestPerImage(t *testing.T) {
	var mu sync.Mutex
	requested := map[string]int{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requested[r.URL.Path]++
		mu.Unlock()
		w.Write([]byte("img"))
	}))
	defer srv.Close()

	store := NewStore(srv.URL+"/backs/", testImages)
	p := NewPreloader(store)

	p.PreloadEach(context.Background(), nil)

	mu.Lock()
	defer mu.Unlock()
	if len(requested) != len(testImages) {
		t.Fatalf("expected %d distinct asset requests, got %d", len(testImages), len(requested))
	}
	for _, name := range testImages {
		if requested["/backs/"+name] != 1 {
			t.Errorf("asset %s requested %d times, want 1", name, requested["/backs/"+name])
		}
	}
}

func TestPreloadEachReportsFailures(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // refuse all connections

	store := NewStore(srv.URL+"/backs/", testImages)
	p := NewPreloader(store)

	var failures int
	p.PreloadEach(context.Background(), func(name string, err error) {
		if err != nil {
			failures++
		}
	})

	if failures != len(testImages) {
		t.Errorf("expected %d failures, got %d", len(testImages), failures)
	}
}

func TestPreloadEachSkipsRelativeBase(t *testing.T) {
	store := NewStore("/static/img/", testImages)
	p := NewPreloader(store)

	var errs []error
	p.PreloadEach(context.Background(), func(name string, err error) {
		errs = append(errs, err)
	})

	if len(errs) != len(testImages) {
		t.Fatalf("expected a report per image, got %d", len(errs))
	}
	for _, err := range errs {
		if err != errSkipped {
			t.Errorf("expected errSkipped for relative base, got %v", err)
		}
	}
}

func TestPreloadEachStopsOnCancel(t *testing.T) {
	var mu sync.Mutex
	count := 0

	ctx, cancel := context.WithCancel(context.Background())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		count++
		mu.Unlock()
		cancel()
	}))
	defer srv.Close()

	store := NewStore(srv.URL+"/", testImages)
	p := NewPreloader(store)
	p.PreloadEach(ctx, nil)

	mu.Lock()
	defer mu.Unlock()
	if count != 1 {
		t.Errorf("expected preload to stop after cancellation, got %d requests", count)
	}
}
