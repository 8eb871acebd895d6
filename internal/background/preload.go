package background

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Preloader warms the cache for the store's background images by fetching
// each asset once, so the first background swap does not flash while the
// image downloads.
type Preloader struct {
	store  *Store
	client *http.Client
}

// NewPreloader creates a Preloader for the given store.
func NewPreloader(store *Store) *Preloader {
	return &Preloader{
		store: store,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Preload fetches every candidate image in the background and returns
// immediately. Failed fetches are ignored: a miss only means the browser
// pays the load cost later.
func (p *Preloader) Preload(ctx context.Context) {
	go p.PreloadEach(ctx, nil)
}

// PreloadEach fetches every candidate image, invoking report (if non-nil)
// after each one. It is the synchronous form used by the preload CLI, which
// wants per-image feedback.
func (p *Preloader) PreloadEach(ctx context.Context, report func(name string, err error)) {
	for _, name := range p.store.Images() {
		err := p.fetch(ctx, p.store.URL(name))
		if report != nil {
			report(name, err)
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// fetch issues a single GET for the asset and drains the body so the
// connection can be reused. Only absolute http(s) URLs are fetched; a
// relative asset base means the assets are served by this process and
// there is nothing remote to warm.
func (p *Preloader) fetch(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errSkipped
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, err = io.Copy(io.Discard, resp.Body)
	return err
}

// errSkipped marks assets the preloader cannot reach over the network.
var errSkipped = &skipError{}

type skipError struct{}

func (*skipError) Error() string { return "asset base is not an absolute http(s) URL" }
