package background

import (
	"context"
	"time"
)

// fadeDuration is how long the transition flag stays raised around a swap.
// It matches the CSS fade in the page template.
const fadeDuration = 600 * time.Millisecond

// Rotator periodically advances the store to its next background image,
// raising the transition flag around each swap so pages can fade instead
// of cutting.
type Rotator struct {
	store    *Store
	interval time.Duration
}

// NewRotator creates a Rotator. interval must be positive.
func NewRotator(store *Store, interval time.Duration) *Rotator {
	return &Rotator{store: store, interval: interval}
}

// Run rotates until ctx is cancelled. It is meant to be started in its own
// goroutine by the server.
func (r *Rotator) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.step(ctx)
		}
	}
}

// step performs one swap: flag up, change image, hold for the fade, flag
// down. The image changes while the old one is still covered by the fade.
func (r *Rotator) step(ctx context.Context) {
	r.store.SetTransition(true)
	r.store.Rotate()

	select {
	case <-ctx.Done():
	case <-time.After(fadeDuration):
	}
	r.store.SetTransition(false)
}
