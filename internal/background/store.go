// Package background coordinates the site's rotating background image:
// an in-memory state store, an asset preloader, a rotation loop, and a
// websocket feed that tells open pages when the image changes.
package background

import "sync"

// State is an immutable snapshot of the store, used for broadcasts and the
// JSON API.
type State struct {
	Image        string `json:"image"`
	InTransition bool   `json:"in_transition"`
}

// Store holds the background image state for the lifetime of the server.
// base and images are fixed at construction; image and the transition flag
// are mutated through SetImage, SetTransition and Rotate.
type Store struct {
	mu           sync.RWMutex
	base         string
	images       []string
	image        string
	inTransition bool

	onChange func(State)
}

// NewStore creates a store with the given asset base URL and candidate
// image list. The first image becomes current.
func NewStore(base string, images []string) *Store {
	s := &Store{
		base:   base,
		images: append([]string(nil), images...),
	}
	if len(s.images) > 0 {
		s.image = s.images[0]
	}
	return s
}

// OnChange registers a callback invoked after every mutation. At most one
// callback is supported; the hub fans out to subscribers.
func (s *Store) OnChange(fn func(State)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Base returns the asset URL prefix.
func (s *Store) Base() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.base
}

// Images returns a copy of the candidate image list.
func (s *Store) Images() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.images...)
}

// Image returns the currently selected image filename.
func (s *Store) Image() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.image
}

// InTransition reports whether a background swap animation is in progress.
func (s *Store) InTransition() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inTransition
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{Image: s.image, InTransition: s.inTransition}
}

// URL returns the full asset URL for the given image filename.
func (s *Store) URL(name string) string {
	return s.Base() + name
}

// SetImage replaces the current image. The name is not required to be a
// member of the candidate list.
func (s *Store) SetImage(name string) {
	s.mu.Lock()
	s.image = name
	st := State{Image: s.image, InTransition: s.inTransition}
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(st)
	}
}

// SetTransition sets the transition flag.
func (s *Store) SetTransition(v bool) {
	s.mu.Lock()
	s.inTransition = v
	st := State{Image: s.image, InTransition: s.inTransition}
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(st)
	}
}

// Rotate advances to the next image in the candidate list, wrapping around
// at the end, and returns the new current image. If the current image is
// not in the list (SetImage accepts arbitrary names), rotation restarts at
// the first candidate. With no candidates it is a no-op.
func (s *Store) Rotate() string {
	s.mu.Lock()
	if len(s.images) == 0 {
		img := s.image
		s.mu.Unlock()
		return img
	}

	next := 0
	for i, name := range s.images {
		if name == s.image {
			next = (i + 1) % len(s.images)
			break
		}
	}
	s.image = s.images[next]
	st := State{Image: s.image, InTransition: s.inTransition}
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(st)
	}
	return st.Image
}
