// Package ui holds the presentation-side adapters: an in-memory view router
// and a log-backed alerter.
package ui

import (
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

// Router keeps a navigation history of view paths.
type Router struct {
	mu       sync.RWMutex
	history  []string
	onChange func(path string)
}

func NewRouter(initial string) *Router {
	return &Router{history: []string{initial}}
}

// OnChange sets a callback run after every navigation.
func (r *Router) OnChange(fn func(path string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// Navigate pushes path, or replaces the current entry when replace is set.
func (r *Router) Navigate(path string, replace bool) {
	r.mu.Lock()
	if replace && len(r.history) > 0 {
		r.history[len(r.history)-1] = path
	} else {
		r.history = append(r.history, path)
	}
	fn := r.onChange
	r.mu.Unlock()

	log.Info().Str("module", "adapters.ui").Str("path", path).Bool("replace", replace).Msg("navigate")
	if fn != nil {
		fn(path)
	}
}

// Back pops the current view. It reports false on the first view.
func (r *Router) Back() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) < 2 {
		return r.currentLocked(), false
	}
	r.history = r.history[:len(r.history)-1]
	return r.currentLocked(), true
}

func (r *Router) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentLocked()
}

func (r *Router) History() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.history)
}

func (r *Router) currentLocked() string {
	if len(r.history) == 0 {
		return ""
	}
	return r.history[len(r.history)-1]
}
