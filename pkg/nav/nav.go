// Package nav owns the current location and the history stack, and applies
// the redirect policy on every change.
//
// Navigate pushes a new location, Back and Forward replay the stack the way
// browser history does (no new entry). Every change re-resolves the location
// against the route set, lets the gate decide, follows redirects until a
// terminal location is reached, and then notifies subscribers.
package nav

import (
	"log/slog"
	"sync"

	"github.com/skinovaai/skinova/pkg/gate"
	"github.com/skinovaai/skinova/pkg/routes"
)

// maxRedirects caps gate-driven redirects per navigation. The shipped policy
// terminates in at most two hops; the cap guards against a misconfigured one.
const maxRedirects = 8

// SessionState is the session snapshot source the gate consults.
// *session.Manager satisfies it.
type SessionState interface {
	Authenticated() bool
	Initializing() bool
}

// Listener is notified after a navigation settles on a terminal location.
type Listener func(path string, route routes.Resolved)

// Navigator keeps the in-memory location and history stack consistent and
// enforces the redirect policy on every change.
type Navigator struct {
	set     *routes.Set
	policy  gate.Policy
	session SessionState
	logger  *slog.Logger

	mu        sync.Mutex
	stack     []string
	index     int
	listeners []Listener
}

// Option configures the Navigator.
type Option func(*Navigator)

// WithLogger sets the logger for navigation events.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithInitialPath sets the location the navigator starts at. Defaults to the
// policy's root path.
func WithInitialPath(path string) Option {
	return func(n *Navigator) {
		if path != "" {
			n.stack = []string{path}
		}
	}
}

// New creates a Navigator over the given route set, policy, and session.
// Call Start after the session's Init to apply the gate to the initial
// location.
func New(set *routes.Set, policy gate.Policy, session SessionState, opts ...Option) *Navigator {
	n := &Navigator{
		set:     set,
		policy:  policy,
		session: session,
		logger:  slog.Default(),
		stack:   []string{policy.Root},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Subscribe registers a listener for settled navigations. Listeners are
// called outside the navigator's lock and may themselves navigate.
func (n *Navigator) Subscribe(fn Listener) {
	n.mu.Lock()
	n.listeners = append(n.listeners, fn)
	n.mu.Unlock()
}

// Start applies resolution and gating to the initial location and notifies
// subscribers. It is the startup analog of a location-change event.
func (n *Navigator) Start() {
	n.apply()
}

// Navigate changes the current location and triggers re-resolution, which may
// itself redirect per the gate. Navigating to the already-current path does
// not push a duplicate history entry but still re-resolves and notifies.
func (n *Navigator) Navigate(path string) {
	n.mu.Lock()
	n.push(path)
	n.mu.Unlock()
	n.apply()
}

// Back moves one entry back in history without pushing, like an externally
// triggered back event, then re-resolves and gates the restored location.
// It is a no-op at the start of the stack.
func (n *Navigator) Back() {
	n.mu.Lock()
	if n.index > 0 {
		n.index--
	}
	n.mu.Unlock()
	n.apply()
}

// Forward is the counterpart of Back. It is a no-op at the end of the stack.
func (n *Navigator) Forward() {
	n.mu.Lock()
	if n.index < len(n.stack)-1 {
		n.index++
	}
	n.mu.Unlock()
	n.apply()
}

// Location returns the current path.
func (n *Navigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[n.index]
}

// Current resolves the current location. A fresh Resolved is returned on
// every call.
func (n *Navigator) Current() routes.Resolved {
	return n.set.Resolve(n.Location())
}

// push appends a history entry, discarding any forward entries, unless the
// path is already current. Callers hold n.mu.
func (n *Navigator) push(path string) {
	if n.stack[n.index] == path {
		return
	}
	n.stack = append(n.stack[:n.index+1], path)
	n.index = len(n.stack) - 1
}

// apply resolves the current location, follows gate redirects to a terminal
// location, and notifies listeners once settled.
func (n *Navigator) apply() {
	state := gate.State{
		Initializing:  n.session.Initializing(),
		Authenticated: n.session.Authenticated(),
	}

	n.mu.Lock()
	path := n.stack[n.index]
	route := n.set.Resolve(path)
	for range maxRedirects {
		decision := n.policy.Decide(state, path, route)
		if decision == gate.Stay {
			break
		}
		target := n.policy.Target(decision)
		if target == path {
			break
		}
		n.logger.Debug("gate redirect",
			slog.String("from", path),
			slog.String("to", target))
		n.push(target)
		path = target
		route = n.set.Resolve(path)
	}
	listeners := make([]Listener, len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.Unlock()

	for _, fn := range listeners {
		fn(path, route)
	}
}
