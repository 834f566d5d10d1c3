// Package module mounts self-contained HTTP handlers under single-level path
// prefixes, each with its own middleware stack.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/checkout-shell/pkg/middleware"
)

// Module is an HTTP handler mounted at a prefix. Middleware sees the full
// request path; the prefix is stripped before the request reaches the
// handler. The root prefix "/" mounts the module as the catch-all for paths
// no other module claims.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
}

// New creates a module for prefix. It panics if prefix is empty, lacks a
// leading slash, or has more than one path segment.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}
}

func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends mw to the module's middleware stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the module handler wrapped in its middleware. The prefix
// is stripped between the middleware and the module handler.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.handler.ServeHTTP(w, m.strip(r))
	}))
}

// Serve dispatches r to Handler.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	m.Handler().ServeHTTP(w, r)
}

func (m *Module) strip(r *http.Request) *http.Request {
	if m.prefix == "/" {
		return r
	}

	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""
	return r2
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix must not be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix %q must begin with /", prefix)
	}
	if prefix != "/" && strings.Contains(prefix[1:], "/") {
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
