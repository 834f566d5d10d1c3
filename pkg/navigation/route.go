// Package navigation provides an immutable route table that maps request paths
// and symbolic route names to opaque view identifiers.
//
// A Table is validated eagerly when it is built, so duplicate or malformed
// routes are reported at startup rather than on first navigation. Once built,
// a Table is read-only and safe for concurrent use.
package navigation

import (
	"fmt"
	"strings"
)

// View identifies a renderable unit owned by the presentation layer.
// The router never inspects it.
type View string

// Route binds a path and a symbolic name to a view.
type Route struct {
	Path string `json:"path" yaml:"path"`
	Name string `json:"name" yaml:"name"`
	View View   `json:"view" yaml:"view"`
}

func (r Route) String() string {
	return fmt.Sprintf("%s %s -> %s", r.Name, r.Path, r.View)
}

func (r Route) validate() error {
	if r.Path == "" {
		return fmt.Errorf("%w: route %q has an empty path", ErrInvalidRoute, r.Name)
	}
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("%w: path %q must begin with /", ErrInvalidRoute, r.Path)
	}
	if strings.ContainsAny(r.Path, "?#") {
		return fmt.Errorf("%w: path %q must not contain a query or fragment", ErrInvalidRoute, r.Path)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: route at %q has an empty name", ErrInvalidRoute, r.Path)
	}
	if r.View == "" {
		return fmt.Errorf("%w: route %q has no view", ErrInvalidRoute, r.Name)
	}
	return nil
}
