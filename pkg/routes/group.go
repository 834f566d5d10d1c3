// Package routes declares HTTP route groups, registers them onto a ServeMux,
// and documents them in an OpenAPI spec.
package routes

import (
	"net/http"

	"github.com/JaimeStill/checkout-shell/pkg/openapi"
)

// Group is a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Route is an HTTP route with method, pattern, handler, and optional
// OpenAPI operation.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Register adds every route in groups to mux, joining nested prefixes. Routes
// carrying an operation are also added to spec when spec is non-nil. The spec
// receives a copy of each operation, so declarations are never modified.
func Register(mux *http.ServeMux, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		registerGroup(mux, spec, "", g)
	}
}

func registerGroup(mux *http.ServeMux, spec *openapi.Spec, parentPrefix string, group Group) {
	prefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		path := prefix + route.Pattern
		mux.HandleFunc(route.Method+" "+path, route.Handler)

		if spec == nil || route.OpenAPI == nil || route.Method != http.MethodGet {
			continue
		}
		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = group.Tags
		}
		spec.AddOperation(path, &op)
	}
	for _, child := range group.Children {
		registerGroup(mux, spec, prefix, child)
	}
}
