package api

import "github.com/JaimeStill/checkout-shell/pkg/openapi"

type spec struct {
	List    *openapi.Operation
	Find    *openapi.Operation
	Resolve *openapi.Operation
}

// Spec holds the OpenAPI operations for the route API.
var Spec = spec{
	List: &openapi.Operation{
		Summary: "List routes in declaration order",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Route table", &openapi.Schema{
				Type:  "array",
				Items: openapi.SchemaRef("RouteInfo"),
			}),
		},
	},
	Find: &openapi.Operation{
		Summary: "Find a route by name",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("name", "Route name, e.g. Success"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Route with absolute URL", openapi.SchemaRef("RouteInfo")),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Resolve: &openapi.Operation{
		Summary: "Resolve a path or URL to a route",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("path", "Route path, e.g. /success"),
			openapi.QueryParam("url", "Hash or history URL, e.g. http://localhost:8080/#/success"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Resolved route", openapi.SchemaRef("RouteInfo")),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"RouteInfo": {
			Type:     "object",
			Required: []string{"name", "path", "view", "href"},
			Properties: map[string]*openapi.Property{
				"name": {Type: "string", Example: "Success"},
				"path": {Type: "string", Example: "/success"},
				"view": {Type: "string", Example: "success"},
				"href": {Type: "string", Example: "/#/success"},
				"url":  {Type: "string", Format: "uri", Example: "http://localhost:8080/#/success"},
			},
		},
	}
}
