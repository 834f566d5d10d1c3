package openapi

import (
	"encoding/json"
	"net/http"
)

// Version is the OpenAPI version emitted by NewSpec.
const Version = "3.1.0"

// NewSpec creates an empty document with the shared error components.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI:    Version,
		Info:       &Info{Title: title, Version: version},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

// NewComponents returns the error schema and the error responses every
// handler may produce.
func NewComponents() *Components {
	errorBody := ResponseJSON("", SchemaRef("ErrorResponse"))

	return &Components{
		Schemas: map[string]*Schema{
			"ErrorResponse": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Property{
					"error": {Type: "string"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": {Description: "Invalid request", Content: errorBody.Content},
			"NotFound":   {Description: "Resource not found", Content: errorBody.Content},
		},
	}
}

func (s *Spec) SetDescription(desc string) {
	s.Info.Description = desc
}

func (s *Spec) AddServer(url string) {
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddSchemas merges schemas into the document components.
func (s *Spec) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		s.Components.Schemas[name] = schema
	}
}

// AddOperation records op as the GET operation for path.
func (s *Spec) AddOperation(path string, op *Operation) {
	if s.Paths[path] == nil {
		s.Paths[path] = &PathItem{}
	}
	s.Paths[path].Get = op
}

// MarshalJSON renders the document as indented JSON.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// ServeSpec returns a handler writing the pre-rendered document.
func ServeSpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
