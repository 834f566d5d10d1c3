// Package api exposes the route table as a read-only JSON API.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/checkout-shell/internal/config"
	"github.com/JaimeStill/checkout-shell/pkg/middleware"
	"github.com/JaimeStill/checkout-shell/pkg/module"
	"github.com/JaimeStill/checkout-shell/pkg/navigation"
	"github.com/JaimeStill/checkout-shell/pkg/openapi"
	"github.com/JaimeStill/checkout-shell/pkg/routes"
)

const (
	title   = "Checkout Routes API"
	version = "1.0.0"
)

// NewModule creates the API module mounted at cfg.API.BasePath. The module
// also serves its OpenAPI document at /openapi.json. Construction fails if
// the base path would shadow a page route.
func NewModule(cfg *config.Config, table *navigation.Table, logger *slog.Logger) (*module.Module, error) {
	if err := checkBasePath(cfg.API.BasePath, table); err != nil {
		return nil, err
	}

	handler := NewHandler(table, &cfg.App, logger.With("module", "api"))

	spec := openapi.NewSpec(title, version)
	spec.SetDescription("Read-only access to the checkout navigation route table.")
	spec.AddServer(strings.TrimSuffix(cfg.App.PublicURL, "/") + cfg.API.BasePath)
	spec.AddSchemas(Spec.Schemas())

	mux := http.NewServeMux()
	routes.Register(mux, spec, handler.Routes())

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.CORS(&cfg.API.CORS))
	return m, nil
}

func checkBasePath(base string, table *navigation.Table) error {
	for _, r := range table.Routes() {
		if r.Path == base || strings.HasPrefix(r.Path, base+"/") {
			return fmt.Errorf("api base_path %q shadows route %q at %q", base, r.Name, r.Path)
		}
	}
	return nil
}
