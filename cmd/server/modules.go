package main

import (
	"net/http"

	"github.com/JaimeStill/checkout-shell/internal/api"
	"github.com/JaimeStill/checkout-shell/internal/config"
	"github.com/JaimeStill/checkout-shell/internal/infrastructure"
	"github.com/JaimeStill/checkout-shell/pkg/lifecycle"
	"github.com/JaimeStill/checkout-shell/pkg/middleware"
	"github.com/JaimeStill/checkout-shell/pkg/module"
	"github.com/JaimeStill/checkout-shell/web/app"
)

type Modules struct {
	API *module.Module
	App *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra.Table, infra.Logger)
	if err != nil {
		return nil, err
	}
	apiModule.Use(middleware.Logger(infra.Logger))

	appModule, err := app.NewModule(infra.Table, &cfg.App, infra.Logger)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(infra.Logger))

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		handleReadinessCheck(w, infra.Lifecycle)
	})

	return router
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
