package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/checkout-shell/internal/config"
	"github.com/JaimeStill/checkout-shell/pkg/handlers"
	"github.com/JaimeStill/checkout-shell/pkg/navigation"
	"github.com/JaimeStill/checkout-shell/pkg/routes"
)

// ErrMissingQuery is returned when /resolve receives neither path nor url.
var ErrMissingQuery = errors.New("query parameter path or url is required")

// RouteInfo is the JSON projection of a route.
type RouteInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
	View string `json:"view"`
	Href string `json:"href"`
	URL  string `json:"url,omitempty"`
}

type Handler struct {
	table  *navigation.Table
	app    *config.AppConfig
	logger *slog.Logger
}

func NewHandler(table *navigation.Table, app *config.AppConfig, logger *slog.Logger) *Handler {
	return &Handler{
		table:  table,
		app:    app,
		logger: logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Tags:        []string{"Routes"},
		Description: "Navigation route table",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/routes", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/routes/{name}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "GET", Pattern: "/resolve", Handler: h.Resolve, OpenAPI: Spec.Resolve},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	table := h.table.Routes()
	result := make([]RouteInfo, 0, len(table))

	for _, route := range table {
		info, err := h.info(route, false)
		if err != nil {
			handlers.RespondError(w, r, h.logger, http.StatusInternalServerError, err)
			return
		}
		result = append(result, info)
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	route, err := h.table.ResolveByName(r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, navigation.MapHTTPStatus(err), err)
		return
	}

	h.respond(w, r, route)
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		route navigation.Route
		err   error
	)

	switch {
	case q.Has("path"):
		route, err = h.table.Resolve(q.Get("path"))
	case q.Has("url"):
		route, err = h.table.ResolveURL(q.Get("url"))
		if err != nil && !errors.Is(err, navigation.ErrNotFound) {
			handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
			return
		}
	default:
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, ErrMissingQuery)
		return
	}

	if err != nil {
		handlers.RespondError(w, r, h.logger, navigation.MapHTTPStatus(err), err)
		return
	}

	h.respond(w, r, route)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, route navigation.Route) {
	info, err := h.info(route, true)
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, info)
}

func (h *Handler) info(route navigation.Route, absolute bool) (RouteInfo, error) {
	mode := h.app.Mode()

	href, err := h.table.Href(route.Name, mode)
	if err != nil {
		return RouteInfo{}, err
	}

	info := RouteInfo{
		Name: route.Name,
		Path: route.Path,
		View: string(route.View),
		Href: href,
	}

	if absolute {
		if info.URL, err = h.table.URL(h.app.PublicURL, route.Name, mode); err != nil {
			return RouteInfo{}, err
		}
	}
	return info, nil
}
