// Package app provides the checkout page shell. Every page request is
// dispatched through the route table and rendered with the bound view's
// embedded template.
package app

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/checkout-shell/internal/config"
	"github.com/JaimeStill/checkout-shell/internal/views"
	"github.com/JaimeStill/checkout-shell/pkg/middleware"
	"github.com/JaimeStill/checkout-shell/pkg/module"
	"github.com/JaimeStill/checkout-shell/pkg/navigation"
	"github.com/JaimeStill/checkout-shell/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const (
	layout       = "app.html"
	notFoundView = "not-found"
	basePath     = "/"
)

var viewDefs = []web.ViewDef{
	{Name: string(views.Home), Template: "home.html", Title: "Checkout"},
	{Name: string(views.Success), Template: "success.html", Title: "Payment Received"},
	{Name: string(views.Failure), Template: "failure.html", Title: "Payment Cancelled"},
	{Name: notFoundView, Template: "404.html", Title: "Not Found"},
}

// Link is a navigation entry rendered in the page header.
type Link struct {
	Name   string
	Href   string
	Active bool
}

// Page is the view model passed to every template as PageData.Data.
type Page struct {
	Route navigation.Route
	Links []Link
}

type shell struct {
	table     *navigation.Table
	templates *web.TemplateSet
	policy    config.NotFoundPolicy
	fallback  string
	links     []Link
	logger    *slog.Logger
}

// NewModule builds the page shell mounted at the site root. Construction
// fails if any route's view has no template or the fallback route does not
// resolve.
func NewModule(table *navigation.Table, cfg *config.AppConfig, logger *slog.Logger) (*module.Module, error) {
	ts, err := web.NewTemplateSet(layoutFS, viewFS, "server/layouts/*.html", "server/views", basePath, viewDefs)
	if err != nil {
		return nil, err
	}

	s, err := newShell(table, ts, cfg, logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.navigate)

	m := module.New(basePath, mux)
	m.Use(middleware.TrimSlash())
	return m, nil
}

func newShell(table *navigation.Table, ts *web.TemplateSet, cfg *config.AppConfig, logger *slog.Logger) (*shell, error) {
	var errs []error
	for _, r := range table.Routes() {
		if !ts.Has(string(r.View)) {
			errs = append(errs, fmt.Errorf("route %q: no template for view %q", r.Name, r.View))
		}
	}

	fallback, err := table.Href(cfg.FallbackRoute, navigation.ModeHistory)
	if err != nil {
		errs = append(errs, fmt.Errorf("fallback route: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	links := make([]Link, 0, table.Len())
	for _, r := range table.Routes() {
		links = append(links, Link{Name: r.Name, Href: r.Path})
	}

	return &shell{
		table:     table,
		templates: ts,
		policy:    cfg.NotFound,
		fallback:  fallback,
		links:     links,
		logger:    logger.With("module", "app"),
	}, nil
}

func (s *shell) navigate(w http.ResponseWriter, r *http.Request) {
	route, err := s.table.Resolve(r.URL.Path)
	if err != nil {
		s.notFound(w, r, err)
		return
	}

	s.render(w, http.StatusOK, string(route.View), Page{
		Route: route,
		Links: s.activeLinks(route),
	})
}

func (s *shell) notFound(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Debug("unmatched navigation", "path", r.URL.Path, "error", err, "policy", s.policy)

	if s.policy == config.NotFoundRedirect {
		http.Redirect(w, r, s.fallback, http.StatusFound)
		return
	}

	s.render(w, http.StatusNotFound, notFoundView, Page{Links: s.activeLinks(navigation.Route{})})
}

func (s *shell) render(w http.ResponseWriter, status int, view string, page Page) {
	data := web.PageData{
		Title:    s.templates.Title(view),
		BasePath: basePath,
		Data:     page,
	}
	if err := s.templates.Render(w, status, layout, view, data); err != nil {
		s.logger.Error("render failed", "view", view, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *shell) activeLinks(current navigation.Route) []Link {
	links := make([]Link, len(s.links))
	for i, l := range s.links {
		l.Active = l.Href == current.Path
		links[i] = l
	}
	return links
}
