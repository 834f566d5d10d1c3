package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/JaimeStill/checkout-shell/pkg/navigation"
)

const (
	EnvAppPublicURL     = "APP_PUBLIC_URL"
	EnvAppURLMode       = "APP_URL_MODE"
	EnvAppNotFound      = "APP_NOT_FOUND"
	EnvAppFallbackRoute = "APP_FALLBACK_ROUTE"
)

// NotFoundPolicy selects how the page shell answers paths with no route.
type NotFoundPolicy string

const (
	// NotFoundRender renders the not-found view with a 404 status.
	NotFoundRender NotFoundPolicy = "render"
	// NotFoundRedirect redirects to the configured fallback route.
	NotFoundRedirect NotFoundPolicy = "redirect"
)

// AppConfig contains page shell configuration.
type AppConfig struct {
	PublicURL     string         `toml:"public_url"`
	URLMode       string         `toml:"url_mode"`
	NotFound      NotFoundPolicy `toml:"not_found"`
	FallbackRoute string         `toml:"fallback_route"`
}

// Mode returns the parsed URL mode. Valid after Finalize.
func (c *AppConfig) Mode() navigation.Mode {
	return navigation.Mode(c.URLMode)
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.PublicURL != "" {
		c.PublicURL = overlay.PublicURL
	}
	if overlay.URLMode != "" {
		c.URLMode = overlay.URLMode
	}
	if overlay.NotFound != "" {
		c.NotFound = overlay.NotFound
	}
	if overlay.FallbackRoute != "" {
		c.FallbackRoute = overlay.FallbackRoute
	}
}

func (c *AppConfig) loadDefaults() {
	if c.PublicURL == "" {
		c.PublicURL = "http://localhost:8080"
	}
	if c.URLMode == "" {
		c.URLMode = string(navigation.ModeHash)
	}
	if c.NotFound == "" {
		c.NotFound = NotFoundRender
	}
	if c.FallbackRoute == "" {
		c.FallbackRoute = "Home"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppPublicURL); v != "" {
		c.PublicURL = v
	}
	if v := os.Getenv(EnvAppURLMode); v != "" {
		c.URLMode = v
	}
	if v := os.Getenv(EnvAppNotFound); v != "" {
		c.NotFound = NotFoundPolicy(v)
	}
	if v := os.Getenv(EnvAppFallbackRoute); v != "" {
		c.FallbackRoute = v
	}
}

func (c *AppConfig) validate() error {
	u, err := url.Parse(c.PublicURL)
	if err != nil {
		return fmt.Errorf("invalid public_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("public_url %q must be absolute", c.PublicURL)
	}
	if u.RawQuery != "" || u.Fragment != "" || u.ForceQuery {
		return fmt.Errorf("public_url %q must not carry a query or fragment", c.PublicURL)
	}
	if _, err := navigation.ParseMode(c.URLMode); err != nil {
		return err
	}
	switch c.NotFound {
	case NotFoundRender, NotFoundRedirect:
	default:
		return fmt.Errorf("invalid not_found policy %q: must be %q or %q", c.NotFound, NotFoundRender, NotFoundRedirect)
	}
	return nil
}
