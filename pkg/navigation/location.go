package navigation

import (
	"fmt"
	"net/url"
	"strings"
)

// Mode selects how route paths are encoded into browser URLs.
type Mode string

const (
	// ModeHash carries the route path in the URL fragment, e.g. /#/success.
	ModeHash Mode = "hash"
	// ModeHistory carries the route path as the URL path, e.g. /success.
	ModeHistory Mode = "history"
)

// ParseMode validates s as a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeHash, ModeHistory:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid url mode %q: must be %q or %q", s, ModeHash, ModeHistory)
	}
}

// Href returns the root-relative link for the named route.
func (t *Table) Href(name string, mode Mode) (string, error) {
	r, err := t.ResolveByName(name)
	if err != nil {
		return "", err
	}
	return href(r.Path, mode)
}

// URL joins the href for the named route onto base, which is normally the
// public origin of the application such as http://localhost:8080. base must
// be absolute and carry no query or fragment.
func (t *Table) URL(base, name string, mode Mode) (string, error) {
	h, err := t.Href(name, mode)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base url %q must be absolute", base)
	}
	if u.RawQuery != "" || u.Fragment != "" || u.ForceQuery {
		return "", fmt.Errorf("base url %q must not carry a query or fragment", base)
	}

	return strings.TrimSuffix(base, "/") + h, nil
}

// ResolveURL resolves an absolute or relative URL to a route. A fragment
// beginning with "/" is treated as a hash-mode route path; otherwise the URL
// path is used. Query strings are ignored.
func (t *Table) ResolveURL(raw string) (Route, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Route{}, fmt.Errorf("parse url %q: %w", raw, err)
	}

	p := u.Path
	if strings.HasPrefix(u.Fragment, "/") {
		p, _, _ = strings.Cut(u.Fragment, "?")
	}
	if p == "" {
		p = "/"
	}

	return t.Resolve(p)
}

func href(path string, mode Mode) (string, error) {
	switch mode {
	case ModeHash:
		return "/#" + path, nil
	case ModeHistory:
		return path, nil
	default:
		return "", fmt.Errorf("invalid url mode %q", mode)
	}
}
