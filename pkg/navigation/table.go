package navigation

import (
	"fmt"
	"slices"
)

// Table is an ordered, immutable set of routes indexed by path and by name.
type Table struct {
	routes []Route
	paths  map[string]int
	names  map[string]int
}

// New validates routes and builds a Table from them in declaration order.
// All violations are collected into a single *ConfigurationError.
func New(routes ...Route) (*Table, error) {
	var problems []error

	if len(routes) == 0 {
		problems = append(problems, ErrEmptyTable)
	}

	t := &Table{
		routes: make([]Route, 0, len(routes)),
		paths:  make(map[string]int, len(routes)),
		names:  make(map[string]int, len(routes)),
	}

	for _, r := range routes {
		if err := r.validate(); err != nil {
			problems = append(problems, err)
			continue
		}

		dup := false
		if i, ok := t.paths[r.Path]; ok {
			problems = append(problems, fmt.Errorf("%w: %q declared by %q and %q", ErrDuplicatePath, r.Path, t.routes[i].Name, r.Name))
			dup = true
		}
		if i, ok := t.names[r.Name]; ok {
			problems = append(problems, fmt.Errorf("%w: %q declared for %q and %q", ErrDuplicateName, r.Name, t.routes[i].Path, r.Path))
			dup = true
		}
		if dup {
			continue
		}

		t.paths[r.Path] = len(t.routes)
		t.names[r.Name] = len(t.routes)
		t.routes = append(t.routes, r)
	}

	if len(problems) > 0 {
		return nil, &ConfigurationError{Problems: problems}
	}
	return t, nil
}

// MustNew is like New but panics if the routes are invalid.
// Intended for literal tables declared at program start.
func MustNew(routes ...Route) *Table {
	t, err := New(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the route whose path equals path exactly.
func (t *Table) Resolve(path string) (Route, error) {
	i, ok := t.paths[path]
	if !ok {
		return Route{}, fmt.Errorf("%w: path %q", ErrNotFound, path)
	}
	return t.routes[i], nil
}

// ResolveByName returns the route registered under name.
func (t *Table) ResolveByName(name string) (Route, error) {
	i, ok := t.names[name]
	if !ok {
		return Route{}, fmt.Errorf("%w: name %q", ErrNotFound, name)
	}
	return t.routes[i], nil
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	return slices.Clone(t.routes)
}

func (t *Table) Len() int {
	return len(t.routes)
}
