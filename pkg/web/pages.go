// Package web provides infrastructure for serving pages with Go templates.
// Templates are parsed once at startup so a missing or malformed template
// fails the process before it serves traffic.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef names a view and the template file that renders it.
type ViewDef struct {
	Name     string
	Template string
	Title    string
}

// PageData contains the data passed to templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type PageData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds one pre-parsed template tree per view, each cloned from
// the shared layouts.
type TemplateSet struct {
	views    map[string]*template.Template
	titles   map[string]string
	basePath string
}

// NewTemplateSet parses the layouts matching layoutGlob and clones them for
// each view, parsing the view's template from viewSubdir.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	ts := &TemplateSet{
		views:    make(map[string]*template.Template, len(views)),
		titles:   make(map[string]string, len(views)),
		basePath: basePath,
	}

	for _, v := range views {
		if _, ok := ts.views[v.Name]; ok {
			return nil, fmt.Errorf("duplicate view %q", v.Name)
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Name, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		ts.views[v.Name] = t
		ts.titles[v.Name] = v.Title
	}

	return ts, nil
}

// Has reports whether a template is registered for the named view.
func (ts *TemplateSet) Has(name string) bool {
	_, ok := ts.views[name]
	return ok
}

// Title returns the configured title for the named view.
func (ts *TemplateSet) Title(name string) string {
	return ts.titles[name]
}

func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Render executes the layout for the named view and writes it with status.
// Output is buffered so that a template error can still produce a clean
// error response.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layout, name string, data PageData) error {
	t, ok := ts.views[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
