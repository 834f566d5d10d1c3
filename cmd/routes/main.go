// Command routes prints the checkout route table or resolves a single
// path, route name, or URL against it.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/JaimeStill/checkout-shell/internal/views"
	"github.com/JaimeStill/checkout-shell/pkg/navigation"
	"gopkg.in/yaml.v3"
)

type options struct {
	format string
	path   string
	name   string
	url    string
	mode   string
	base   string
}

type entry struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
	View string `json:"view" yaml:"view"`
	Href string `json:"href" yaml:"href"`
	URL  string `json:"url" yaml:"url"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "routes:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	mode, err := navigation.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	table, err := views.NewTable()
	if err != nil {
		return err
	}

	var routes []navigation.Route
	switch {
	case opts.path != "":
		r, err := table.Resolve(opts.path)
		if err != nil {
			return err
		}
		routes = append(routes, r)
	case opts.name != "":
		r, err := table.ResolveByName(opts.name)
		if err != nil {
			return err
		}
		routes = append(routes, r)
	case opts.url != "":
		r, err := table.ResolveURL(opts.url)
		if err != nil {
			return err
		}
		routes = append(routes, r)
	default:
		routes = table.Routes()
	}

	entries := make([]entry, 0, len(routes))
	for _, r := range routes {
		href, err := table.Href(r.Name, mode)
		if err != nil {
			return err
		}
		u, err := table.URL(opts.base, r.Name, mode)
		if err != nil {
			return err
		}
		entries = append(entries, entry{
			Name: r.Name,
			Path: r.Path,
			View: string(r.View),
			Href: href,
			URL:  u,
		})
	}

	return write(stdout, opts.format, entries)
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("routes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.format, "format", "text", "Output format: text, json, or yaml")
	fs.StringVar(&opts.path, "path", "", "Resolve a route by path")
	fs.StringVar(&opts.name, "name", "", "Resolve a route by name")
	fs.StringVar(&opts.url, "url", "", "Resolve a route from a hash or history URL")
	fs.StringVar(&opts.mode, "mode", string(navigation.ModeHash), "URL mode: hash or history")
	fs.StringVar(&opts.base, "base", "http://localhost:8080", "Public base URL for absolute links")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func write(w io.Writer, format string, entries []entry) error {
	switch format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tPATH\tVIEW\tHREF\tURL")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Name, e.Path, e.View, e.Href, e.URL)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
