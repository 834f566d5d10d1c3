package module

import "net/http"

// Router dispatches requests to native handlers and mounted modules.
type Router struct {
	mux *http.ServeMux
}

func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// HandleNative registers a handler that bypasses module prefix handling.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Mount registers m under its prefix.
func (r *Router) Mount(m *Module) {
	if m.prefix == "/" {
		r.mux.HandleFunc("/", m.Serve)
		return
	}
	r.mux.HandleFunc(m.prefix, m.Serve)
	r.mux.HandleFunc(m.prefix+"/", m.Serve)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
