package httpadapter

import "net/http"

// HttpHandle binds a ServeMux pattern ("METHOD /path/{wildcard}") to its handler.
type HttpHandle struct {
	Path    string
	Handler func(w http.ResponseWriter, r *http.Request)
}

// Register mounts every route on mux.
func Register(mux *http.ServeMux, routes ...HttpHandle) {
	for _, route := range routes {
		mux.HandleFunc(route.Path, route.Handler)
	}
}
