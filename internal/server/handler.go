package server

import (
	"net/http"

	"go.uber.org/fx"
)

// HttpHandler is a handler together with the http.ServeMux pattern
// it is registered under, e.g. "GET /{$}".
type HttpHandler struct {
	Pattern string
	Handler http.Handler
}

type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

func AsHttpHandler(
	pattern string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Pattern: pattern,
			Handler: handler,
		},
	}
}

// NewServeMux registers all handlers on a fresh mux. Requests that
// match no pattern get the mux defaults, 404 or 405.
func NewServeMux(handlers []*HttpHandler) *http.ServeMux {
	mux := http.NewServeMux()

	for _, handler := range handlers {
		mux.Handle(handler.Pattern, handler.Handler)
	}

	return mux
}
