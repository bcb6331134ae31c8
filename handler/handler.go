package handler

import (
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Message is the body served on the root route.
const Message = "Dockerized Node.js app"

type RootHandlerParams struct {
	fx.In

	Log *zap.Logger
}

func NewRootHandler(params RootHandlerParams) *RootHandler {
	return &RootHandler{
		log: params.Log,
	}
}

// RootHandler answers every request with Message. Method and path
// matching is left to the mux it is registered with.
type RootHandler struct {
	log *zap.Logger
}

func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, Message); err != nil {
		h.log.Debug("failed to write response",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.Error(err),
		)
	}
}
