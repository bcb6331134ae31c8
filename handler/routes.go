package handler

import "github.com/lambda-feedback/dockerapp/internal/server"

// RootPattern matches GET and HEAD on exactly "/".
const RootPattern = "GET /{$}"

func NewRootRoute(handler *RootHandler) server.HttpHandlerResult {
	return server.AsHttpHandler(RootPattern, handler)
}
