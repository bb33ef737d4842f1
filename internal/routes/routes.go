// Package routes holds the fixed table of HTTP routes served by the application.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/multiplaymat/mpm-server/internal/handlers"
	"github.com/multiplaymat/mpm-server/internal/logger"
)

// Route binds a handler to one method and path.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Table returns the application's routes in registration order.
func Table(version string, registerer handlers.Registerer) []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Handler: handlers.NewRootHandler(version)},
		{Method: http.MethodPost, Path: "/auth/register", Handler: handlers.NewRegisterHandler(registerer)},
	}
}

// Mount registers every route on r, in order.
func Mount(r chi.Router, routes []Route) {
	for _, route := range routes {
		logger.Log.Infof("Registering route: %s %s", route.Method, route.Path)
		r.Method(route.Method, route.Path, route.Handler)
	}
}
