package api

import (
	"net/http"

	"github.com/mahmutsamiyagmur/flightsystem/internal/api/handlers"
	"github.com/mahmutsamiyagmur/flightsystem/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	finder services.RouteFinder,
	locations *services.LocationService,
	transportations *services.TransportationService,
) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Finder: finder}
	locationHandler := &handlers.LocationHandler{Service: locations}
	transportationHandler := &handlers.TransportationHandler{Service: transportations}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes/search", routeHandler.Search)
	mux.HandleFunc("/locations", locationHandler.Collection)
	mux.HandleFunc("/locations/", locationHandler.ByID)
	mux.HandleFunc("/transportations/available", transportationHandler.Available)
	mux.HandleFunc("/transportations", transportationHandler.Collection)
	mux.HandleFunc("/transportations/", transportationHandler.ByID)

	return loggingMiddleware(mux)
}
