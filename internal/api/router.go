package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"taxi-geofence-service/internal/api/handlers"
	"taxi-geofence-service/internal/domain"
	"taxi-geofence-service/internal/platform/obs"
	"taxi-geofence-service/internal/ports"
	"taxi-geofence-service/internal/services"
)

// NewRouter wires the HTTP surface over the scheduler and the trace store.
// This is the API composition root: handlers stay unaware of concrete
// adapters behind the ports.
func NewRouter(sched *services.Scheduler, regions []domain.Region, events ports.TraceEventReader) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	simHandler := &handlers.SimulationHandler{Sched: sched}
	regionsHandler := &handlers.RegionsHandler{Regions: regions}
	eventsHandler := &handlers.EventsHandler{Reader: events}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/simulation/start", simHandler.Start)
		r.Post("/simulation/stop", simHandler.Stop)
		r.Get("/simulation/status", simHandler.Status)
		r.Get("/simulation/status/{taxiID}", simHandler.StatusByID)
		r.Get("/simulation/search", simHandler.Search)
		r.Get("/regions", regionsHandler.List)
		r.Get("/taxis/{taxiID}/events", eventsHandler.List)
	})

	r.Get("/health", handlers.Health)
	r.Method(http.MethodGet, "/metrics", obs.MetricsHandler())

	return r
}
