package api

import (
	"net/http"

	_ "github.com/blaisecz/glucose-dashboard/docs"
	"github.com/blaisecz/glucose-dashboard/internal/api/handler"
	"github.com/blaisecz/glucose-dashboard/internal/api/middleware"
	"github.com/blaisecz/glucose-dashboard/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	healthHandler  *handler.HealthHandler
	chartHandler   *handler.ChartHandler
	sessionHandler *handler.SessionHandler
	logger         *logging.Logger
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	chartHandler *handler.ChartHandler,
	sessionHandler *handler.SessionHandler,
	logger *logging.Logger,
) *Router {
	return &Router{
		healthHandler:  healthHandler,
		chartHandler:   chartHandler,
		sessionHandler: sessionHandler,
		logger:         logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger(rt.logger, "/health", "/ready", "/metrics"))
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)
	r.Use(middleware.Metrics)

	// Probes and metrics
	r.Get("/health", rt.healthHandler.Health)
	r.Get("/ready", rt.healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Get("/tags", rt.chartHandler.ListTags)
		r.Get("/response", rt.chartHandler.AggregateResponse)
		r.Get("/timeline", rt.chartHandler.Timeline)
		r.Get("/carbs/histogram", rt.chartHandler.CarbHistogram)

		// Patients
		r.Route("/patients", func(r chi.Router) {
			r.Get("/", rt.chartHandler.ListPatients)
			r.Get("/{patientId}/response", rt.chartHandler.PatientResponse)
		})

		// Dashboard sessions
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", rt.sessionHandler.Create)
			r.Get("/{sessionId}", rt.sessionHandler.Get)
			r.Get("/{sessionId}/dashboard", rt.sessionHandler.Dashboard)
			r.Patch("/{sessionId}/filter", rt.sessionHandler.ApplyFilter)
		})
	})

	return r
}
