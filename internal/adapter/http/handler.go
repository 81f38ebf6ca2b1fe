package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"radio-mediaplan/internal/core/port"
	"radio-mediaplan/internal/resilience"
)

// Options carries the optional parts of the router.
type Options struct {
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	// Health reports provider state at /healthz.
	Health *resilience.Registry
	// PlanRateLimit and SendRateLimit are requests per client IP and minute.
	// Zero disables the limit.
	PlanRateLimit int
	SendRateLimit int
}

// Handler is the inbound HTTP adapter. Routes are registered on a
// chi.Router.
type Handler struct {
	svc      port.MediaPlanUseCase
	logger   *slog.Logger
	validate *validator.Validate
	health   *resilience.Registry
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.MediaPlanUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{
		svc:      svc,
		logger:   logger,
		validate: newValidator(),
		health:   opts.Health,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/stations", h.handleStations)
		r.Get("/slots", h.handleSlots)
		r.Get("/tiers", h.handleTiers)

		r.Route("/mediaplan", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Post("/calculate", h.handleCalculate)
			r.With(rateLimit(opts.PlanRateLimit, time.Minute)).Post("/plan", h.handlePlan)
			r.Post("/export", h.handleExport)
			r.With(rateLimit(opts.SendRateLimit, time.Minute)).Post("/send", h.handleSend)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
