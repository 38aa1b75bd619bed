package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"adbudget/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP that submits budget operations to a port.BudgetUseCase. Every
// mutating request is tagged with a task ID that is echoed in the response
// and in the logs.
type Handler struct {
	svc    port.BudgetUseCase
	logger *slog.Logger
	router chi.Router
	now    func() time.Time
	loc    *time.Location
}

// Option configures a Handler.
type Option func(*Handler)

// WithMetricsHandler mounts h (usually promhttp) at path, outside /api/v1.
func WithMetricsHandler(path string, h http.Handler) Option {
	return func(hd *Handler) {
		hd.router.Handle(path, h)
	}
}

// WithClock replaces time.Now as the default instant of a status check.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// WithLocation sets the zone in which a status check without an explicit
// instant reads the hour. It should match the scheduler's zone. Defaults
// to UTC.
func WithLocation(loc *time.Location) Option {
	return func(h *Handler) {
		if loc != nil {
			h.loc = loc
		}
	}
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.BudgetUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc:    svc,
		logger: logger.With(slog.String("component", "http")),
		now:    time.Now,
		loc:    time.UTC,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/brands", func(r chi.Router) {
			r.Post("/", h.handleInitBrand)
			r.Get("/", h.handleListBrands)
			r.Get("/{name}", h.handleGetBrand)
			r.Post("/{name}/spend", h.handleUpdateSpend)
			r.Post("/{name}/deactivate", h.handleDeactivate)
		})
		r.Post("/budgets/daily/reset", h.handleResetDaily)
		r.Post("/budgets/monthly/reset", h.handleResetMonthly)
		r.Post("/campaigns/status", h.handleCheckStatus)
	})
	h.router = r

	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
