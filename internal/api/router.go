package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/blaisecz/shift-coach/docs"
	"github.com/blaisecz/shift-coach/internal/api/handler"
	"github.com/blaisecz/shift-coach/internal/api/middleware"
)

// Handlers groups the route handlers.
type Handlers struct {
	User     *handler.UserHandler
	SleepLog *handler.SleepLogHandler
	Shift    *handler.ShiftHandler
	DailyLog *handler.DailyLogHandler
	Wellness *handler.WellnessHandler
	Coach    *handler.CoachHandler
}

type Router struct {
	handlers Handlers
	logger   *zap.Logger
}

func NewRouter(handlers Handlers, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{handlers: handlers, logger: logger}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger.Named("recovery")))
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(rt.logger.Named("http")))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	h := rt.handlers
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.User.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", h.User.GetByID)

				r.Route("/sleep-logs", func(r chi.Router) {
					r.Post("/", h.SleepLog.Create)
					r.Get("/", h.SleepLog.List)
					r.Get("/{logId}", h.SleepLog.Get)
					r.Patch("/{logId}", h.SleepLog.Update)
					r.Get("/{logId}/stages", h.Wellness.SleepStages)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Post("/", h.Shift.Create)
					r.Get("/", h.Shift.List)
				})

				r.Post("/mood-logs", h.DailyLog.LogMood)
				r.Post("/water-logs", h.DailyLog.LogWater)
				r.Post("/caffeine-logs", h.DailyLog.LogCaffeine)

				r.Route("/wellness", func(r chi.Router) {
					r.Get("/today", h.Wellness.Today)
					r.Get("/circadian", h.Wellness.Circadian)
					r.Get("/sleep-deficit", h.Wellness.SleepDeficit)
					r.Get("/macros", h.Wellness.Macros)
					r.Get("/steps", h.Wellness.Steps)
					r.Get("/shift-lag", h.Wellness.ShiftLag)
					r.Get("/social-jetlag", h.Wellness.SocialJetlag)
				})

				r.Route("/coach", func(r chi.Router) {
					r.Get("/state", h.Coach.State)
					r.Get("/tip", h.Coach.Tip)
					r.Post("/tip/feedback", h.Coach.Feedback)
				})
			})
		})
	})

	return r
}
