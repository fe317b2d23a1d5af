package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/kbo-fan-service/internal/http/handlers"
	"github.com/preston-bernstein/kbo-fan-service/internal/http/middleware"
	"github.com/preston-bernstein/kbo-fan-service/internal/http/requestutil"
	"github.com/preston-bernstein/kbo-fan-service/internal/metrics"
)

// RouterConfig carries the cross-cutting pieces the router mounts around the handlers.
type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(cfg.Logger, cfg.Recorder))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(corsOptions(cfg.AllowedOrigins)))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", handler.Teams)
		r.Get("/teams/{code}", handler.TeamByCode)
		r.Get("/highlights", handler.Highlights)
		r.Route("/records", func(r chi.Router) {
			r.Get("/rankings", handler.Rankings)
			r.Get("/batters", handler.Batters)
			r.Get("/pitchers", handler.Pitchers)
			r.Get("/history", handler.History)
		})
		r.Get("/schedule", handler.Schedule)
	})
	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
		MaxAge:         300,
	}
}
