package shop

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"MiniShop/internal/auth"
	"MiniShop/internal/cart"
	"MiniShop/internal/catalog"
	"MiniShop/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
	CORSOrigins    []string
}

type Deps struct {
	Auth    *auth.Server
	Catalog *catalog.Server
	Cart    *cart.Server
	JWT     *auth.TokenMaker
}

const readyTimeout = 1 * time.Second

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	if httpDeps.Log == nil {
		httpDeps.Log = zap.NewNop()
	}

	r := chi.NewRouter()
	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(deps, httpDeps.Log))

	r.Route("/api", func(api chi.Router) {
		api.Post("/signup", deps.Auth.SignupHandler())
		api.Post("/login", deps.Auth.LoginHandler())
		api.Get("/items", deps.Catalog.ListHandler())

		api.Group(func(pr chi.Router) {
			pr.Use(auth.RequireToken(deps.JWT))
			pr.Post("/items", deps.Catalog.CreateHandler())
			pr.Put("/items/{id}", deps.Catalog.UpdateHandler())
			pr.Delete("/items/{id}", deps.Catalog.DeleteHandler())
			pr.Post("/cart/add", deps.Cart.AddHandler())
		})
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(deps Deps, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := deps.Auth.Store.Ping(ctx); err != nil {
			log.Warn("readyz failed: users", zap.Error(err))
			kit.WriteText(w, http.StatusServiceUnavailable, "users not ready")
			return
		}
		if err := deps.Catalog.Store.Ping(ctx); err != nil {
			log.Warn("readyz failed: catalog", zap.Error(err))
			kit.WriteText(w, http.StatusServiceUnavailable, "catalog not ready")
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
