package shop

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MiniShop/internal/auth"
	"MiniShop/internal/cart"
	"MiniShop/internal/catalog"
	"MiniShop/internal/config"
)

const Service = "shop"

// Build assembles stores and handlers from cfg. A nil reg disables metrics.
func Build(cfg config.Config, log *zap.Logger, reg *prometheus.Registry) (http.Handler, error) {
	seed, err := catalog.LoadSeed(cfg.SeedFile)
	if err != nil {
		return nil, err
	}

	var (
		size     prometheus.Gauge
		registry prometheus.Registerer
	)
	if reg != nil {
		registry = reg
		size = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Products currently in the catalog",
		})
		reg.MustRegister(size)
		size.Set(float64(len(seed)))
	}

	jwt := auth.NewTokenMaker(cfg.JWTSecret, cfg.TokenTTL)

	deps := Deps{
		Auth: &auth.Server{
			Log:    log,
			Store:  auth.NewMemStore(),
			Hasher: auth.NewHasher(cfg.BcryptCost),
			JWT:    jwt,
		},
		Catalog: &catalog.Server{
			Log:   log,
			Store: catalog.NewMemStore(seed),
			Size:  size,
		},
		Cart: &cart.Server{
			Log:      log,
			Recorder: cart.NewLogRecorder(log, registry),
		},
		JWT: jwt,
	}

	return NewHandler(deps, HTTPDeps{
		Log:            log,
		Service:        Service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
		CORSOrigins:    cfg.CORSOrigins,
	}), nil
}
