package main

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"MiniShop/internal/config"
	"MiniShop/internal/shop"
	"MiniShop/pkg/kit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := kit.NewLogger(shop.Service, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if cfg.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("JWT_SECRET not set, using built-in default")
	}
	if cfg.TokenTTL == 0 {
		logger.Warn("TOKEN_TTL not set, issued tokens never expire")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h, err := shop.Build(cfg, logger, reg)
	if err != nil {
		logger.Fatal("init shop handler failed", zap.Error(err))
	}

	if err := kit.RunHTTPServer(":"+cfg.Port, h, logger); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
