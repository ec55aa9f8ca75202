package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"tripbuddy/internal/adapters/holidify"
	server "tripbuddy/internal/adapters/http_server"
	"tripbuddy/internal/adapters/observability"
	redisad "tripbuddy/internal/adapters/redis"
	"tripbuddy/internal/app"
	"tripbuddy/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	rng := shared.NewRand()
	scraper := holidify.New(cfg.HolidifyBase, cfg.UserAgent, cfg.ScrapeTimeout, cfg.ScrapeRPS, rng)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	planner := app.NewPlanService(scraper, scraper, cache, rng, cfg.MinBudget, cfg.CacheTTL)

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{P: planner})

	log.Info().Str("addr", cfg.HTTPAddr).Str("base", cfg.HolidifyBase).Msg("tripbuddy listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
