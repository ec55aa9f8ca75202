// cmd/scrape warms the scrape cache for a set of destinations, e.g.
//
//	scrape -budget 20000 goa shimla jaipur
package main

import (
	"context"
	"flag"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"tripbuddy/internal/adapters/holidify"
	"tripbuddy/internal/adapters/observability"
	redisad "tripbuddy/internal/adapters/redis"
	"tripbuddy/internal/app"
	"tripbuddy/internal/shared"
)

func main() {
	budget := flag.Float64("budget", 20000, "trip budget used for the hotel price ceiling")
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	destinations := flag.Args()
	if len(destinations) == 0 {
		log.Fatal().Msg("usage: scrape [-budget N] destination ...")
	}
	if *budget < cfg.MinBudget {
		log.Fatal().Float64("min", cfg.MinBudget).Msg("budget below minimum")
	}

	log.Info().
		Str("base", cfg.HolidifyBase).
		Int("workers", cfg.Workers).
		Int("destinations", len(destinations)).
		Msg("scrape starting")

	rng := shared.NewRand()
	scraper := holidify.New(cfg.HolidifyBase, cfg.UserAgent, cfg.ScrapeTimeout, cfg.ScrapeRPS, rng)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	planner := app.NewPlanService(scraper, scraper, cache, rng, cfg.MinBudget, cfg.CacheTTL)

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, dest := range destinations {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(dest string) {
			defer wg.Done()
			defer sem.Release(1)

			attractions, hotels := planner.WarmCache(ctx, dest, *budget)
			log.Info().
				Str("destination", dest).
				Int("attractions", attractions).
				Int("hotels", hotels).
				Msg("scrape ok")
		}(dest)
	}

	wg.Wait()
	log.Info().Msg("scrape completed")
}
