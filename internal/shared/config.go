package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	HolidifyBase  string
	UserAgent     string
	ScrapeTimeout time.Duration
	ScrapeRPS     int
	Workers       int
	MinBudget     float64
	CacheTTL      time.Duration
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisDB:       atoi("REDIS_DB", 0),
		RedisPass:     env("REDIS_PASSWORD", ""),
		HolidifyBase:  env("HOLIDIFY_BASE_URL", "https://www.holidify.com"),
		UserAgent:     env("SCRAPE_USER_AGENT", "Mozilla/5.0"),
		ScrapeTimeout: time.Duration(atoi("SCRAPE_TIMEOUT_SECONDS", 15)) * time.Second,
		ScrapeRPS:     atoi("SCRAPE_RPS", 2),
		Workers:       atoi("SCRAPE_WORKERS", 4),
		MinBudget:     float64(atoi("MIN_BUDGET", 1000)),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.ScrapeTimeout <= 0 {
		log.Warn().Msg("SCRAPE_TIMEOUT_SECONDS is non-positive, scrapes will fail fast")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
