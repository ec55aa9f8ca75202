package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tripbuddy/internal/domain"
)

var (
	ErrNoDestination = errors.New("destination is required")
	ErrBadDays       = errors.New("days must be at least 1")
	ErrBadBudget     = errors.New("budget is below the minimum")
)

// PlanService runs the whole pipeline: scrape (through the cache), filter,
// cost draws, itinerary partition. Scrape failures never surface to the user;
// they degrade to the fixed fallback data.
type PlanService struct {
	attractions domain.AttractionSource
	hotels      domain.HotelSource
	cache       domain.Cache
	rng         domain.Rand
	minBudget   float64
	cacheTTL    time.Duration
}

func NewPlanService(a domain.AttractionSource, h domain.HotelSource, cache domain.Cache, rng domain.Rand, minBudget float64, ttl time.Duration) *PlanService {
	if minBudget <= 0 {
		minBudget = 1000
	}
	return &PlanService{attractions: a, hotels: h, cache: cache, rng: rng, minBudget: minBudget, cacheTTL: ttl}
}

func (s *PlanService) MinBudget() float64 { return s.minBudget }

// Validate applies the only user-facing error checks; everything past this
// point degrades silently.
func (s *PlanService) Validate(req domain.PlanRequest) error {
	if req.Destination == "" {
		return ErrNoDestination
	}
	if req.Days < 1 {
		return ErrBadDays
	}
	if req.Budget < s.minBudget {
		return fmt.Errorf("%w (₹%.0f)", ErrBadBudget, s.minBudget)
	}
	return nil
}

func (s *PlanService) GeneratePlan(ctx context.Context, req domain.PlanRequest) (domain.TripPlan, error) {
	if err := s.Validate(req); err != nil {
		return domain.TripPlan{}, err
	}

	// The two scrapes are independent; run them side by side. Each one
	// absorbs its own failure, so the group never errors.
	var attractions []string
	var hotels []domain.Hotel
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		attractions = s.fetchAttractions(gctx, req.Destination)
		return nil
	})
	g.Go(func() error {
		hotels = s.fetchHotels(gctx, req.Destination, req.Budget)
		return nil
	})
	_ = g.Wait()

	attractions = FilterAttractions(attractions, req.Preferences)
	if len(attractions) == 0 {
		attractions = domain.FallbackAttractions()
	}

	hotel := hotels[s.rng.Intn(len(hotels))]

	foodCost := 600 + s.rng.Intn(301) // non-vegetarian: [600, 900]
	if req.FoodType == domain.FoodVegetarian {
		foodCost = 400 + s.rng.Intn(301) // [400, 700]
	}
	transport := 600 + s.rng.Intn(1401) // [600, 2000]
	shopping := math.Round(req.Budget*0.30*100) / 100
	total := float64(hotel.Price*req.Days+foodCost*req.Days+transport) + shopping

	shuffled := append([]string(nil), attractions...)
	s.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	return domain.TripPlan{
		Destination: req.Destination,
		Hotel:       hotel,
		HotelCost:   hotel.Price,
		FoodCost:    foodCost,
		Transport:   transport,
		Shopping:    shopping,
		TotalCost:   total,
		Days:        req.Days,
		Itinerary:   partition(shuffled, req.Days),
	}, nil
}

// WarmCache scrapes a destination once and leaves the results in the cache
// for subsequent plan requests. Used by cmd/scrape; counts are advisory.
func (s *PlanService) WarmCache(ctx context.Context, destination string, budget float64) (attractions, hotels int) {
	a := s.fetchAttractions(ctx, destination)
	h := s.fetchHotels(ctx, destination, budget)
	return len(a), len(h)
}

// fetchAttractions is cache-aside over the scraper; any failure degrades to
// an empty list (the filter fallback covers it downstream).
func (s *PlanService) fetchAttractions(ctx context.Context, destination string) []string {
	key := "attractions:" + cacheSlug(destination)
	var out []string
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out
	}
	out, err := s.attractions.FetchAttractions(ctx, destination)
	if err != nil {
		log.Warn().Str("destination", destination).Err(err).Msg("attraction scrape failed")
		return nil
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out
}

// fetchHotels is cache-aside keyed by destination and per-day ceiling (the
// qualifying set depends on the budget). Failure or an empty result degrades
// to the fixed fallback list, so a hotel can always be drawn.
func (s *PlanService) fetchHotels(ctx context.Context, destination string, budget float64) []domain.Hotel {
	key := fmt.Sprintf("hotels:%s:%.0f", cacheSlug(destination), budget*0.50)
	var out []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &out); ok && len(out) > 0 {
		return out
	}
	out, err := s.hotels.FetchHotels(ctx, destination, budget)
	if err != nil || len(out) == 0 {
		// advisory only; the plan still renders with fallback hotels
		log.Warn().Str("destination", destination).Err(err).Msg("hotel scrape failed, using fallback list")
		return domain.FallbackHotels()
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out
}

// partition splits the shuffled attractions into days contiguous chunks of
// max(1, count/days) entries. Remainder attractions beyond days*chunk are
// dropped rather than redistributed, and trailing days come out empty when
// count < days.
func partition(attractions []string, days int) []domain.DayPlan {
	chunk := len(attractions) / days
	if chunk < 1 {
		chunk = 1
	}
	out := make([]domain.DayPlan, 0, days)
	for i := 0; i < days; i++ {
		start := min(i*chunk, len(attractions))
		end := min(start+chunk, len(attractions))
		out = append(out, domain.DayPlan{
			Label:       fmt.Sprintf("Day %d", i+1),
			Attractions: attractions[start:end],
		})
	}
	return out
}

// cacheSlug normalizes a destination for cache keys the same way the scraper
// builds its URLs, so cmd/scrape warms the keys the web planner reads.
func cacheSlug(destination string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(destination)), " ", "-")
}
