package domain

import "context"

type AttractionSource interface {
	// FetchAttractions scrapes the sightseeing page for a destination.
	// Document order, no dedup. Errors are returned, not swallowed; the
	// caller decides what degrades to a fallback.
	FetchAttractions(ctx context.Context, destination string) ([]string, error)
}

type HotelSource interface {
	// FetchHotels scrapes hotel listings and keeps only those priced at or
	// under half the total budget (the per-day ceiling). At most 10 entries;
	// FallbackHotels() when nothing on a successfully fetched page qualifies.
	FetchHotels(ctx context.Context, destination string, budget float64) ([]Hotel, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Rand is the randomness the planner and scraper consume: hotel pick, cost
// draws, synthetic ratings, itinerary shuffle. *math/rand.Rand satisfies it,
// which is how tests pin seeds.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}
