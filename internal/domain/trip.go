package domain

// Attractions are plain display labels scraped from a sightseeing page, so
// they travel as []string. Hotels carry the three fields the listing cards
// expose.
type Hotel struct {
	Name   string  `json:"name"`
	Price  int     `json:"price"` // ₹ per night
	Rating float64 `json:"rating"`
}

// FoodType values accepted on the plan form.
const (
	FoodVegetarian    = "vegetarian"
	FoodNonVegetarian = "non-vegetarian"
)

// Categories accepted by the attraction filter. "all" disables filtering.
var Categories = []string{"all", "historical", "fun", "museum", "nature"}

type PlanRequest struct {
	Destination string   `json:"destination"`
	Budget      float64  `json:"budget"` // total trip budget, ₹
	Days        int      `json:"days"`
	Preferences []string `json:"preferences,omitempty"`
	FoodType    string   `json:"food_type"`
}

type DayPlan struct {
	Label       string   `json:"label"` // "Day 1", "Day 2", ...
	Attractions []string `json:"attractions"`
}

type TripPlan struct {
	Destination string    `json:"destination"`
	Hotel       Hotel     `json:"hotel"`
	HotelCost   int       `json:"hotel_cost"` // per day
	FoodCost    int       `json:"food_cost"`  // per day
	Transport   int       `json:"transport"`  // one-time
	Shopping    float64   `json:"shopping"`   // 30% of budget
	TotalCost   float64   `json:"total_cost"`
	Days        int       `json:"days"`
	Itinerary   []DayPlan `json:"itinerary"`
}

// FallbackAttractions fills the itinerary when scraping or filtering leaves
// nothing to schedule.
func FallbackAttractions() []string {
	return []string{"Local Market Visit", "City Park", "Sunset Point", "Cultural Walk"}
}

// FallbackHotels is returned when no scraped listing fits the per-day ceiling
// (or the hotels page could not be fetched at all).
func FallbackHotels() []Hotel {
	return []Hotel{
		{Name: "Budget Stay", Price: 1200, Rating: 3.9},
		{Name: "Hotel Comfort Inn", Price: 1400, Rating: 4.2},
		{Name: "City Lodge", Price: 1000, Rating: 4.0},
	}
}
