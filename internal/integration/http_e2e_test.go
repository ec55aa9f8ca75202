//go:build integration || !unit

package integration

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbuddy/internal/adapters/holidify"
	httpserver "tripbuddy/internal/adapters/http_server"
	redisad "tripbuddy/internal/adapters/redis"
	"tripbuddy/internal/app"
	"tripbuddy/internal/domain"
)

const sightseeingPage = `<html><body>
<h2 class="card-heading">1. Baga Beach</h2>
<h3 class="card-heading">2. Aguada Fort</h3>
<h3 class="card-heading">3. Dudhsagar Waterfalls</h3>
<h3 class="card-heading">4. Salim Ali Bird Sanctuary</h3>
<h3 class="card-heading">5. Goa State Museum</h3>
<h3 class="card-heading">6. Chapora Fort</h3>
</body></html>`

const hotelsPage = `<html><body>
<div class="card"><h3 class="card-heading">Sea Breeze Resort</h3><div class="price">₹ 2,400</div><span>4.5</span></div>
<div class="card"><h3 class="card-heading">Palm Grove Inn</h3><div class="price">₹ 1,800</div><span>4.1</span></div>
<div class="card"><h3 class="card-heading">Grand Taj Imperial</h3><div class="price">₹ 18,000</div><span>4.9</span></div>
</body></html>`

// stubHolidify serves the two destination pages the scrapers request.
func stubHolidify(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "sightseeing-and-things-to-do.html"):
			_, _ = w.Write([]byte(sightseeingPage))
		case strings.HasSuffix(r.URL.Path, "hotels-where-to-stay.html"):
			_, _ = w.Write([]byte(hotelsPage))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newStack(t *testing.T) (http.Handler, *app.PlanService) {
	t.Helper()
	site := stubHolidify(t)
	mr := miniredis.RunT(t)

	rng := rand.New(rand.NewSource(7))
	scraper := holidify.New(site.URL, "Mozilla/5.0", 5*time.Second, 100, rng)
	cache := redisad.New(mr.Addr(), "", 0)
	planner := app.NewPlanService(scraper, scraper, cache, rng, 1000, 10*time.Minute)

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{P: planner})
	return srv.Mux(), planner
}

func TestE2E_PlanFormRoundTrip(t *testing.T) {
	mux, _ := newStack(t)

	form := url.Values{
		"destination": {"Goa"},
		"budget":      {"20000"},
		"days":        {"2"},
		"preferences": {"fun", "nature"},
		"food_type":   {"vegetarian"},
	}
	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()

	// one of the two budget-qualifying hotels; the ₹18k one is priced out
	assert.True(t,
		strings.Contains(body, "Sea Breeze Resort") || strings.Contains(body, "Palm Grove Inn"),
		"expected a scraped hotel in the page")
	assert.NotContains(t, body, "Grand Taj Imperial")
	assert.Contains(t, body, "Day 1")
	assert.Contains(t, body, "Day 2")
	assert.Contains(t, body, "Download Report (CSV)")
}

func TestE2E_JSONPlanAndCacheWarmth(t *testing.T) {
	mux, planner := newStack(t)

	payload := `{"destination":"Goa","budget":20000,"days":3,"preferences":["nature"],"food_type":"non-vegetarian"}`
	do := func() domain.TripPlan {
		req := httptest.NewRequest(http.MethodPost, "/v1/plans", strings.NewReader(payload))
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		var plan domain.TripPlan
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
		return plan
	}

	plan := do()
	assert.Equal(t, "Goa", plan.Destination)
	require.Len(t, plan.Itinerary, 3)

	// "nature" keeps only Salim Ali Bird Sanctuary ("sanctuary"); it lands
	// on day one and the remaining days come out free
	scheduled := map[string]bool{}
	for _, day := range plan.Itinerary {
		for _, a := range day.Attractions {
			scheduled[a] = true
		}
	}
	assert.Equal(t, []string{"Salim Ali Bird Sanctuary"}, keys(scheduled))
	assert.Empty(t, plan.Itinerary[1].Attractions)
	assert.Empty(t, plan.Itinerary[2].Attractions)

	assert.GreaterOrEqual(t, plan.FoodCost, 600)
	assert.LessOrEqual(t, plan.FoodCost, 900)
	assert.Equal(t, 6000.00, plan.Shopping)

	// second request is served from the warmed cache
	_ = do()

	// warming the cache directly also reports the cached shortlists
	attractions, hotels := planner.WarmCache(context.Background(), "Goa", 20000)
	assert.Equal(t, 6, attractions)
	assert.Equal(t, 2, hotels)
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestE2E_SiteDownDegradesToFallbacks(t *testing.T) {
	mr := miniredis.RunT(t)
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(site.Close)

	rng := rand.New(rand.NewSource(3))
	scraper := holidify.New(site.URL, "Mozilla/5.0", time.Second, 100, rng)
	cache := redisad.New(mr.Addr(), "", 0)
	planner := app.NewPlanService(scraper, scraper, cache, rng, 1000, time.Minute)

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{P: planner})

	req := httptest.NewRequest(http.MethodPost, "/v1/plans",
		strings.NewReader(`{"destination":"Goa","budget":20000,"days":3,"food_type":"vegetarian"}`))
	rr := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var plan domain.TripPlan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))

	assert.Contains(t, domain.FallbackHotels(), plan.Hotel)
	for _, day := range plan.Itinerary {
		for _, a := range day.Attractions {
			assert.Contains(t, domain.FallbackAttractions(), a)
		}
	}
	assert.GreaterOrEqual(t, plan.FoodCost, 400)
	assert.LessOrEqual(t, plan.FoodCost, 700)
}
