package holidify_test

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbuddy/internal/adapters/holidify"
	"tripbuddy/internal/domain"
)

const attractionsHTML = `<html><body>
<h3 class="card-heading">1. Baga Beach</h3>
<h2 class="card-heading">2. Fort Aguada</h2>
<h3 class="card-heading">Go</h3>
<h3 class="card-heading">  15.  Dudhsagar Waterfalls </h3>
<p class="card-heading">Not a heading tag we scrape</p>
</body></html>`

const hotelsHTML = `<html><body>
<div class="card">
  <h3 class="card-heading">Sea Breeze Resort</h3>
  <div class="price">₹ 2,400 per night</div>
  <span>4.5 (812 reviews)</span>
</div>
<div class="card">
  <h3 class="card-heading">Palace View</h3>
  <div class="price">₹ 9,500</div>
</div>
<div class="card">
  <a class="card-heading">Backpacker Nest</a>
  <p>From ₹900 onwards, great location</p>
</div>
<div class="card">
  <h3 class="card-heading">No Price Inn</h3>
  <p>Call for tariff</p>
</div>
<div class="card">
  <p>Nameless card with ₹1,100</p>
</div>
</body></html>`

func newClient(base string) *holidify.Client {
	return holidify.New(base, "Mozilla/5.0", 5*time.Second, 100, rand.New(rand.NewSource(1)))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "goa", holidify.Slug("Goa"))
	assert.Equal(t, "new-delhi", holidify.Slug(" New Delhi "))
}

func TestFetchAttractions(t *testing.T) {
	var gotPath, gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotUA = r.URL.Path, r.UserAgent()
		_, _ = w.Write([]byte(attractionsHTML))
	}))
	defer ts.Close()

	got, err := newClient(ts.URL).FetchAttractions(context.Background(), "New Delhi")
	require.NoError(t, err)

	// ordinals stripped, <=2 char entries dropped, document order kept
	assert.Equal(t, []string{"Baga Beach", "Fort Aguada", "Dudhsagar Waterfalls"}, got)
	assert.Equal(t, "/places/new-delhi/sightseeing-and-things-to-do.html", gotPath)
	assert.Equal(t, "Mozilla/5.0", gotUA)
}

func TestFetchAttractions_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	_, err := newClient(ts.URL).FetchAttractions(context.Background(), "atlantis")
	assert.ErrorIs(t, err, holidify.ErrBadStatus)
}

func TestFetchHotels_CeilingAndParsing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/places/goa/hotels-where-to-stay.html", r.URL.Path)
		_, _ = w.Write([]byte(hotelsHTML))
	}))
	defer ts.Close()

	// budget 10000 -> ceiling 5000: Palace View (9500) is priced out,
	// No Price Inn has no parsable price, the nameless card is skipped.
	got, err := newClient(ts.URL).FetchHotels(context.Background(), "Goa", 10000)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Sea Breeze Resort", got[0].Name)
	assert.Equal(t, 2400, got[0].Price)
	assert.Equal(t, 4.5, got[0].Rating) // printed rating wins

	assert.Equal(t, "Backpacker Nest", got[1].Name)
	assert.Equal(t, 900, got[1].Price) // price found in whole-card text
	assert.GreaterOrEqual(t, got[1].Rating, 3.5)
	assert.LessOrEqual(t, got[1].Rating, 4.8)

	for _, h := range got {
		assert.LessOrEqual(t, float64(h.Price), 5000.0)
	}
}

func TestFetchHotels_FallbackWhenNoneQualify(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(hotelsHTML))
	}))
	defer ts.Close()

	// ceiling 400: every scraped card is priced out -> fixed fallback trio
	got, err := newClient(ts.URL).FetchHotels(context.Background(), "Goa", 800)
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackHotels(), got)
}

func TestFetchHotels_NetworkErrorSurfaces(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused

	_, err := newClient(ts.URL).FetchHotels(context.Background(), "Goa", 10000)
	assert.Error(t, err)
}
