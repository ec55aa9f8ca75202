package holidify

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tripbuddy/internal/domain"
)

const maxHotels = 10

var (
	priceRe  = regexp.MustCompile(`₹\s?([\d,]+)`)
	ratingRe = regexp.MustCompile(`(\d\.\d)`)
)

// FetchHotels scrapes listing cards and keeps those priced at or under the
// per-day ceiling (half the total budget, regardless of trip length). Cards
// without a name or a parsable ₹ price are skipped; a card without a printed
// rating gets one drawn from [3.5, 4.8]. At most 10 hotels are returned, or
// the fixed fallback trio when a fetched page yields none under the ceiling.
func (c *Client) FetchHotels(ctx context.Context, destination string, budget float64) ([]domain.Hotel, error) {
	url := fmt.Sprintf("%s/places/%s/hotels-where-to-stay.html", c.base, Slug(destination))
	doc, err := c.fetchDoc(ctx, "hotels", url)
	if err != nil {
		return nil, err
	}

	ceiling := budget * 0.50
	var valid []domain.Hotel

	doc.Find("div.card, div.hotelCard, div.card-content").Each(func(_ int, card *goquery.Selection) {
		if len(valid) >= maxHotels {
			return
		}
		name := strings.TrimSpace(card.Find("h3.card-heading, h2.card-heading, a.card-heading").First().Text())
		if name == "" {
			return
		}

		// Price lives in a dedicated element on most cards; fall back to
		// scanning the whole card text.
		priceText := strings.TrimSpace(card.Find("div.price, span[data-testid='price'], span.price, div.hotelPrice").First().Text())
		if priceText == "" {
			priceText = cardText(card)
		}
		m := priceRe.FindStringSubmatch(priceText)
		if m == nil {
			return // no visible price, skip
		}
		price, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			return
		}

		rating := c.rating(card.Text())

		if float64(price) <= ceiling {
			valid = append(valid, domain.Hotel{Name: name, Price: price, Rating: rating})
		}
	})

	if len(valid) == 0 {
		return domain.FallbackHotels(), nil
	}
	return valid, nil
}

// rating reads a printed "x.y" rating from card text, or synthesizes one.
func (c *Client) rating(text string) float64 {
	if m := ratingRe.FindStringSubmatch(text); m != nil {
		if r, err := strconv.ParseFloat(m[1], 64); err == nil {
			return r
		}
	}
	return math.Round((3.5+c.rng.Float64()*1.3)*10) / 10
}

// cardText flattens a card to space-joined text, like the listing scrapers
// do before regex matching.
func cardText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
