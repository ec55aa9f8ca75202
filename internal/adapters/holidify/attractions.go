package holidify

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Leading "12. " style ordinals on attraction headings.
var ordinalRe = regexp.MustCompile(`^\d+\.\s*`)

// FetchAttractions scrapes the sightseeing page and returns the card heading
// texts in document order. Ordinal prefixes are stripped and entries of two
// characters or fewer are discarded.
func (c *Client) FetchAttractions(ctx context.Context, destination string) ([]string, error) {
	url := fmt.Sprintf("%s/places/%s/sightseeing-and-things-to-do.html", c.base, Slug(destination))
	doc, err := c.fetchDoc(ctx, "attractions", url)
	if err != nil {
		return nil, err
	}

	var out []string
	doc.Find("h3.card-heading, h2.card-heading").Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(ordinalRe.ReplaceAllString(strings.TrimSpace(s.Text()), ""))
		if len(name) > 2 {
			out = append(out, name)
		}
	})
	return out, nil
}
