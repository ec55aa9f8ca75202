package app

import "strings"

// categoryKeywords backs the attraction-type filter on the plan form.
var categoryKeywords = map[string][]string{
	"historical": {"fort", "palace", "temple", "monument", "heritage", "gate", "tomb"},
	"fun":        {"beach", "park", "zoo", "amusement", "island", "water", "lake"},
	"museum":     {"museum", "gallery", "memorial", "exhibition", "centre", "art"},
	"nature":     {"hill", "mountain", "valley", "garden", "wildlife", "forest", "sanctuary"},
}

// FilterAttractions keeps attractions whose text contains, case-insensitively,
// any keyword of the selected categories. An empty selection or one containing
// "all" returns the input unchanged. Input order is preserved; the result may
// be empty and callers must substitute their own default.
func FilterAttractions(attractions []string, preferences []string) []string {
	if len(preferences) == 0 {
		return attractions
	}
	for _, p := range preferences {
		if p == "all" {
			return attractions
		}
	}

	seen := map[string]bool{}
	var keywords []string
	for _, p := range preferences {
		for _, kw := range categoryKeywords[p] {
			if !seen[kw] {
				seen[kw] = true
				keywords = append(keywords, kw)
			}
		}
	}

	var out []string
	for _, a := range attractions {
		low := strings.ToLower(a)
		for _, kw := range keywords {
			if strings.Contains(low, kw) {
				out = append(out, a)
				break
			}
		}
	}
	return out
}
