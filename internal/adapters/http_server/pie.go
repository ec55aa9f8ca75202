package httpserver

import (
	"fmt"
	"math"
)

// pieSlice is one wedge of the expense chart, precomputed so the template
// only has to stamp out <path> elements.
type pieSlice struct {
	Path  string
	Color string
	Label string
	Pct   float64
}

var sliceColors = []string{"#4e79a7", "#f28e2b", "#59a14f", "#e15759"}

// pieSlices converts the cost rows into SVG wedge paths on a 200x200 canvas.
// Zero-cost rows are kept in the legend with an empty path so the table and
// chart always show the same four categories.
func pieSlices(rows []costRow) []pieSlice {
	var total float64
	for _, r := range rows {
		total += r.Cost
	}
	out := make([]pieSlice, 0, len(rows))
	angle := -90.0 // start at 12 o'clock
	for i, r := range rows {
		s := pieSlice{Color: sliceColors[i%len(sliceColors)], Label: r.Category}
		if total > 0 && r.Cost > 0 {
			s.Pct = r.Cost / total * 100
			sweep := r.Cost / total * 360
			if sweep >= 360 {
				sweep = 359.99 // a full circle collapses an SVG arc
			}
			s.Path = wedge(angle, angle+sweep)
			angle += sweep
		}
		out = append(out, s)
	}
	return out
}

func wedge(from, to float64) string {
	const cx, cy, r = 100.0, 100.0, 90.0
	x1, y1 := point(cx, cy, r, from)
	x2, y2 := point(cx, cy, r, to)
	large := 0
	if to-from > 180 {
		large = 1
	}
	return fmt.Sprintf("M%.1f,%.1f L%.1f,%.1f A%.1f,%.1f 0 %d 1 %.1f,%.1f Z",
		cx, cy, x1, y1, r, r, large, x2, y2)
}

func point(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}
