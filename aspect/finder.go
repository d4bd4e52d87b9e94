package aspect

import (
	"fmt"
	"math"

	"aspectarian/chart"
)

// Motion describes whether a detected aspect is tightening or loosening
// given the bodies' daily motion.
type Motion string

const (
	Applying   Motion = "Applying"
	Separating Motion = "Separating"
)

// Edge is a detected aspect between two placements. A comes before B in
// chart order. Deviation is signed: separation minus the exact angle.
// Motion is empty when either placement lacks a speed.
type Edge struct {
	A          string   `json:"a"`
	B          string   `json:"b"`
	Name       string   `json:"aspect"`
	Category   Category `json:"category"`
	Separation float64  `json:"separation"`
	Deviation  float64  `json:"deviation"`
	Motion     Motion   `json:"motion,omitempty"`
}

// Joins reports whether the edge connects x and y in either order.
func (e Edge) Joins(x, y string) bool {
	return (e.A == x && e.B == y) || (e.A == y && e.B == x)
}

// Find computes all pairwise aspects in a chart. The scan is a total
// O(n²) pass over unordered pairs in chart order, so the edge list is
// stable for identical input. At most one edge is emitted per pair: the
// catalog's closest match. The chart is validated first; malformed input
// fails here rather than producing a wrong result.
func Find(ch *chart.Chart, cat *Catalog) ([]Edge, error) {
	if err := ch.Validate(); err != nil {
		return nil, fmt.Errorf("validating chart: %w", err)
	}

	pls := ch.Placements
	var edges []Edge

	for i := 0; i < len(pls); i++ {
		for j := i + 1; j < len(pls); j++ {
			a, b := pls[i], pls[j]
			sep := Separation(a.Longitude, b.Longitude)

			def, ok := cat.Lookup(sep)
			if !ok {
				continue
			}

			e := Edge{
				A:          a.Name,
				B:          b.Name,
				Name:       def.Name,
				Category:   def.Category,
				Separation: sep,
				Deviation:  sep - def.Angle,
			}
			if a.Speed != nil && b.Speed != nil {
				e.Motion = motion(a, b, def.Angle, sep)
			}
			edges = append(edges, e)
		}
	}

	return edges, nil
}

// Majors returns the major-category edges, preserving order.
func Majors(edges []Edge) []Edge {
	var out []Edge
	for _, e := range edges {
		if e.Category == Major {
			out = append(out, e)
		}
	}
	return out
}

// Minors returns the minor-category edges, preserving order.
func Minors(edges []Edge) []Edge {
	var out []Edge
	for _, e := range edges {
		if e.Category == Minor {
			out = append(out, e)
		}
	}
	return out
}

// motion looks one day ahead using the current speeds and reports whether
// the deviation from exact shrinks (applying) or grows (separating).
func motion(a, b chart.Placement, target, sep float64) Motion {
	nextA := norm360(a.Longitude + *a.Speed)
	nextB := norm360(b.Longitude + *b.Speed)
	next := Separation(nextA, nextB)

	if math.Abs(next-target) < math.Abs(sep-target) {
		return Applying
	}
	return Separating
}

// norm360 wraps a longitude into [0,360).
func norm360(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
