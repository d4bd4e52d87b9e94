// Package interp renders one-line readings for detected patterns and
// aspect edges, plus the chart glyphs the text output decorates bodies
// with. All output is deterministic text built from the input values.
package interp

import (
	"fmt"
	"math"
	"strings"

	"aspectarian/aspect"
	"aspectarian/pattern"
)

var glyphs = map[string]string{
	"Sun":     "☉",
	"Moon":    "☽",
	"Mercury": "☿",
	"Venus":   "♀",
	"Mars":    "♂",
	"Jupiter": "♃",
	"Saturn":  "♄",
	"Uranus":  "♅",
	"Neptune": "♆",
	"Pluto":   "♇",
	"Chiron":  "⚷",
	"Ceres":   "⚳",
	"Pallas":  "⚴",
	"Juno":    "⚵",
	"Vesta":   "⚶",
	"Psyche":  "Ψ",
	"Eros":    "♡",

	"North Node":               "☊",
	"South Node":               "☋",
	"Part of Fortune":          "⊗",
	"Black Moon Lilith (Mean)": "⚸",
	"Vertex":                   "☩",

	"Ascendant":  "AC",
	"Descendant": "DC",
	"Midheaven":  "MC",
	"Imum Coeli": "IC",
}

// Glyph returns the chart glyph for a known body, or "" when the body
// has none.
func Glyph(body string) string {
	return glyphs[body]
}

// Label returns the body name prefixed with its glyph when one exists.
func Label(body string) string {
	if g := Glyph(body); g != "" {
		return g + " " + body
	}
	return body
}

// Describe returns a one-sentence reading of a classified pattern.
func Describe(p pattern.Pattern) string {
	members := joinNames(p.Members)
	base := joinNames(exclude(p.Members, p.Apex))

	switch p.Kind {
	case pattern.Envelope:
		return fmt.Sprintf("Envelope: %s weave two interlocking cradles around %s.", members, p.Apex)
	case pattern.GrandCross:
		return fmt.Sprintf("Grand Cross: %s lock into a four-way cross of oppositions and squares.", members)
	case pattern.Kite:
		return fmt.Sprintf("Kite: a grand trine among %s gains direction through %s.", base, p.Apex)
	case pattern.MysticRectangle:
		return fmt.Sprintf("Mystic Rectangle: %s balance two oppositions with harmonious cross-links.", members)
	case pattern.Cradle:
		return fmt.Sprintf("Cradle: %s rock an opposition inside a chain of sextiles.", members)
	case pattern.GrandTrine:
		return fmt.Sprintf("Grand Trine: %s flow together in an easy, self-sustaining triangle.", members)
	case pattern.TSquare:
		return fmt.Sprintf("T-Square: %s pull against each other, with the tension funneled through %s.", base, p.Apex)
	case pattern.Wedge:
		return fmt.Sprintf("Wedge: %s bridge an opposition through %s.", members, p.Apex)
	case pattern.SextileWedge:
		return fmt.Sprintf("Sextile Wedge: %s meet in two sextiles at %s over a trine base.", members, p.Apex)
	case pattern.Yod:
		return fmt.Sprintf("Yod: %s direct a finger of adjustment at %s.", base, p.Apex)
	case pattern.WideYod:
		return fmt.Sprintf("Wide Yod: %s aim paired sesquisquares at %s.", base, p.Apex)
	case pattern.LightningBolt:
		return fmt.Sprintf("Lightning Bolt: %s zigzag between squares and trines across a shared quincunx.", members)
	case pattern.Other:
		return fmt.Sprintf("%s form a square-trine-quincunx triangle with no traditional name.", members)
	}
	return fmt.Sprintf("%s: %s.", p.Kind, members)
}

// DescribeEdge returns a one-line reading of an aspect edge with its orb
// and, when known, whether the aspect is applying or separating.
func DescribeEdge(e aspect.Edge) string {
	connector := e.Name
	if e.Name == aspect.Opposition {
		connector = "Opposite"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s (orb %.2f°", e.A, connector, e.B, math.Abs(e.Deviation))
	if e.Motion != "" {
		fmt.Fprintf(&b, ", %s", strings.ToLower(string(e.Motion)))
	}
	b.WriteString(")")
	return b.String()
}

// joinNames joins body names as "A, B and C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

func exclude(names []string, drop string) []string {
	if drop == "" {
		return names
	}
	var out []string
	for _, n := range names {
		if n != drop {
			out = append(out, n)
		}
	}
	return out
}
