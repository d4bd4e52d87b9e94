// Package aspect defines the catalog of recognized aspects and detects
// pairwise aspect edges between chart placements.
package aspect

import (
	"fmt"
	"math"
)

// Category classifies an aspect as shape-forming (major) or minor.
type Category string

const (
	Major Category = "major"
	Minor Category = "minor"
)

// Canonical aspect names used by the shape rules.
const (
	Conjunction  = "Conjunction"
	SemiSextile  = "Semi-sextile"
	SemiSquare   = "Semi-square"
	Septile      = "Septile"
	Sextile      = "Sextile"
	Quintile     = "Quintile"
	Square       = "Square"
	Biseptile    = "Biseptile"
	Trine        = "Trine"
	Sesquisquare = "Sesquisquare"
	Biquintile   = "Biquintile"
	Quincunx     = "Quincunx"
	Triseptile   = "Triseptile"
	Opposition   = "Opposition"
)

// Septile-family angles, rounded to the arc minute.
const (
	septileAngle    = 51 + 26.0/60
	biseptileAngle  = 102 + 52.0/60
	triseptileAngle = 154 + 17.0/60
)

// Definition describes one recognized aspect. Color and Style are
// rendering hints carried through to the report; the engine itself only
// reads Angle, Orb and Category.
type Definition struct {
	Name     string   `yaml:"name" json:"name"`
	Angle    float64  `yaml:"angle" json:"angle"`
	Orb      float64  `yaml:"orb" json:"orb"`
	Category Category `yaml:"category" json:"category"`
	Glyph    string   `yaml:"glyph,omitempty" json:"glyph,omitempty"`
	Color    string   `yaml:"color,omitempty" json:"color,omitempty"`
	Style    string   `yaml:"style,omitempty" json:"style,omitempty"`
}

// Catalog is an ordered table of aspect definitions. Read-only once built.
type Catalog struct {
	defs []Definition
}

// defaultDefs is the built-in table. Angles and orbs follow traditional
// usage; the major set is the one the shape rules draw from.
var defaultDefs = []Definition{
	{Name: Conjunction, Angle: 0, Orb: 5, Category: Major, Glyph: "☌", Color: "#888888", Style: "solid"},
	{Name: SemiSextile, Angle: 30, Orb: 2, Category: Minor, Glyph: "⚺", Color: "gray", Style: "solid"},
	{Name: SemiSquare, Angle: 45, Orb: 2, Category: Minor, Glyph: "∠", Color: "gray", Style: "solid"},
	{Name: Septile, Angle: septileAngle, Orb: 2, Category: Minor, Color: "gray", Style: "solid"},
	{Name: Sextile, Angle: 60, Orb: 3, Category: Major, Glyph: "⚹", Color: "purple", Style: "solid"},
	{Name: Quintile, Angle: 72, Orb: 2, Category: Minor, Color: "gray", Style: "solid"},
	{Name: Square, Angle: 90, Orb: 3, Category: Major, Glyph: "□", Color: "red", Style: "solid"},
	{Name: Biseptile, Angle: biseptileAngle, Orb: 2, Category: Minor, Color: "gray", Style: "solid"},
	{Name: Trine, Angle: 120, Orb: 3, Category: Major, Glyph: "△", Color: "blue", Style: "solid"},
	{Name: Sesquisquare, Angle: 135, Orb: 2, Category: Major, Glyph: "⚼", Color: "orange", Style: "dotted"},
	{Name: Biquintile, Angle: 144, Orb: 2, Category: Minor, Color: "gray", Style: "solid"},
	{Name: Quincunx, Angle: 150, Orb: 3, Category: Major, Glyph: "⚻", Color: "green", Style: "dotted"},
	{Name: Triseptile, Angle: triseptileAngle, Orb: 2, Category: Minor, Color: "gray", Style: "solid"},
	{Name: Opposition, Angle: 180, Orb: 3, Category: Major, Glyph: "☍", Color: "red", Style: "solid"},
}

// DefaultCatalog returns the built-in aspect table.
func DefaultCatalog() *Catalog {
	defs := make([]Definition, len(defaultDefs))
	copy(defs, defaultDefs)
	return &Catalog{defs: defs}
}

// NewCatalog builds a catalog from a definition list, validating each entry.
func NewCatalog(defs []Definition) (*Catalog, error) {
	seen := make(map[string]bool)
	for i, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("definition %d: name required", i)
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("definition %d (%s): duplicate name", i, d.Name)
		}
		seen[d.Name] = true
		if d.Angle < 0 || d.Angle > 180 {
			return nil, fmt.Errorf("definition %d (%s): angle %g outside [0,180]", i, d.Name, d.Angle)
		}
		if d.Orb <= 0 {
			return nil, fmt.Errorf("definition %d (%s): orb must be positive", i, d.Name)
		}
		if d.Category != Major && d.Category != Minor {
			return nil, fmt.Errorf("definition %d (%s): category must be major or minor", i, d.Name)
		}
	}
	copied := make([]Definition, len(defs))
	copy(copied, defs)
	return &Catalog{defs: copied}, nil
}

// Definitions returns the catalog entries in table order.
func (c *Catalog) Definitions() []Definition {
	defs := make([]Definition, len(c.defs))
	copy(defs, c.defs)
	return defs
}

// ByName returns the definition with the given name.
func (c *Catalog) ByName(name string) (Definition, bool) {
	for _, d := range c.defs {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Lookup returns the definition matching a circular separation in [0,180].
// When several orbs overlap the closest exact angle wins; equal deviations
// prefer major over minor, then the smaller angle. Absence of a match is
// a normal false result.
func (c *Catalog) Lookup(sep float64) (Definition, bool) {
	var best Definition
	bestDelta := math.MaxFloat64
	found := false

	for _, d := range c.defs {
		delta := math.Abs(sep - d.Angle)
		if delta > d.Orb {
			continue
		}
		if !found || beats(d, delta, best, bestDelta) {
			best, bestDelta, found = d, delta, true
		}
	}

	return best, found
}

// beats reports whether candidate (d, delta) outranks the current best.
func beats(d Definition, delta float64, best Definition, bestDelta float64) bool {
	if delta != bestDelta {
		return delta < bestDelta
	}
	if d.Category != best.Category {
		return d.Category == Major
	}
	return d.Angle < best.Angle
}

// Separation returns the smallest arc between two longitudes, in [0,180].
func Separation(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
