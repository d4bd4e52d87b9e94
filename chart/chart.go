// Package chart models the input boundary: named placements with
// ecliptic longitudes, optional daily motion and optional house cusps.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Placement is one body position supplied by the ephemeris layer.
// Speed is degrees per day; nil when the ephemeris did not provide one.
type Placement struct {
	Name      string   `json:"name" yaml:"name" validate:"required"`
	Longitude float64  `json:"longitude" yaml:"longitude" validate:"gte=0,lt=360"`
	Speed     *float64 `json:"speed,omitempty" yaml:"speed,omitempty"`
}

// Chart is a validated set of placements plus optional house cusps.
// Placement order is preserved and becomes the canonical body ordering
// for detection and reporting. The engine only reads charts.
type Chart struct {
	Placements []Placement `json:"placements" yaml:"placements"`
	Cusps      []float64   `json:"cusps,omitempty" yaml:"cusps,omitempty"`
}

var validate = validator.New()

// New builds a validated chart.
func New(placements []Placement, cusps []float64) (*Chart, error) {
	c := &Chart{Placements: placements, Cusps: cusps}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chart: %w", err)
	}
	return c, nil
}

// Validate checks every placement and the cusp list. Malformed input is
// rejected rather than normalized: a silently wrapped longitude would
// produce a wrong chart.
func (c *Chart) Validate() error {
	seen := make(map[string]bool)

	for i, p := range c.Placements {
		if math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) {
			return fmt.Errorf("placement %d (%s): longitude must be a finite degree value", i, p.Name)
		}
		if err := validateStruct(p); err != nil {
			return fmt.Errorf("placement %d (%s): %w", i, p.Name, err)
		}
		if p.Speed != nil && (math.IsNaN(*p.Speed) || math.IsInf(*p.Speed, 0)) {
			return fmt.Errorf("placement %d (%s): speed must be a finite degree value", i, p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("placement %d (%s): duplicate body name", i, p.Name)
		}
		seen[p.Name] = true
	}

	if len(c.Cusps) != 0 && len(c.Cusps) != 12 {
		return fmt.Errorf("cusps: expected 12 values, got %d", len(c.Cusps))
	}
	for i, cusp := range c.Cusps {
		if math.IsNaN(cusp) || math.IsInf(cusp, 0) || cusp < 0 || cusp >= 360 {
			return fmt.Errorf("cusp %d: longitude %v outside [0,360)", i+1, cusp)
		}
	}

	return nil
}

// Names returns the body names in chart order.
func (c *Chart) Names() []string {
	names := make([]string, len(c.Placements))
	for i, p := range c.Placements {
		names[i] = p.Name
	}
	return names
}

// PlacementByName returns the placement for a body name.
func (c *Chart) PlacementByName(name string) (Placement, bool) {
	for _, p := range c.Placements {
		if p.Name == name {
			return p, true
		}
	}
	return Placement{}, false
}

// Longitude returns the longitude for a body name.
func (c *Chart) Longitude(name string) (float64, bool) {
	p, ok := c.PlacementByName(name)
	return p.Longitude, ok
}

// Filter returns a chart keeping only placements the keep func accepts,
// in the original order. Cusps are carried through unchanged.
func (c *Chart) Filter(keep func(name string) bool) *Chart {
	var kept []Placement
	for _, p := range c.Placements {
		if keep(p.Name) {
			kept = append(kept, p)
		}
	}
	return &Chart{Placements: kept, Cusps: c.Cusps}
}

// validateStruct runs tag validation and flattens the result into one
// readable error.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		var msgs []string
		for _, e := range verrs {
			msgs = append(msgs, formatFieldError(e))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return err
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lt":
		return fmt.Sprintf("%s must be below %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
