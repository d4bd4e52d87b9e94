// Package aspectarian detects aspect patterns in astrological charts.
//
// Given a chart of bodies with ecliptic longitudes, the pipeline finds
// every pairwise aspect within orb, builds a relation graph over the
// major aspects, extracts connected components, classifies named
// multi-body shapes (grand trines, t-squares, yods, kites and the rest)
// and assembles a deterministic report. Ephemeris computation, rendering
// and persistence live outside this module; callers supply longitudes
// and consume the report.
//
//	ch, err := chart.New(placements, nil)
//	...
//	rep, err := aspectarian.Compute(ch)
package aspectarian

import (
	"fmt"

	"aspectarian/aspect"
	"aspectarian/bodymatch"
	"aspectarian/chart"
	"aspectarian/graph"
	"aspectarian/pattern"
	"aspectarian/report"
)

// Option adjusts one pipeline setting.
type Option func(*config)

type config struct {
	catalog *aspect.Catalog
	rules   bodymatch.Rules
	cls     pattern.Options
}

// WithCatalog substitutes the aspect catalog used for detection.
func WithCatalog(cat *aspect.Catalog) Option {
	return func(c *config) {
		c.catalog = cat
	}
}

// WithBodyRules substitutes the include/exclude globs selecting which
// placements participate in detection.
func WithBodyRules(rules bodymatch.Rules) Option {
	return func(c *config) {
		c.rules = rules
	}
}

// WithoutConjunctionMerge classifies every body on its own instead of
// collapsing conjunction clusters first.
func WithoutConjunctionMerge() Option {
	return func(c *config) {
		c.cls.MergeConjunctions = false
	}
}

// Compute runs the full pipeline over a chart: body filtering, pairwise
// aspect detection, relation-graph components, pattern classification
// and report assembly. The report is deterministic for identical input.
func Compute(ch *chart.Chart, opts ...Option) (*report.Report, error) {
	cfg := applyOptions(opts)

	matcher := bodymatch.NewMatcher(cfg.rules)
	filtered := ch.Filter(matcher.Match)

	edges, err := aspect.Find(filtered, cfg.catalog)
	if err != nil {
		return nil, fmt.Errorf("finding aspects: %w", err)
	}

	g, err := graph.Build(filtered.Names(), aspect.Majors(edges))
	if err != nil {
		return nil, fmt.Errorf("building relation graph: %w", err)
	}
	comps := g.Components()

	res := pattern.Classify(comps, filtered, cfg.catalog, cfg.cls)

	rep, err := report.Assemble(filtered, comps, res, aspect.Minors(edges))
	if err != nil {
		return nil, fmt.Errorf("assembling report: %w", err)
	}
	return rep, nil
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		catalog: aspect.DefaultCatalog(),
		rules:   bodymatch.DefaultRules(),
		cls:     pattern.DefaultOptions(),
	}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}
