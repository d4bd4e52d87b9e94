// Package report assembles classifier output into the deterministic
// structure handed to rendering and interpretation layers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"aspectarian/aspect"
	"aspectarian/chart"
	"aspectarian/graph"
	"aspectarian/pattern"
)

// MinorLink is a minor-category aspect edge annotated with the surviving
// patterns each endpoint belongs to, by report index. An empty list marks
// an endpoint outside every pattern.
type MinorLink struct {
	Edge      aspect.Edge `json:"edge"`
	APatterns []int       `json:"a_patterns,omitempty"`
	BPatterns []int       `json:"b_patterns,omitempty"`
}

// Report is the assembled detection result for one chart. Identical
// input charts produce byte-identical JSON encodings.
type Report struct {
	ChartKey   string            `json:"chart_key"`
	Bodies     []string          `json:"bodies"`
	Components [][]string        `json:"components"`
	Patterns   []pattern.Pattern `json:"patterns"`
	Residuals  []aspect.Edge     `json:"residuals,omitempty"`
	MinorLinks []MinorLink       `json:"minor_links,omitempty"`
	Singletons []string          `json:"singletons,omitempty"`
	Groups     [][]int           `json:"groups,omitempty"`
}

// Assemble orders the classifier output and attributes minor links,
// singletons and combo groups. Patterns are ordered by component index,
// then kind priority, then discovery order; residuals keep component
// order. The chart must be the filtered chart the pipeline ran on.
func Assemble(ch *chart.Chart, comps []graph.Component, res pattern.Result, minors []aspect.Edge) (*Report, error) {
	key, err := ch.Key()
	if err != nil {
		return nil, fmt.Errorf("fingerprinting chart: %w", err)
	}

	r := &Report{
		ChartKey:  key,
		Bodies:    ch.Names(),
		Patterns:  orderPatterns(res.Patterns),
		Residuals: append([]aspect.Edge(nil), res.Residuals...),
	}
	for _, c := range comps {
		r.Components = append(r.Components, append([]string(nil), c.Nodes...))
	}

	byBody := make(map[string][]int)
	for i, p := range r.Patterns {
		for _, m := range p.Members {
			byBody[m] = append(byBody[m], i)
		}
	}

	for _, e := range minors {
		r.MinorLinks = append(r.MinorLinks, MinorLink{
			Edge:      e,
			APatterns: append([]int(nil), byBody[e.A]...),
			BPatterns: append([]int(nil), byBody[e.B]...),
		})
	}

	for _, name := range r.Bodies {
		if len(byBody[name]) == 0 {
			r.Singletons = append(r.Singletons, name)
		}
	}

	r.Groups = comboGroups(len(r.Patterns), r.MinorLinks)
	return r, nil
}

// ByKind returns the patterns of one kind in report order.
func (r *Report) ByKind(kind pattern.Kind) []pattern.Pattern {
	var out []pattern.Pattern
	for _, p := range r.Patterns {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// ForBody returns the patterns the named body participates in, in
// report order.
func (r *Report) ForBody(name string) []pattern.Pattern {
	var out []pattern.Pattern
	for _, p := range r.Patterns {
		if p.HasMember(name) {
			out = append(out, p)
		}
	}
	return out
}

// WriteJSON writes the indented JSON encoding of the report.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func orderPatterns(ps []pattern.Pattern) []pattern.Pattern {
	out := append([]pattern.Pattern(nil), ps...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Component != out[j].Component {
			return out[i].Component < out[j].Component
		}
		return out[i].Kind.Rank() < out[j].Kind.Rank()
	})
	return out
}

// comboGroups merges patterns transitively joined by minor links into
// sorted index groups. Patterns with no minor link to another pattern
// form no group.
func comboGroups(n int, links []MinorLink) [][]int {
	adj := make(map[int][]int)
	for _, l := range links {
		for _, a := range l.APatterns {
			for _, b := range l.BPatterns {
				if a == b {
					continue
				}
				adj[a] = append(adj[a], b)
				adj[b] = append(adj[b], a)
			}
		}
	}

	visited := make([]bool, n)
	var groups [][]int
	for i := 0; i < n; i++ {
		if visited[i] || len(adj[i]) == 0 {
			continue
		}

		var group []int
		queue := []int{i}
		visited[i] = true
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			group = append(group, x)
			for _, nb := range adj[x] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}

		sort.Ints(group)
		groups = append(groups, group)
	}
	return groups
}
