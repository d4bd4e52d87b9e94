// Package graph builds the undirected relation graph of bodies joined by
// aspect edges and extracts connected components.
package graph

import (
	"fmt"

	"aspectarian/aspect"
)

// Graph is an undirected graph over body names. Nodes without edges are
// kept; they surface as singleton components.
type Graph struct {
	nodes []string
	adj   map[string][]string
	edges []aspect.Edge
}

// Component is a maximal connected node set: names in discovery order
// plus the induced edges in input order.
type Component struct {
	Nodes []string      `json:"nodes"`
	Edges []aspect.Edge `json:"edges,omitempty"`
}

// Contains reports whether the component holds the named node.
func (c Component) Contains(name string) bool {
	for _, n := range c.Nodes {
		if n == name {
			return true
		}
	}
	return false
}

// Build constructs a graph from a node list and an edge list. Every
// listed node becomes a graph node even with no edges. An edge whose
// endpoint is missing from the node list is an input error.
func Build(nodes []string, edges []aspect.Edge) (*Graph, error) {
	g := &Graph{
		nodes: append([]string(nil), nodes...),
		adj:   make(map[string][]string),
	}

	present := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		present[n] = true
	}

	for _, e := range edges {
		if !present[e.A] || !present[e.B] {
			return nil, fmt.Errorf("edge %s-%s (%s): endpoint not in node set", e.A, e.B, e.Name)
		}
		g.addNeighbor(e.A, e.B)
		g.addNeighbor(e.B, e.A)
		g.edges = append(g.edges, e)
	}

	return g, nil
}

// Nodes returns the node names in input order.
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.nodes...)
}

// Edges returns the edges in input order.
func (g *Graph) Edges() []aspect.Edge {
	return append([]aspect.Edge(nil), g.edges...)
}

// Neighbors returns a node's neighbors in edge-insertion order.
func (g *Graph) Neighbors(name string) []string {
	return append([]string(nil), g.adj[name]...)
}

// Components extracts the connected components by breadth-first
// traversal. Nodes are visited in input order and neighbors in
// edge-insertion order, so the result is stable for identical input.
// Every node lands in exactly one component; isolated nodes become
// singleton components.
func (g *Graph) Components() []Component {
	visited := make(map[string]bool)
	var comps []Component

	for _, start := range g.nodes {
		if visited[start] {
			continue
		}
		visited[start] = true

		members := []string{start}
		queue := []string{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range g.adj[cur] {
				if visited[nb] {
					continue
				}
				visited[nb] = true
				members = append(members, nb)
				queue = append(queue, nb)
			}
		}

		comps = append(comps, Component{
			Nodes: members,
			Edges: g.induced(members),
		})
	}

	return comps
}

// addNeighbor appends b to a's neighbor list once.
func (g *Graph) addNeighbor(a, b string) {
	for _, n := range g.adj[a] {
		if n == b {
			return
		}
	}
	g.adj[a] = append(g.adj[a], b)
}

// induced returns the edges with both endpoints in the member set,
// preserving input order.
func (g *Graph) induced(members []string) []aspect.Edge {
	in := make(map[string]bool, len(members))
	for _, m := range members {
		in[m] = true
	}

	var out []aspect.Edge
	for _, e := range g.edges {
		if in[e.A] && in[e.B] {
			out = append(out, e)
		}
	}
	return out
}
