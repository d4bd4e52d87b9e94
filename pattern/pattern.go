// Package pattern recognizes named multi-body shapes in the aspect-edge
// subgraph of each connected component.
package pattern

import "aspectarian/aspect"

// Kind names a recognized shape.
type Kind string

const (
	Envelope        Kind = "Envelope"
	GrandCross      Kind = "Grand Cross"
	Kite            Kind = "Kite"
	MysticRectangle Kind = "Mystic Rectangle"
	Cradle          Kind = "Cradle"
	GrandTrine      Kind = "Grand Trine"
	TSquare         Kind = "T-Square"
	Wedge           Kind = "Wedge"
	SextileWedge    Kind = "Sextile Wedge"
	Yod             Kind = "Yod"
	WideYod         Kind = "Wide Yod"
	LightningBolt   Kind = "Lightning Bolt"
	Other           Kind = "Other"
)

// kindRank orders kinds for suppression and reporting, strongest first.
// Larger composite shapes outrank the sub-shapes they consume.
var kindRank = map[Kind]int{
	Envelope:        0,
	GrandCross:      1,
	Kite:            2,
	MysticRectangle: 3,
	Cradle:          4,
	GrandTrine:      5,
	TSquare:         6,
	Wedge:           7,
	SextileWedge:    8,
	Yod:             9,
	WideYod:         10,
	LightningBolt:   11,
	Other:           12,
}

// Rank returns the kind's reporting priority; lower sorts first.
func (k Kind) Rank() int {
	r, ok := kindRank[k]
	if !ok {
		return len(kindRank)
	}
	return r
}

// Pattern is one classified shape. Members are body names with
// conjunction clusters expanded; Edges are the detected aspect edges the
// shape is built from, including any intra-cluster Conjunctions absorbed
// when a cluster joined the shape. Component is the index of the owning
// connected component.
type Pattern struct {
	Kind      Kind          `json:"kind"`
	Members   []string      `json:"members"`
	Apex      string        `json:"apex,omitempty"`
	Edges     []aspect.Edge `json:"edges"`
	Component int           `json:"component"`
}

// HasMember reports whether the named body belongs to the pattern.
func (p Pattern) HasMember(name string) bool {
	for _, m := range p.Members {
		if m == name {
			return true
		}
	}
	return false
}

// Options control classification.
type Options struct {
	// MergeConjunctions collapses bodies chained within the Conjunction
	// orb into one unit before shape rules run.
	MergeConjunctions bool
}

// DefaultOptions returns the standard classification options.
func DefaultOptions() Options {
	return Options{MergeConjunctions: true}
}

// Result is the classifier output: surviving patterns in
// component-then-priority order, and the major edges of each component
// that no surviving pattern absorbed.
type Result struct {
	Patterns  []Pattern
	Residuals []aspect.Edge
}
