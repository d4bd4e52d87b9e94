package pattern

import (
	"sort"
	"strings"

	"aspectarian/aspect"
	"aspectarian/chart"
	"aspectarian/graph"
)

// Classify runs the shape rules over each component's edge subgraph and
// applies the precedence suppression policy. Patterns come back in
// component-then-priority order; Residuals are the component edges no
// surviving pattern absorbed. Components with fewer than three nodes
// never yield patterns, only residuals.
func Classify(comps []graph.Component, ch *chart.Chart, cat *aspect.Catalog, opts Options) Result {
	orb := conjunctionOrb(cat)

	var res Result
	for i, comp := range comps {
		s := newScanner(comp, i, ch, orb, opts)
		patterns, residual := s.run()
		res.Patterns = append(res.Patterns, patterns...)
		res.Residuals = append(res.Residuals, residual...)
	}
	return res
}

func conjunctionOrb(cat *aspect.Catalog) float64 {
	if def, ok := cat.ByName(aspect.Conjunction); ok {
		return def.Orb
	}
	return 0
}

// edgeSpec names one required edge of a shape: a representative pair
// plus the aspect joining it.
type edgeSpec struct {
	a, b, name string
}

// candidate is a detected shape instance before suppression.
type candidate struct {
	kind     Kind
	nodes    []string // cluster representatives in shape order
	apex     string
	specs    []edgeSpec
	suppress map[Kind][]string // member-set keys this shape consumes
	order    int
}

// otherInfo records the role split of an Other shape for the lightning
// bolt merge: q is the Square endpoint that sits on the Quincunx edge,
// extra the one off it.
type otherInfo struct {
	key   string
	qPair string
	q     string
	extra string
}

// scanner classifies one component.
type scanner struct {
	comp    graph.Component
	compIdx int
	cl      clustering
	pairs   map[string]map[string][]aspect.Edge
	intra   map[string][]aspect.Edge
	cands   []candidate
	seen    map[string]bool
}

func newScanner(comp graph.Component, compIdx int, ch *chart.Chart, conjOrb float64, opts Options) *scanner {
	var cl clustering
	if opts.MergeConjunctions {
		cl = clusterConjunctions(ch, comp.Nodes, conjOrb)
	} else {
		cl = trivialClustering(ch, comp.Nodes)
	}

	s := &scanner{
		comp:    comp,
		compIdx: compIdx,
		cl:      cl,
		pairs:   make(map[string]map[string][]aspect.Edge),
		intra:   make(map[string][]aspect.Edge),
		seen:    make(map[string]bool),
	}

	for _, e := range comp.Edges {
		ra, rb := cl.anchor[e.A], cl.anchor[e.B]
		if ra == rb {
			// Conjunction inside one cluster; absorbed when the cluster
			// joins a shape, residual otherwise.
			s.intra[ra] = append(s.intra[ra], e)
			continue
		}
		key := pairKey(ra, rb)
		if s.pairs[key] == nil {
			s.pairs[key] = make(map[string][]aspect.Edge)
		}
		s.pairs[key][e.Name] = append(s.pairs[key][e.Name], e)
	}

	return s
}

// has reports whether an edge with the given aspect joins two reps.
func (s *scanner) has(a, b, name string) bool {
	return len(s.pairs[pairKey(a, b)][name]) > 0
}

// raw returns the detected edges behind a rep pair and aspect.
func (s *scanner) raw(a, b, name string) []aspect.Edge {
	return s.pairs[pairKey(a, b)][name]
}

// add records a shape candidate once per (kind, member set).
func (s *scanner) add(kind Kind, nodes []string, apex string, specs []edgeSpec, suppress map[Kind][]string) bool {
	key := candKey(kind, nodes)
	if s.seen[key] {
		return false
	}
	s.seen[key] = true

	s.cands = append(s.cands, candidate{
		kind:     kind,
		nodes:    append([]string(nil), nodes...),
		apex:     apex,
		specs:    specs,
		suppress: suppress,
		order:    len(s.cands),
	})
	return true
}

// run detects, suppresses and assembles this component's patterns.
func (s *scanner) run() ([]Pattern, []aspect.Edge) {
	if len(s.cl.reps) >= 3 {
		s.findEnvelopes()
		s.findGrandCrosses()
		s.findKites()
		s.findMysticRectangles()
		s.findCradles()
		s.findGrandTrines()
		s.findTSquares()
		s.findWedges()
		s.findSextileWedges()
		s.findYods()
		s.findWideYods()
		s.findLightningBolts(s.findOthers())
	}

	kept := s.applySuppression()

	used := make(map[string]bool)
	var patterns []Pattern
	for _, c := range kept {
		p := s.assemble(c)
		for _, e := range p.Edges {
			used[edgeKey(e)] = true
		}
		patterns = append(patterns, p)
	}

	var residual []aspect.Edge
	for _, e := range s.comp.Edges {
		if !used[edgeKey(e)] {
			residual = append(residual, e)
		}
	}

	return patterns, residual
}

// applySuppression orders candidates strongest-first and drops every
// instance a surviving stronger shape consumes. Only survivors apply
// their consume sets, so a consumed composite no longer hides its own
// sub-shapes.
func (s *scanner) applySuppression() []candidate {
	ordered := append([]candidate(nil), s.cands...)
	sort.SliceStable(ordered, func(i, j int) bool {
		ri, rj := ordered[i].kind.Rank(), ordered[j].kind.Rank()
		if ri != rj {
			return ri < rj
		}
		return ordered[i].order < ordered[j].order
	})

	suppressed := make(map[string]bool)
	var kept []candidate
	for _, c := range ordered {
		if suppressed[candKey(c.kind, c.nodes)] {
			continue
		}
		kept = append(kept, c)
		for kind, keys := range c.suppress {
			for _, mk := range keys {
				suppressed[kindKey(kind, mk)] = true
			}
		}
	}
	return kept
}

// assemble expands clusters into the final pattern. Every raw edge
// behind a spec is listed, and intra-cluster Conjunctions ride along
// once their cluster joins the shape.
func (s *scanner) assemble(c candidate) Pattern {
	var members []string
	for _, n := range c.nodes {
		members = append(members, s.cl.group[n]...)
	}

	var edges []aspect.Edge
	have := make(map[string]bool)
	appendEdge := func(e aspect.Edge) {
		k := edgeKey(e)
		if have[k] {
			return
		}
		have[k] = true
		edges = append(edges, e)
	}

	for _, spec := range c.specs {
		for _, e := range s.raw(spec.a, spec.b, spec.name) {
			appendEdge(e)
		}
	}
	for _, n := range c.nodes {
		for _, e := range s.intra[n] {
			appendEdge(e)
		}
	}

	return Pattern{
		Kind:      c.kind,
		Members:   members,
		Apex:      c.apex,
		Edges:     edges,
		Component: s.compIdx,
	}
}

// findEnvelopes detects the five-body double cradle: a sextile chain
// a-b-c-d-e with oppositions a-d, b-e and trines a-e, b-d.
func (s *scanner) findEnvelopes() {
	R := s.cl.reps
	n := len(R)
	for i1 := 0; i1 < n-4; i1++ {
		for i2 := i1 + 1; i2 < n-3; i2++ {
			for i3 := i2 + 1; i3 < n-2; i3++ {
				for i4 := i3 + 1; i4 < n-1; i4++ {
					for i5 := i4 + 1; i5 < n; i5++ {
						s.tryEnvelope([]string{R[i1], R[i2], R[i3], R[i4], R[i5]})
					}
				}
			}
		}
	}
}

func (s *scanner) tryEnvelope(quint []string) {
	var opps [][2]string
	for x := 0; x < len(quint); x++ {
		for y := x + 1; y < len(quint); y++ {
			if s.has(quint[x], quint[y], aspect.Opposition) {
				opps = append(opps, [2]string{quint[x], quint[y]})
			}
		}
	}
	if len(opps) < 2 {
		return
	}

	for p1 := 0; p1 < len(opps); p1++ {
		for p2 := p1 + 1; p2 < len(opps); p2++ {
			if sharesNode(opps[p1], opps[p2]) {
				continue
			}
			center, ok := remainingNode(quint, opps[p1], opps[p2])
			if !ok {
				continue
			}
			if s.tryEnvelopeOrientations(center, opps[p1], opps[p2]) {
				return
			}
		}
	}
}

// tryEnvelopeOrientations walks both pair roles and both directions of
// each opposition looking for the sextile chain a-b-c-d-e.
func (s *scanner) tryEnvelopeOrientations(c string, p, q [2]string) bool {
	for _, role := range [2][2][2]string{{p, q}, {q, p}} {
		prim, sec := role[0], role[1]
		for _, ad := range [2][2]string{{prim[0], prim[1]}, {prim[1], prim[0]}} {
			a, d := ad[0], ad[1]
			for _, be := range [2][2]string{{sec[0], sec[1]}, {sec[1], sec[0]}} {
				b, e := be[0], be[1]
				if !s.has(a, b, aspect.Sextile) || !s.has(b, c, aspect.Sextile) ||
					!s.has(c, d, aspect.Sextile) || !s.has(d, e, aspect.Sextile) {
					continue
				}
				if !s.has(a, e, aspect.Trine) || !s.has(b, d, aspect.Trine) {
					continue
				}

				specs := []edgeSpec{
					{a, b, aspect.Sextile}, {b, c, aspect.Sextile},
					{c, d, aspect.Sextile}, {d, e, aspect.Sextile},
					{a, d, aspect.Opposition}, {b, e, aspect.Opposition},
					{a, e, aspect.Trine}, {b, d, aspect.Trine},
				}
				suppress := map[Kind][]string{
					SextileWedge: {memberKey([]string{a, b, c}), memberKey([]string{c, d, e})},
					Kite:         {memberKey([]string{a, b, c, e}), memberKey([]string{a, c, d, e})},
					Cradle:       {memberKey([]string{a, b, c, d}), memberKey([]string{b, c, d, e})},
					Wedge: {
						memberKey([]string{a, b, d}), memberKey([]string{c, d, e}),
						memberKey([]string{a, c, d}), memberKey([]string{a, b, e}),
						memberKey([]string{a, d, e}), memberKey([]string{b, c, e}),
						memberKey([]string{b, d, e}),
					},
				}
				s.add(Envelope, []string{a, b, c, d, e}, c, specs, suppress)
				return true
			}
		}
	}
	return false
}

// findGrandCrosses detects two disjoint opposition pairs with all four
// cross squares.
func (s *scanner) findGrandCrosses() {
	s.eachQuad(func(quad [4]string) {
		for _, split := range pairSplits(quad) {
			a, c := split[0][0], split[0][1]
			b, d := split[1][0], split[1][1]
			if !s.has(a, c, aspect.Opposition) || !s.has(b, d, aspect.Opposition) {
				continue
			}
			if !s.has(a, b, aspect.Square) || !s.has(b, c, aspect.Square) ||
				!s.has(c, d, aspect.Square) || !s.has(d, a, aspect.Square) {
				continue
			}

			specs := []edgeSpec{
				{a, c, aspect.Opposition}, {b, d, aspect.Opposition},
				{a, b, aspect.Square}, {b, c, aspect.Square},
				{c, d, aspect.Square}, {d, a, aspect.Square},
			}
			suppress := map[Kind][]string{
				TSquare: {
					memberKey([]string{a, b, c}), memberKey([]string{b, c, d}),
					memberKey([]string{c, d, a}), memberKey([]string{d, a, b}),
				},
			}
			s.add(GrandCross, []string{a, b, c, d}, "", specs, suppress)
			return
		}
	})
}

// findKites detects a grand trine with a fourth body opposing one vertex
// and sextile the other two.
func (s *scanner) findKites() {
	s.eachQuad(func(quad [4]string) {
		for x := 0; x < 4; x++ {
			apex := quad[x]
			var trio []string
			for y := 0; y < 4; y++ {
				if y != x {
					trio = append(trio, quad[y])
				}
			}
			a, b, c := trio[0], trio[1], trio[2]
			if !s.has(a, b, aspect.Trine) || !s.has(b, c, aspect.Trine) || !s.has(a, c, aspect.Trine) {
				continue
			}

			for _, t := range trio {
				if !s.has(apex, t, aspect.Opposition) {
					continue
				}
				var rest []string
				for _, m := range trio {
					if m != t {
						rest = append(rest, m)
					}
				}
				if !s.has(apex, rest[0], aspect.Sextile) || !s.has(apex, rest[1], aspect.Sextile) {
					continue
				}

				specs := []edgeSpec{
					{a, b, aspect.Trine}, {b, c, aspect.Trine}, {a, c, aspect.Trine},
					{apex, t, aspect.Opposition},
					{apex, rest[0], aspect.Sextile}, {apex, rest[1], aspect.Sextile},
				}
				suppress := map[Kind][]string{
					Wedge:        {memberKey([]string{apex, t, rest[0]}), memberKey([]string{apex, t, rest[1]})},
					SextileWedge: {memberKey([]string{apex, rest[0], rest[1]})},
					GrandTrine:   {memberKey([]string{a, b, c})},
				}
				s.add(Kite, []string{a, b, c, apex}, apex, specs, suppress)
				return
			}
		}
	})
}

// findMysticRectangles detects two disjoint opposition pairs cross
// linked by two sextiles and two trines.
func (s *scanner) findMysticRectangles() {
	s.eachQuad(func(quad [4]string) {
		for _, split := range pairSplits(quad) {
			a, c := split[0][0], split[0][1]
			if !s.has(a, c, aspect.Opposition) {
				continue
			}
			for _, bd := range [2][2]string{{split[1][0], split[1][1]}, {split[1][1], split[1][0]}} {
				b, d := bd[0], bd[1]
				if !s.has(b, d, aspect.Opposition) {
					continue
				}
				if !s.has(a, b, aspect.Sextile) || !s.has(c, d, aspect.Sextile) ||
					!s.has(a, d, aspect.Trine) || !s.has(b, c, aspect.Trine) {
					continue
				}

				specs := []edgeSpec{
					{a, b, aspect.Sextile}, {c, d, aspect.Sextile},
					{a, c, aspect.Opposition}, {b, d, aspect.Opposition},
					{a, d, aspect.Trine}, {b, c, aspect.Trine},
				}
				suppress := map[Kind][]string{
					Wedge: {
						memberKey([]string{a, b, c}), memberKey([]string{a, b, d}),
						memberKey([]string{b, c, d}), memberKey([]string{a, c, d}),
					},
				}
				s.add(MysticRectangle, []string{a, b, c, d}, "", specs, suppress)
				return
			}
		}
	})
}

// findCradles detects the four-body sextile chain a-b-c-d closed by the
// a-d opposition, with trines a-c and b-d.
func (s *scanner) findCradles() {
	s.eachQuad(func(quad [4]string) {
		for x := 0; x < 4; x++ {
			for y := 0; y < 4; y++ {
				if y == x {
					continue
				}
				a, d := quad[x], quad[y]
				if !s.has(a, d, aspect.Opposition) {
					continue
				}
				var inner []string
				for z := 0; z < 4; z++ {
					if z != x && z != y {
						inner = append(inner, quad[z])
					}
				}
				for _, bc := range [2][2]string{{inner[0], inner[1]}, {inner[1], inner[0]}} {
					b, c := bc[0], bc[1]
					if !s.has(a, b, aspect.Sextile) || !s.has(b, c, aspect.Sextile) || !s.has(c, d, aspect.Sextile) {
						continue
					}
					if !s.has(a, c, aspect.Trine) || !s.has(b, d, aspect.Trine) {
						continue
					}

					specs := []edgeSpec{
						{a, b, aspect.Sextile}, {b, c, aspect.Sextile}, {c, d, aspect.Sextile},
						{a, d, aspect.Opposition},
						{a, c, aspect.Trine}, {b, d, aspect.Trine},
					}
					suppress := map[Kind][]string{
						Wedge:        {memberKey([]string{a, b, d}), memberKey([]string{a, c, d})},
						SextileWedge: {memberKey([]string{a, b, c}), memberKey([]string{b, c, d})},
					}
					s.add(Cradle, []string{a, b, c, d}, "", specs, suppress)
					return
				}
			}
		}
	})
}

// findGrandTrines detects mutual trine triangles.
func (s *scanner) findGrandTrines() {
	s.eachTrio(func(trio [3]string) {
		a, b, c := trio[0], trio[1], trio[2]
		if s.has(a, b, aspect.Trine) && s.has(b, c, aspect.Trine) && s.has(a, c, aspect.Trine) {
			specs := []edgeSpec{
				{a, b, aspect.Trine}, {b, c, aspect.Trine}, {a, c, aspect.Trine},
			}
			s.add(GrandTrine, []string{a, b, c}, "", specs, nil)
		}
	})
}

// findTSquares detects two squares to an apex across an opposition.
func (s *scanner) findTSquares() {
	s.eachTrio(func(trio [3]string) {
		for x := 0; x < 3; x++ {
			apex := trio[x]
			var base []string
			for y := 0; y < 3; y++ {
				if y != x {
					base = append(base, trio[y])
				}
			}
			if s.has(base[0], base[1], aspect.Opposition) &&
				s.has(apex, base[0], aspect.Square) && s.has(apex, base[1], aspect.Square) {
				specs := []edgeSpec{
					{base[0], base[1], aspect.Opposition},
					{apex, base[0], aspect.Square}, {apex, base[1], aspect.Square},
				}
				s.add(TSquare, []string{base[0], base[1], apex}, apex, specs, nil)
				return
			}
		}
	})
}

// findWedges detects an opposition bridged by exactly one trine and one
// sextile through a third body.
func (s *scanner) findWedges() {
	s.eachTrio(func(trio [3]string) {
		opp, tri, sex := s.sortTrioPairs(trio)
		if len(opp) == 1 && len(tri) == 1 && len(sex) == 1 {
			specs := []edgeSpec{
				{opp[0][0], opp[0][1], aspect.Opposition},
				{tri[0][0], tri[0][1], aspect.Trine},
				{sex[0][0], sex[0][1], aspect.Sextile},
			}
			s.add(Wedge, trio[:], commonNode(tri[0], sex[0]), specs, nil)
		}
	})
}

// findSextileWedges detects two sextiles meeting at an apex over a trine
// base, with no opposition present.
func (s *scanner) findSextileWedges() {
	s.eachTrio(func(trio [3]string) {
		opp, tri, sex := s.sortTrioPairs(trio)
		if len(tri) == 1 && len(sex) == 2 && len(opp) == 0 {
			specs := []edgeSpec{
				{tri[0][0], tri[0][1], aspect.Trine},
				{sex[0][0], sex[0][1], aspect.Sextile},
				{sex[1][0], sex[1][1], aspect.Sextile},
			}
			s.add(SextileWedge, trio[:], commonNode(sex[0], sex[1]), specs, nil)
		}
	})
}

// findYods detects a sextile base with both ends quincunx an apex.
func (s *scanner) findYods() {
	s.findApexTrio(Yod, aspect.Sextile, aspect.Quincunx)
}

// findWideYods detects a square base with both ends sesquisquare an apex.
func (s *scanner) findWideYods() {
	s.findApexTrio(WideYod, aspect.Square, aspect.Sesquisquare)
}

// findApexTrio detects base-plus-apex trios built from a base aspect and
// two identical legs.
func (s *scanner) findApexTrio(kind Kind, baseAspect, legAspect string) {
	s.eachTrio(func(trio [3]string) {
		for x := 0; x < 3; x++ {
			apex := trio[x]
			var base []string
			for y := 0; y < 3; y++ {
				if y != x {
					base = append(base, trio[y])
				}
			}
			if s.has(base[0], base[1], baseAspect) &&
				s.has(base[0], apex, legAspect) && s.has(base[1], apex, legAspect) {
				specs := []edgeSpec{
					{base[0], base[1], baseAspect},
					{base[0], apex, legAspect},
					{base[1], apex, legAspect},
				}
				s.add(kind, []string{base[0], base[1], apex}, apex, specs, nil)
				return
			}
		}
	})
}

// findOthers detects the square-trine-quincunx trio that carries no
// traditional name, recording role splits for the lightning bolt merge.
func (s *scanner) findOthers() []otherInfo {
	var infos []otherInfo
	s.eachTrio(func(trio [3]string) {
		for x := 0; x < 3; x++ {
			for y := 0; y < 3; y++ {
				if y == x {
					continue
				}
				z := 3 - x - y
				p, q, c := trio[x], trio[y], trio[z]
				if !s.has(p, q, aspect.Square) || !s.has(p, c, aspect.Trine) || !s.has(q, c, aspect.Quincunx) {
					continue
				}
				specs := []edgeSpec{
					{p, q, aspect.Square},
					{p, c, aspect.Trine},
					{q, c, aspect.Quincunx},
				}
				if s.add(Other, []string{p, q, c}, "", specs, nil) {
					infos = append(infos, otherInfo{
						key:   memberKey([]string{p, q, c}),
						qPair: pairKey(q, c),
						q:     q,
						extra: p,
					})
				}
				return
			}
		}
	})
	return infos
}

// findLightningBolts merges pairs of Other shapes sharing a quincunx
// edge with swapped square/trine roles into one four-body figure that
// consumes both.
func (s *scanner) findLightningBolts(others []otherInfo) {
	for i := 0; i < len(others); i++ {
		for j := i + 1; j < len(others); j++ {
			u1, u2 := others[i], others[j]
			if u1.qPair != u2.qPair || u1.q == u2.q || u1.extra == u2.extra {
				continue
			}
			q1, q2 := u1.q, u2.q
			r1, r2 := u1.extra, u2.extra
			if !s.has(q1, q2, aspect.Quincunx) ||
				!s.has(q1, r1, aspect.Square) || !s.has(q2, r2, aspect.Square) ||
				!s.has(q1, r2, aspect.Trine) || !s.has(q2, r1, aspect.Trine) {
				continue
			}

			specs := []edgeSpec{
				{q1, r1, aspect.Square},
				{q1, r2, aspect.Trine},
				{q2, r1, aspect.Trine},
				{q2, r2, aspect.Square},
				{q1, q2, aspect.Quincunx},
			}
			suppress := map[Kind][]string{
				Other: {u1.key, u2.key},
			}
			s.add(LightningBolt, []string{q1, q2, r1, r2}, "", specs, suppress)
		}
	}
}

// eachTrio visits every representative triple in chart order.
func (s *scanner) eachTrio(f func(trio [3]string)) {
	R := s.cl.reps
	n := len(R)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				f([3]string{R[i], R[j], R[k]})
			}
		}
	}
}

// eachQuad visits every representative quadruple in chart order.
func (s *scanner) eachQuad(f func(quad [4]string)) {
	R := s.cl.reps
	n := len(R)
	for i := 0; i < n-3; i++ {
		for j := i + 1; j < n-2; j++ {
			for k := j + 1; k < n-1; k++ {
				for l := k + 1; l < n; l++ {
					f([4]string{R[i], R[j], R[k], R[l]})
				}
			}
		}
	}
}

// sortTrioPairs buckets a trio's pairs by opposition, trine and sextile.
func (s *scanner) sortTrioPairs(trio [3]string) (opp, tri, sex [][2]string) {
	pairs := [3][2]string{
		{trio[0], trio[1]}, {trio[0], trio[2]}, {trio[1], trio[2]},
	}
	for _, p := range pairs {
		if s.has(p[0], p[1], aspect.Opposition) {
			opp = append(opp, p)
		}
		if s.has(p[0], p[1], aspect.Trine) {
			tri = append(tri, p)
		}
		if s.has(p[0], p[1], aspect.Sextile) {
			sex = append(sex, p)
		}
	}
	return opp, tri, sex
}

// pairSplits enumerates the three ways to split four nodes into two pairs.
func pairSplits(q [4]string) [3][2][2]string {
	return [3][2][2]string{
		{{q[0], q[1]}, {q[2], q[3]}},
		{{q[0], q[2]}, {q[1], q[3]}},
		{{q[0], q[3]}, {q[1], q[2]}},
	}
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}

func memberKey(nodes []string) string {
	sorted := append([]string(nil), nodes...)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x00")
}

func kindKey(k Kind, mk string) string {
	return string(k) + "\x00" + mk
}

func candKey(k Kind, nodes []string) string {
	return kindKey(k, memberKey(nodes))
}

func edgeKey(e aspect.Edge) string {
	return e.A + "\x00" + e.B + "\x00" + e.Name
}

func sharesNode(p, q [2]string) bool {
	return p[0] == q[0] || p[0] == q[1] || p[1] == q[0] || p[1] == q[1]
}

// remainingNode returns the one quint member outside both pairs.
func remainingNode(quint []string, p, q [2]string) (string, bool) {
	used := map[string]bool{p[0]: true, p[1]: true, q[0]: true, q[1]: true}
	var rest []string
	for _, n := range quint {
		if !used[n] {
			rest = append(rest, n)
		}
	}
	if len(rest) != 1 {
		return "", false
	}
	return rest[0], true
}

// commonNode returns the first node two pairs share.
func commonNode(p, q [2]string) string {
	for _, x := range p {
		if x == q[0] || x == q[1] {
			return x
		}
	}
	return ""
}
