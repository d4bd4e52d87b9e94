package pattern

import (
	"sort"

	"aspectarian/chart"
)

// clustering maps bodies to their conjunction-cluster representative and
// representatives to cluster members. With merging disabled every body
// is its own representative.
type clustering struct {
	anchor map[string]string
	group  map[string][]string
	reps   []string
}

// clusterConjunctions partitions names by walking them in longitude
// order and chaining bodies whose gap to the previous one is within orb.
// The chain is circular: the first and last clusters merge when the gap
// across 0° is within orb. Representatives and member lists follow chart
// order so identity never depends on longitude sorting.
func clusterConjunctions(ch *chart.Chart, names []string, orb float64) clustering {
	order := chartOrder(ch)

	byLon := append([]string(nil), names...)
	sort.SliceStable(byLon, func(i, j int) bool {
		li, _ := ch.Longitude(byLon[i])
		lj, _ := ch.Longitude(byLon[j])
		if li != lj {
			return li < lj
		}
		return order[byLon[i]] < order[byLon[j]]
	})

	cl := clustering{
		anchor: make(map[string]string),
		group:  make(map[string][]string),
	}
	if len(byLon) == 0 {
		return cl
	}

	var groups [][]string
	current := []string{byLon[0]}
	for _, m := range byLon[1:] {
		prev := current[len(current)-1]
		lonPrev, _ := ch.Longitude(prev)
		lonM, _ := ch.Longitude(m)
		if lonM-lonPrev <= orb {
			current = append(current, m)
		} else {
			groups = append(groups, current)
			current = []string{m}
		}
	}
	groups = append(groups, current)

	// Merge across the 0° seam.
	if len(groups) > 1 {
		first, last := groups[0], groups[len(groups)-1]
		lonFirst, _ := ch.Longitude(first[0])
		lonLast, _ := ch.Longitude(last[len(last)-1])
		if lonFirst+360-lonLast <= orb {
			groups[0] = append(last, first...)
			groups = groups[:len(groups)-1]
		}
	}

	for _, g := range groups {
		members := append([]string(nil), g...)
		sort.SliceStable(members, func(i, j int) bool {
			return order[members[i]] < order[members[j]]
		})
		rep := members[0]
		cl.group[rep] = members
		for _, m := range members {
			cl.anchor[m] = rep
		}
		cl.reps = append(cl.reps, rep)
	}

	sort.SliceStable(cl.reps, func(i, j int) bool {
		return order[cl.reps[i]] < order[cl.reps[j]]
	})

	return cl
}

// trivialClustering keeps every body standalone, in chart order.
func trivialClustering(ch *chart.Chart, names []string) clustering {
	order := chartOrder(ch)

	cl := clustering{
		anchor: make(map[string]string),
		group:  make(map[string][]string),
		reps:   append([]string(nil), names...),
	}
	sort.SliceStable(cl.reps, func(i, j int) bool {
		return order[cl.reps[i]] < order[cl.reps[j]]
	})
	for _, n := range cl.reps {
		cl.anchor[n] = n
		cl.group[n] = []string{n}
	}
	return cl
}

// chartOrder indexes body names by their placement position.
func chartOrder(ch *chart.Chart) map[string]int {
	order := make(map[string]int, len(ch.Placements))
	for i, p := range ch.Placements {
		order[p.Name] = i
	}
	return order
}
