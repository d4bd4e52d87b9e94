package pattern

import (
	"testing"

	"aspectarian/chart"
)

func clusterChart(t *testing.T, placements ...chart.Placement) *chart.Chart {
	t.Helper()

	ch, err := chart.New(placements, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return ch
}

func TestClusterConjunctions_Chain(t *testing.T) {
	// Neighbor gaps stay within orb while the full spread does not;
	// chaining still joins all three.
	ch := clusterChart(t,
		chart.Placement{Name: "Sun", Longitude: 10},
		chart.Placement{Name: "Mercury", Longitude: 14},
		chart.Placement{Name: "Venus", Longitude: 18},
		chart.Placement{Name: "Mars", Longitude: 100},
	)

	cl := clusterConjunctions(ch, ch.Names(), 5)

	if len(cl.reps) != 2 {
		t.Fatalf("expected 2 clusters, got %v", cl.reps)
	}
	if cl.anchor["Venus"] != "Sun" {
		t.Errorf("expected Venus anchored to Sun, got %s", cl.anchor["Venus"])
	}
	if got := cl.group["Sun"]; len(got) != 3 {
		t.Errorf("expected 3 members under Sun, got %v", got)
	}
	if cl.anchor["Mars"] != "Mars" {
		t.Errorf("expected Mars standalone, got %s", cl.anchor["Mars"])
	}
}

func TestClusterConjunctions_WrapsZero(t *testing.T) {
	ch := clusterChart(t,
		chart.Placement{Name: "Sun", Longitude: 2},
		chart.Placement{Name: "Moon", Longitude: 358},
		chart.Placement{Name: "Mars", Longitude: 180},
	)

	cl := clusterConjunctions(ch, ch.Names(), 5)

	if cl.anchor["Moon"] != "Sun" {
		t.Errorf("expected Moon anchored to Sun across 0°, got %s", cl.anchor["Moon"])
	}
	if len(cl.reps) != 2 {
		t.Errorf("expected 2 clusters, got %v", cl.reps)
	}
}

func TestClusterConjunctions_RepFollowsChartOrder(t *testing.T) {
	// Mercury sits at the lower longitude, yet Sun comes first in the
	// chart so Sun represents the cluster.
	ch := clusterChart(t,
		chart.Placement{Name: "Sun", Longitude: 15},
		chart.Placement{Name: "Mercury", Longitude: 12},
	)

	cl := clusterConjunctions(ch, ch.Names(), 5)

	if len(cl.reps) != 1 || cl.reps[0] != "Sun" {
		t.Fatalf("expected Sun as representative, got %v", cl.reps)
	}
	want := []string{"Sun", "Mercury"}
	for i, m := range want {
		if cl.group["Sun"][i] != m {
			t.Errorf("member %d: expected %s, got %s", i, m, cl.group["Sun"][i])
		}
	}
}

func TestClusterConjunctions_GapBreaksChain(t *testing.T) {
	ch := clusterChart(t,
		chart.Placement{Name: "Sun", Longitude: 10},
		chart.Placement{Name: "Moon", Longitude: 17},
	)

	cl := clusterConjunctions(ch, ch.Names(), 5)
	if len(cl.reps) != 2 {
		t.Errorf("expected separate clusters, got %v", cl.reps)
	}
}

func TestTrivialClustering(t *testing.T) {
	ch := clusterChart(t,
		chart.Placement{Name: "Sun", Longitude: 10},
		chart.Placement{Name: "Mercury", Longitude: 12},
	)

	cl := trivialClustering(ch, []string{"Mercury", "Sun"})

	if len(cl.reps) != 2 || cl.reps[0] != "Sun" || cl.reps[1] != "Mercury" {
		t.Errorf("expected chart-order reps, got %v", cl.reps)
	}
	if cl.anchor["Mercury"] != "Mercury" {
		t.Errorf("expected Mercury standalone, got %s", cl.anchor["Mercury"])
	}
}
