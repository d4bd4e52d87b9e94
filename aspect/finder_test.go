package aspect

import (
	"testing"

	"aspectarian/chart"
)

func mustChart(t *testing.T, placements []chart.Placement) *chart.Chart {
	t.Helper()
	ch, err := chart.New(placements, nil)
	if err != nil {
		t.Fatalf("building chart: %v", err)
	}
	return ch
}

func speed(v float64) *float64 {
	return &v
}

func TestFind_TrineEdge(t *testing.T) {
	ch := mustChart(t, []chart.Placement{
		{Name: "Sun", Longitude: 10},
		{Name: "Moon", Longitude: 130},
	})

	edges, err := Find(ch, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}

	e := edges[0]
	if e.A != "Sun" || e.B != "Moon" {
		t.Errorf("expected Sun-Moon, got %s-%s", e.A, e.B)
	}
	if e.Name != Trine {
		t.Errorf("expected Trine, got %s", e.Name)
	}
	if e.Separation != 120 {
		t.Errorf("expected separation 120, got %g", e.Separation)
	}
	if e.Deviation != 0 {
		t.Errorf("expected deviation 0, got %g", e.Deviation)
	}
	if e.Motion != "" {
		t.Errorf("expected no motion without speeds, got %s", e.Motion)
	}
}

func TestFind_SignedDeviation(t *testing.T) {
	ch := mustChart(t, []chart.Placement{
		{Name: "Sun", Longitude: 0},
		{Name: "Mars", Longitude: 88},
	})

	edges, err := Find(ch, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}

	e := edges[0]
	if e.Name != Square {
		t.Errorf("expected Square, got %s", e.Name)
	}
	if e.Deviation != -2 {
		t.Errorf("expected deviation -2, got %g", e.Deviation)
	}
}

func TestFind_ExactOpposition(t *testing.T) {
	ch := mustChart(t, []chart.Placement{
		{Name: "Sun", Longitude: 0},
		{Name: "Moon", Longitude: 180},
	})

	edges, err := Find(ch, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 || edges[0].Name != Opposition || edges[0].Deviation != 0 {
		t.Errorf("expected exact Opposition, got %+v", edges)
	}
}

func TestFind_ConjunctionAcrossZero(t *testing.T) {
	ch := mustChart(t, []chart.Placement{
		{Name: "Sun", Longitude: 358},
		{Name: "Mercury", Longitude: 2},
	})

	edges, err := Find(ch, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0].Name != Conjunction {
		t.Errorf("expected Conjunction, got %s", edges[0].Name)
	}
	if edges[0].Separation != 4 {
		t.Errorf("expected separation 4, got %g", edges[0].Separation)
	}
}

func TestFind_PairOrderStable(t *testing.T) {
	ch := mustChart(t, []chart.Placement{
		{Name: "Sun", Longitude: 0},
		{Name: "Moon", Longitude: 120},
		{Name: "Mars", Longitude: 240},
	})

	edges, err := Find(ch, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(edges))
	}

	want := [][2]string{{"Sun", "Moon"}, {"Sun", "Mars"}, {"Moon", "Mars"}}
	for i, e := range edges {
		if e.A != want[i][0] || e.B != want[i][1] {
			t.Errorf("edge %d: expected %s-%s, got %s-%s", i, want[i][0], want[i][1], e.A, e.B)
		}
		if e.Name != Trine {
			t.Errorf("edge %d: expected Trine, got %s", i, e.Name)
		}
	}
}

func TestFind_NoAspect(t *testing.T) {
	ch := mustChart(t, []chart.Placement{
		{Name: "Sun", Longitude: 0},
		{Name: "Moon", Longitude: 13},
	})

	edges, err := Find(ch, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("expected no edges at 13° separation, got %d", len(edges))
	}
}

func TestFind_EmptyChart(t *testing.T) {
	ch := mustChart(t, nil)

	edges, err := Find(ch, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("expected no edges, got %d", len(edges))
	}
}

func TestFind_MotionApplying(t *testing.T) {
	// Moon closing on an exact trine to a stationary Sun.
	ch := mustChart(t, []chart.Placement{
		{Name: "Sun", Longitude: 0, Speed: speed(0)},
		{Name: "Moon", Longitude: 118, Speed: speed(1.5)},
	})

	edges, err := Find(ch, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0].Motion != Applying {
		t.Errorf("expected Applying, got %s", edges[0].Motion)
	}
}

func TestFind_MotionSeparating(t *testing.T) {
	// Moon already past exact and still moving forward.
	ch := mustChart(t, []chart.Placement{
		{Name: "Sun", Longitude: 0, Speed: speed(0)},
		{Name: "Moon", Longitude: 121, Speed: speed(1.5)},
	})

	edges, err := Find(ch, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0].Motion != Separating {
		t.Errorf("expected Separating, got %s", edges[0].Motion)
	}
}

func TestFind_MotionNeedsBothSpeeds(t *testing.T) {
	ch := mustChart(t, []chart.Placement{
		{Name: "Sun", Longitude: 0, Speed: speed(1)},
		{Name: "Moon", Longitude: 120},
	})

	edges, err := Find(ch, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0].Motion != "" {
		t.Errorf("expected empty motion, got %s", edges[0].Motion)
	}
}

func TestFind_RejectsInvalidChart(t *testing.T) {
	ch := &chart.Chart{Placements: []chart.Placement{
		{Name: "Sun", Longitude: 400},
	}}

	if _, err := Find(ch, DefaultCatalog()); err == nil {
		t.Error("expected error for out-of-range longitude")
	}
}

func TestMajorsMinors_SplitPreservesOrder(t *testing.T) {
	edges := []Edge{
		{A: "Sun", B: "Moon", Name: Trine, Category: Major},
		{A: "Sun", B: "Mars", Name: Quintile, Category: Minor},
		{A: "Moon", B: "Mars", Name: Square, Category: Major},
	}

	maj := Majors(edges)
	if len(maj) != 2 || maj[0].Name != Trine || maj[1].Name != Square {
		t.Errorf("unexpected major split: %+v", maj)
	}

	min := Minors(edges)
	if len(min) != 1 || min[0].Name != Quintile {
		t.Errorf("unexpected minor split: %+v", min)
	}
}

func TestEdge_Joins(t *testing.T) {
	e := Edge{A: "Sun", B: "Moon"}

	if !e.Joins("Sun", "Moon") || !e.Joins("Moon", "Sun") {
		t.Error("expected edge to join Sun and Moon in either order")
	}
	if e.Joins("Sun", "Mars") {
		t.Error("edge should not join Sun and Mars")
	}
}
