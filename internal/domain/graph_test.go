package domain

import (
	"errors"
	"testing"
)

func TestBuildGraphGroupsByOrigin(t *testing.T) {
	g, err := BuildGraph([]Route{
		{Origin: "A", Destination: "B", Distance: 5},
		{Origin: "A", Destination: "C", Distance: 10},
		{Origin: "B", Destination: "C", Distance: 4},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(g.RoutesFrom("A")); got != 2 {
		t.Fatalf("expected 2 routes from A, got %d", got)
	}
	if got := g.StationCount(); got != 3 {
		t.Fatalf("expected 3 stations, got %d", got)
	}
	if got := g.RouteCount(); got != 3 {
		t.Fatalf("expected 3 routes, got %d", got)
	}
}

func TestBuildGraphDestinationOnlyStationIsNode(t *testing.T) {
	g, err := BuildGraph([]Route{
		{Origin: "A", Destination: "B", Distance: 5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !g.HasStation("B") {
		t.Fatalf("expected B to be a node")
	}
	if got := len(g.RoutesFrom("B")); got != 0 {
		t.Fatalf("expected no routes from B, got %d", got)
	}
}

func TestBuildGraphRejectsMalformedRoutes(t *testing.T) {
	cases := []struct {
		name  string
		route Route
	}{
		{"missing origin", Route{Destination: "B", Distance: 1}},
		{"missing destination", Route{Origin: "A", Distance: 1}},
		{"negative distance", Route{Origin: "A", Destination: "B", Distance: -3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildGraph([]Route{tc.route})
			if err == nil {
				t.Fatalf("expected error")
			}
			if !IsKind(err, KindMalformedRoute) {
				t.Fatalf("expected malformed_route kind, got %v", err)
			}
			if !errors.Is(err, ErrMalformedRoute) && !errors.Is(err, ErrInvalidWeight) {
				t.Fatalf("expected wrapped sentinel, got %v", err)
			}
		})
	}
}

func TestBuildGraphKeepsDuplicateRoutes(t *testing.T) {
	g, err := BuildGraph([]Route{
		{Origin: "A", Destination: "B", Distance: 5},
		{Origin: "A", Destination: "B", Distance: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := g.RouteCount(); got != 2 {
		t.Fatalf("expected both duplicates stored, got %d", got)
	}
}

func TestBuildGraphAllowsSelfLoop(t *testing.T) {
	g, err := BuildGraph([]Route{
		{Origin: "A", Destination: "A", Distance: 7},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(g.RoutesFrom("A")); got != 1 {
		t.Fatalf("expected self-loop stored, got %d routes", got)
	}
}

func TestStationsSorted(t *testing.T) {
	g, err := BuildGraph([]Route{
		{Origin: "C", Destination: "A", Distance: 1},
		{Origin: "B", Destination: "C", Distance: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := g.Stations()
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
