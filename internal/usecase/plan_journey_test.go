package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Joshuacru/train-routes/internal/domain"
)

// --- fakes shared by the usecase tests ---

type fakeRouteSource struct {
	routes []domain.Route
}

func (f fakeRouteSource) LoadRoutes(_ context.Context) ([]domain.Route, error) {
	return f.routes, nil
}

type errRouteSource struct{ err error }

func (e errRouteSource) LoadRoutes(_ context.Context) ([]domain.Route, error) {
	return nil, e.err
}

type fakeStore struct {
	saved bool
	last  domain.JourneyArtifact
	err   error
}

func (s *fakeStore) SaveJourney(j domain.JourneyArtifact) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = j
	return "journey-123", nil
}

func sampleRoutes() []domain.Route {
	return []domain.Route{
		{Origin: "A", Destination: "B", Distance: 5},
		{Origin: "B", Destination: "C", Distance: 4},
		{Origin: "A", Destination: "C", Distance: 10},
	}
}

func TestPlanJourneyExecute(t *testing.T) {
	store := &fakeStore{}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := NewPlanJourney(fakeRouteSource{routes: sampleRoutes()}, store,
		WithNow(func() time.Time { return now }),
		WithSourceName("routes.csv"))

	journey, id, err := uc.Execute(context.Background(), "A", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "journey-123" {
		t.Fatalf("expected store id, got %q", id)
	}
	if !store.saved {
		t.Fatalf("expected journey to be saved")
	}
	if journey.Result.Distance != 9 {
		t.Fatalf("expected distance 9, got %d", journey.Result.Distance)
	}
	if journey.StationCount != 3 || journey.RouteCount != 3 {
		t.Fatalf("unexpected counts: %+v", journey)
	}
	if !journey.PlannedAt.Equal(now) {
		t.Fatalf("expected injected clock, got %v", journey.PlannedAt)
	}
	if store.last.Source != "routes.csv" {
		t.Fatalf("expected source recorded, got %q", store.last.Source)
	}
}

func TestPlanJourneyWithoutStore(t *testing.T) {
	uc := NewPlanJourney(fakeRouteSource{routes: sampleRoutes()}, nil)

	journey, id, err := uc.Execute(context.Background(), "A", "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected no id without a store, got %q", id)
	}
	if journey.Result.Distance != 5 {
		t.Fatalf("expected distance 5, got %d", journey.Result.Distance)
	}
}

func TestPlanJourneyUnreachableIsNotAnError(t *testing.T) {
	uc := NewPlanJourney(fakeRouteSource{routes: sampleRoutes()}, nil)

	journey, _, err := uc.Execute(context.Background(), "C", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if journey.Result.Reachable || journey.Result.Reason != domain.NoPath {
		t.Fatalf("expected no_path result, got %+v", journey.Result)
	}
}

func TestPlanJourneySourceErrorPropagates(t *testing.T) {
	boom := &domain.OpError{Op: "csvroutes.open", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	uc := NewPlanJourney(errRouteSource{err: boom}, nil)

	_, _, err := uc.Execute(context.Background(), "A", "B")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected source error to propagate, got %v", err)
	}
}

func TestPlanJourneyMalformedRouteAborts(t *testing.T) {
	uc := NewPlanJourney(fakeRouteSource{routes: []domain.Route{
		{Origin: "A", Destination: "B", Distance: -2},
	}}, nil)

	_, _, err := uc.Execute(context.Background(), "A", "B")
	if !domain.IsKind(err, domain.KindMalformedRoute) {
		t.Fatalf("expected malformed_route, got %v", err)
	}
}

func TestPlanJourneyStoreErrorPropagates(t *testing.T) {
	boom := errors.New("disk full")
	uc := NewPlanJourney(fakeRouteSource{routes: sampleRoutes()}, &fakeStore{err: boom})

	_, _, err := uc.Execute(context.Background(), "A", "B")
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestListStations(t *testing.T) {
	uc := NewListStations(fakeRouteSource{routes: sampleRoutes()})

	names, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"A", "B", "C"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestValidateRoutes(t *testing.T) {
	uc := NewValidateRoutes(fakeRouteSource{routes: sampleRoutes()})

	stations, routes, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stations != 3 || routes != 3 {
		t.Fatalf("expected 3/3, got %d/%d", stations, routes)
	}
}

func TestValidateRoutesRejectsBadTable(t *testing.T) {
	uc := NewValidateRoutes(fakeRouteSource{routes: []domain.Route{
		{Origin: "", Destination: "B", Distance: 1},
	}})

	_, _, err := uc.Execute(context.Background())
	if !domain.IsKind(err, domain.KindMalformedRoute) {
		t.Fatalf("expected malformed_route, got %v", err)
	}
}
