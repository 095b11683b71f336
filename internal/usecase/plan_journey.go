package usecase

import (
	"context"
	"time"

	"github.com/Joshuacru/train-routes/internal/domain"
	"github.com/Joshuacru/train-routes/internal/ports"
)

// PlanJourney loads a route table, builds the graph and answers a single
// shortest-route query. When a store is present the journey is persisted.
type PlanJourney struct {
	source     ports.RouteSource
	store      ports.JourneyStore
	sourceName string
	now        func() time.Time
}

type PlanOption func(*PlanJourney)

// WithNow overrides the clock (useful for tests).
func WithNow(now func() time.Time) PlanOption {
	return func(uc *PlanJourney) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithSourceName records where the route table came from in the artifact.
func WithSourceName(name string) PlanOption {
	return func(uc *PlanJourney) { uc.sourceName = name }
}

// NewPlanJourney wires a journey planner. store may be nil to skip persisting.
func NewPlanJourney(rs ports.RouteSource, store ports.JourneyStore, opts ...PlanOption) *PlanJourney {
	uc := &PlanJourney{
		source: rs,
		store:  store,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute answers one origin→destination query. Unreachable outcomes are
// regular results inside the artifact; the error return covers load/build
// failures, broken invariants and save failures.
func (uc *PlanJourney) Execute(ctx context.Context, origin, destination string) (domain.JourneyArtifact, string, error) {
	routes, err := uc.source.LoadRoutes(ctx)
	if err != nil {
		return domain.JourneyArtifact{}, "", err
	}

	g, err := domain.BuildGraph(routes)
	if err != nil {
		return domain.JourneyArtifact{}, "", err
	}

	result, err := domain.FindShortestRoute(g, origin, destination)
	if err != nil {
		return domain.JourneyArtifact{}, "", err
	}

	journey := domain.JourneyArtifact{
		Source:       uc.sourceName,
		StationCount: g.StationCount(),
		RouteCount:   g.RouteCount(),
		Result:       result,
		PlannedAt:    uc.now().UTC(),
	}

	if uc.store == nil {
		return journey, "", nil
	}

	id, err := uc.store.SaveJourney(journey)
	if err != nil {
		return journey, "", err
	}
	journey.ID = id
	return journey, id, nil
}
