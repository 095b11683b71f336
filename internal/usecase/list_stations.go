package usecase

import (
	"context"

	"github.com/Joshuacru/train-routes/internal/domain"
	"github.com/Joshuacru/train-routes/internal/ports"
)

// ListStations reports every station name known to a route source, sorted.
type ListStations struct {
	source ports.RouteSource
}

func NewListStations(rs ports.RouteSource) *ListStations {
	return &ListStations{source: rs}
}

func (uc *ListStations) Execute(ctx context.Context) ([]string, error) {
	routes, err := uc.source.LoadRoutes(ctx)
	if err != nil {
		return nil, err
	}

	g, err := domain.BuildGraph(routes)
	if err != nil {
		return nil, err
	}

	return g.Stations(), nil
}
