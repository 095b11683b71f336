package usecase

import (
	"context"

	"github.com/Joshuacru/train-routes/internal/domain"
	"github.com/Joshuacru/train-routes/internal/ports"
)

// ValidateRoutes checks a route source end to end without running a query:
// every record parses and the graph builds. Returns basic counts on success.
type ValidateRoutes struct {
	source ports.RouteSource
}

func NewValidateRoutes(rs ports.RouteSource) *ValidateRoutes {
	return &ValidateRoutes{source: rs}
}

func (uc *ValidateRoutes) Execute(ctx context.Context) (stations int, routes int, err error) {
	raw, err := uc.source.LoadRoutes(ctx)
	if err != nil {
		return 0, 0, err
	}

	g, err := domain.BuildGraph(raw)
	if err != nil {
		return 0, 0, err
	}

	return g.StationCount(), g.RouteCount(), nil
}
