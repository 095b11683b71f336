package ports

import (
	"context"

	"github.com/Joshuacru/train-routes/internal/domain"
)

// RouteSource supplies the raw route table a graph is built from
// (e.g., a CSV file or a SQLite database).
type RouteSource interface {
	LoadRoutes(ctx context.Context) ([]domain.Route, error)
}
