package tui

import "github.com/Joshuacru/train-routes/internal/domain"

// graphLoadedMsg arrives once the route table has been loaded and built.
type graphLoadedMsg struct {
	graph *domain.Graph
	err   error
}

// resultMsg carries the outcome of one shortest-route query.
type resultMsg struct {
	result domain.PathResult
	err    error
}
