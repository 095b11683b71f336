package domain

import "sort"

// Graph is an adjacency-list view of a route table, keyed by origin station.
// Stations that only ever appear as a destination are still nodes; they just
// have no outgoing routes. A Graph is built once and never mutated afterwards,
// so concurrent FindShortestRoute calls against one Graph are safe.
type Graph struct {
	adjacency map[string][]Route
}

// BuildGraph groups validated routes by origin. A malformed route aborts
// construction; rows are never silently skipped. Duplicate routes between the
// same ordered pair are kept as-is — the search only ever follows the cheaper
// one, so storing both is harmless.
func BuildGraph(routes []Route) (*Graph, error) {
	g := &Graph{adjacency: make(map[string][]Route, len(routes))}

	for _, r := range routes {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		g.adjacency[r.Origin] = append(g.adjacency[r.Origin], r)
		if _, ok := g.adjacency[r.Destination]; !ok {
			g.adjacency[r.Destination] = nil
		}
	}

	return g, nil
}

// HasStation reports whether name is a node of the graph.
func (g *Graph) HasStation(name string) bool {
	_, ok := g.adjacency[name]
	return ok
}

// RoutesFrom returns the outgoing routes of a station. The returned slice is
// shared with the graph and must not be modified.
func (g *Graph) RoutesFrom(name string) []Route {
	return g.adjacency[name]
}

// Stations returns all station names in sorted order.
func (g *Graph) Stations() []string {
	names := make([]string, 0, len(g.adjacency))
	for name := range g.adjacency {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StationCount returns the number of nodes.
func (g *Graph) StationCount() int {
	return len(g.adjacency)
}

// RouteCount returns the number of directed routes.
func (g *Graph) RouteCount() int {
	n := 0
	for _, routes := range g.adjacency {
		n += len(routes)
	}
	return n
}
