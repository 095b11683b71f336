package domain

import (
	"container/heap"
	"fmt"
)

// FindShortestRoute runs a Dijkstra search from origin to destination and
// returns the minimum total distance together with one minimal path.
//
// Unknown stations and disconnected pairs are regular outcomes, reported
// through the PathResult; the error return only fires on a broken invariant
// (a negative distance that slipped past graph construction).
//
// When two candidate paths tie on total distance, the first one relaxed wins,
// which makes the reconstructed path deterministic for a fixed route order.
// All bookkeeping is local to one call, so a shared Graph can serve
// concurrent queries.
func FindShortestRoute(g *Graph, origin, destination string) (PathResult, error) {
	result := PathResult{Origin: origin, Destination: destination}

	if !g.HasStation(origin) {
		result.Reason = UnknownStation
		result.UnknownStation = origin
		return result, nil
	}
	if !g.HasStation(destination) {
		result.Reason = UnknownStation
		result.UnknownStation = destination
		return result, nil
	}

	items := make(map[string]*frontierItem, g.StationCount())
	items[origin] = &frontierItem{station: origin, distance: 0, index: -1}

	pq := make(frontier, 0)
	heap.Init(&pq)
	heap.Push(&pq, items[origin])

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*frontierItem)

		if current.station == destination {
			result.Reachable = true
			result.Distance = current.distance
			result.Path = reconstructPath(items, destination)
			result.Stops = countStops(result.Path)
			return result, nil
		}

		for _, route := range g.RoutesFrom(current.station) {
			if route.Distance < 0 {
				return PathResult{}, &OpError{
					Op:   "dijkstra.relax",
					Kind: KindInvalidWeight,
					Err:  fmt.Errorf("%w: %q", ErrInvalidWeight, route),
				}
			}

			tentative := current.distance + route.Distance
			next, seen := items[route.Destination]
			switch {
			case !seen:
				item := &frontierItem{
					station:     route.Destination,
					distance:    tentative,
					predecessor: current.station,
					index:       -1,
				}
				items[route.Destination] = item
				heap.Push(&pq, item)
			case next.index >= 0 && tentative < next.distance:
				pq.decreaseKey(next, tentative, current.station)
			}
			// An item with index -1 is finalized; with non-negative
			// distances it cannot improve, so it is left alone.
		}
	}

	result.Reason = NoPath
	return result, nil
}

func reconstructPath(items map[string]*frontierItem, destination string) []string {
	path := []string{destination}
	for item := items[destination]; item.predecessor != ""; item = items[item.predecessor] {
		path = append([]string{item.predecessor}, path...)
	}
	return path
}

// countStops counts intermediate stations on a path: a direct trip has zero.
func countStops(path []string) int {
	if len(path) < 2 {
		return 0
	}
	return len(path) - 2
}
