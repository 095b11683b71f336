package domain

import "time"

// JourneyArtifact represents a persisted shortest-route query for later
// inspection.
type JourneyArtifact struct {
	ID string `json:"id"`

	Source string `json:"source"`

	StationCount int `json:"station_count"`
	RouteCount   int `json:"route_count"`

	Result PathResult `json:"result"`

	PlannedAt time.Time `json:"planned_at"`
}
