package domain

// UnreachableReason says why no distance could be computed for a query.
type UnreachableReason string

const (
	// UnknownStation: the origin or destination is not a node of the graph.
	UnknownStation UnreachableReason = "unknown_station"
	// NoPath: both stations exist but no directed path connects them.
	NoPath UnreachableReason = "no_path"
)

// PathResult is the outcome of a shortest-route query. Either Reachable is
// true and Distance/Stops/Path are meaningful, or Reason explains the
// failure. There is no -1 or infinity sentinel for "unreachable".
type PathResult struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	Reachable bool              `json:"reachable"`
	Reason    UnreachableReason `json:"reason,omitempty"`

	// UnknownStation is the offending name when Reason == UnknownStation.
	UnknownStation string `json:"unknown_station,omitempty"`

	Distance int      `json:"distance"`
	Stops    int      `json:"stops"`
	Path     []string `json:"path,omitempty"`
}
