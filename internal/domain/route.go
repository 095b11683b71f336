package domain

import "fmt"

// Route is a single directed connection between two stations.
// Presence of A→B says nothing about B→A; reverse trips need their own Route.
type Route struct {
	Origin      string
	Destination string
	Distance    int
}

func (r Route) String() string {
	return fmt.Sprintf("%s -> %s (%d)", r.Origin, r.Destination, r.Distance)
}

// Validate checks the structural constraints a Route must satisfy before it
// can enter a Graph: non-empty endpoint names and a non-negative distance.
func (r Route) Validate() error {
	if r.Origin == "" || r.Destination == "" {
		return &OpError{
			Op:   "route.validate",
			Kind: KindMalformedRoute,
			Err:  fmt.Errorf("%w: missing station name in %q", ErrMalformedRoute, r),
		}
	}
	if r.Distance < 0 {
		return &OpError{
			Op:   "route.validate",
			Kind: KindMalformedRoute,
			Err:  fmt.Errorf("%w: negative distance in %q", ErrMalformedRoute, r),
		}
	}
	return nil
}
