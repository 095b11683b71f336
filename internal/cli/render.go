package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Joshuacru/train-routes/internal/domain"
)

func printJourney(w io.Writer, journey domain.JourneyArtifact, id string, format string, stations []string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(journey)
	default:
		printPrettyResult(w, journey.Result, stations)
		if id != "" {
			fmt.Fprintf(w, "Saved as journey %s\n", id)
		}
		return nil
	}
}

func printPrettyResult(w io.Writer, result domain.PathResult, stations []string) {
	switch {
	case result.Reachable:
		fmt.Fprintf(w, "Your trip from %s to %s includes %d %s and will take %d minutes.\n",
			result.Origin, result.Destination, result.Stops, pluralStops(result.Stops), result.Distance)
		if len(result.Path) > 1 {
			fmt.Fprintf(w, "Route: %s\n", strings.Join(result.Path, " -> "))
		}
	case result.Reason == domain.UnknownStation:
		fmt.Fprintf(w, "Station %q does not exist.\n", result.UnknownStation)
		if len(stations) > 0 {
			fmt.Fprintf(w, "Valid station names are: %s\n", strings.Join(stations, ", "))
		}
	default:
		fmt.Fprintf(w, "There are no routes from %s to %s.\n", result.Origin, result.Destination)
	}
}

func pluralStops(n int) string {
	if n == 1 {
		return "stop"
	}
	return "stops"
}
