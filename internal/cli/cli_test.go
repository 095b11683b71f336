package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Joshuacru/train-routes/internal/domain"
)

func reachableResult() domain.PathResult {
	return domain.PathResult{
		Origin:      "A",
		Destination: "C",
		Reachable:   true,
		Distance:    9,
		Stops:       1,
		Path:        []string{"A", "B", "C"},
	}
}

func TestPrintPrettyReachable(t *testing.T) {
	var buf bytes.Buffer
	printPrettyResult(&buf, reachableResult(), nil)

	out := buf.String()
	if !strings.Contains(out, "from A to C includes 1 stop and will take 9 minutes") {
		t.Fatalf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "A -> B -> C") {
		t.Fatalf("expected route line, got: %s", out)
	}
}

func TestPrintPrettyPluralStops(t *testing.T) {
	res := reachableResult()
	res.Stops = 2
	res.Path = []string{"A", "B", "X", "C"}

	var buf bytes.Buffer
	printPrettyResult(&buf, res, nil)

	if !strings.Contains(buf.String(), "2 stops") {
		t.Fatalf("expected plural, got: %s", buf.String())
	}
}

func TestPrintPrettyUnknownStationListsValidNames(t *testing.T) {
	res := domain.PathResult{
		Origin:         "A",
		Destination:    "Z",
		Reason:         domain.UnknownStation,
		UnknownStation: "Z",
	}

	var buf bytes.Buffer
	printPrettyResult(&buf, res, []string{"A", "B", "C"})

	out := buf.String()
	if !strings.Contains(out, `Station "Z" does not exist`) {
		t.Fatalf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "Valid station names are: A, B, C") {
		t.Fatalf("expected station list, got: %s", out)
	}
}

func TestPrintPrettyNoPath(t *testing.T) {
	res := domain.PathResult{
		Origin:      "B",
		Destination: "A",
		Reason:      domain.NoPath,
	}

	var buf bytes.Buffer
	printPrettyResult(&buf, res, nil)

	if !strings.Contains(buf.String(), "no routes from B to A") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestPrintJourneyJSON(t *testing.T) {
	journey := domain.JourneyArtifact{
		ID:     "j1",
		Result: reachableResult(),
	}

	var buf bytes.Buffer
	if err := printJourney(&buf, journey, "j1", "json", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded domain.JourneyArtifact
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.Result.Distance != 9 {
		t.Fatalf("expected distance in JSON, got %+v", decoded)
	}
}

func TestFormatFlag(t *testing.T) {
	newCmd := func(value string) *cobra.Command {
		c := &cobra.Command{}
		c.Flags().String("format", "", "")
		if value != "" {
			if err := c.Flags().Set("format", value); err != nil {
				t.Fatal(err)
			}
		}
		return c
	}

	cfg := domain.DefaultConfig()

	got, err := formatFlag(newCmd(""), cfg)
	if err != nil || got != "pretty" {
		t.Fatalf("expected config default pretty, got %q err=%v", got, err)
	}

	got, err = formatFlag(newCmd("json"), cfg)
	if err != nil || got != "json" {
		t.Fatalf("expected json, got %q err=%v", got, err)
	}

	if _, err := formatFlag(newCmd("xml"), cfg); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
