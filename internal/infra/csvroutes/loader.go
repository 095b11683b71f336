// Package csvroutes loads route tables from CSV files shaped
// origin,destination,distance with no header row.
package csvroutes

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Joshuacru/train-routes/internal/domain"
	"github.com/Joshuacru/train-routes/internal/ports"
)

type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

var _ ports.RouteSource = (*Loader)(nil)

// LoadRoutes reads and validates every record. A malformed row aborts the
// load with the 1-based line number of the offending record; rows are never
// silently skipped.
func (l *Loader) LoadRoutes(ctx context.Context) ([]domain.Route, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "csvroutes.open",
			Kind: domain.KindNotFound,
			Path: l.path,
			Err:  err,
		}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	var routes []domain.Route
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, &domain.OpError{
				Op:   "csvroutes.read",
				Kind: domain.KindMalformedRoute,
				Path: l.path,
				Line: line,
				Err:  fmt.Errorf("%w: expected origin,destination,distance: %v", domain.ErrMalformedRoute, err),
			}
		}
		line, _ := reader.FieldPos(0)

		route, err := parseRecord(record)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "csvroutes.parse",
				Kind: domain.KindMalformedRoute,
				Path: l.path,
				Line: line,
				Err:  err,
			}
		}
		routes = append(routes, route)
	}

	return routes, nil
}

func parseRecord(record []string) (domain.Route, error) {
	origin := strings.TrimSpace(record[0])
	destination := strings.TrimSpace(record[1])
	rawDistance := strings.TrimSpace(record[2])

	if origin == "" || destination == "" {
		return domain.Route{}, fmt.Errorf("%w: empty station name", domain.ErrMalformedRoute)
	}

	distance, err := strconv.Atoi(rawDistance)
	if err != nil {
		return domain.Route{}, fmt.Errorf("%w: %q is not an integer", domain.ErrMalformedRoute, rawDistance)
	}
	if distance < 0 {
		return domain.Route{}, fmt.Errorf("%w: negative distance %d", domain.ErrMalformedRoute, distance)
	}

	return domain.Route{Origin: origin, Destination: destination, Distance: distance}, nil
}
