package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joshuacru/train-routes/internal/domain"
	"github.com/Joshuacru/train-routes/internal/infra/config"
	"github.com/Joshuacru/train-routes/internal/infra/csvroutes"
	"github.com/Joshuacru/train-routes/internal/infra/sqliteroutes"
	"github.com/Joshuacru/train-routes/internal/ports"
)

// addSourceFlags registers the flags shared by every command that reads a
// route table.
func addSourceFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("file", "f", "", "CSV route table (origin,destination,distance per line)")
	cmd.PersistentFlags().String("db", "", "SQLite route database (see 'import')")
	cmd.PersistentFlags().String("config", config.DefaultFile, "config file")
}

// routeSource bundles a resolved source with its display name and an optional
// close hook (SQLite holds a connection; CSV does not).
type routeSource struct {
	routes ports.RouteSource
	name   string
	cfg    domain.Config
	closer func() error
}

func (s *routeSource) Close() {
	if s.closer != nil {
		_ = s.closer()
	}
}

// openSource resolves the route table per flag > config precedence:
// --db wins over --file; with neither flag, the config decides, file first.
func openSource(cmd *cobra.Command) (*routeSource, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	file, _ := cmd.Flags().GetString("file")
	db, _ := cmd.Flags().GetString("db")

	if db == "" && file == "" {
		db = cfg.Routes.Database
		file = cfg.Routes.File
		if file != "" {
			db = ""
		}
	}

	switch {
	case db != "":
		store, err := sqliteroutes.Open(cmd.Context(), db)
		if err != nil {
			return nil, err
		}
		return &routeSource{routes: store, name: db, cfg: cfg, closer: store.Close}, nil
	case file != "":
		return &routeSource{routes: csvroutes.NewLoader(file), name: file, cfg: cfg}, nil
	default:
		return nil, errors.New("no route table: pass --file or --db, or set one in " + cfgPath)
	}
}

// formatFlag resolves --format with the config default as fallback.
func formatFlag(cmd *cobra.Command, cfg domain.Config) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Defaults.Format
	}
	switch format {
	case "pretty", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
