package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joshuacru/train-routes/internal/infra/csvroutes"
	"github.com/Joshuacru/train-routes/internal/infra/sqliteroutes"
)

func importCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "import",
		Short: "Import a CSV route table into a SQLite database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			db, _ := cmd.Flags().GetString("db")
			if file == "" || db == "" {
				return errors.New("import needs both --file (CSV input) and --db (SQLite output)")
			}

			routes, err := csvroutes.NewLoader(file).LoadRoutes(cmd.Context())
			if err != nil {
				return err
			}

			store, err := sqliteroutes.Open(cmd.Context(), db)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Import(cmd.Context(), routes); err != nil {
				return err
			}

			fmt.Printf("Imported %d routes from %s into %s\n", len(routes), file, db)
			return nil
		},
	}
	return c
}
