package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joshuacru/train-routes/internal/usecase"
)

func validateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "validate",
		Short: "Check that a route table parses and builds a graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := openSource(cmd)
			if err != nil {
				return err
			}
			defer src.Close()

			stations, routes, err := usecase.NewValidateRoutes(src.routes).Execute(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("OK: %s (%d stations, %d routes)\n", src.name, stations, routes)
			return nil
		},
	}
	return c
}
