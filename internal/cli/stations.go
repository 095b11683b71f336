package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joshuacru/train-routes/internal/usecase"
)

func stationsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "stations",
		Short: "List all station names in a route table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := openSource(cmd)
			if err != nil {
				return err
			}
			defer src.Close()

			names, err := usecase.NewListStations(src.routes).Execute(cmd.Context())
			if err != nil {
				return err
			}

			if len(names) == 0 {
				fmt.Println("(no stations found)")
				return nil
			}

			fmt.Printf("Source: %s\n\n", src.name)
			for _, name := range names {
				fmt.Printf("- %s\n", name)
			}
			return nil
		},
	}
	return c
}
