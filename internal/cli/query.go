package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Joshuacru/train-routes/internal/domain"
	"github.com/Joshuacru/train-routes/internal/infra/journeystore"
	"github.com/Joshuacru/train-routes/internal/ports"
	"github.com/Joshuacru/train-routes/internal/usecase"
)

func queryCmd() *cobra.Command {
	var from string
	var to string
	var format string
	var save bool

	c := &cobra.Command{
		Use:   "query",
		Short: "Find the shortest route between two stations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := openSource(cmd)
			if err != nil {
				return err
			}
			defer src.Close()

			outFormat, err := formatFlag(cmd, src.cfg)
			if err != nil {
				return err
			}

			var store ports.JourneyStore
			if save {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				store = journeystore.NewJSONStore(wd, src.cfg, journeystore.WithIndex(true))
			}

			uc := usecase.NewPlanJourney(src.routes, store, usecase.WithSourceName(src.name))
			journey, id, err := uc.Execute(cmd.Context(), from, to)
			if err != nil {
				return err
			}

			var stations []string
			if !journey.Result.Reachable && journey.Result.Reason == domain.UnknownStation && outFormat != "json" {
				stations, _ = usecase.NewListStations(src.routes).Execute(cmd.Context())
			}

			return printJourney(os.Stdout, journey, id, outFormat, stations)
		},
	}

	c.Flags().StringVar(&from, "from", "", "origin station (required)")
	c.Flags().StringVar(&to, "to", "", "destination station (required)")
	c.Flags().StringVar(&format, "format", "", "output format: pretty|json")
	c.Flags().BoolVar(&save, "save", false, "save the journey under journeys/")

	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}
