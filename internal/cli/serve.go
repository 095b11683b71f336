package cli

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Joshuacru/train-routes/internal/infra/logger"
	"github.com/Joshuacru/train-routes/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve route queries over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			debug, _ := cmd.Flags().GetBool("debug")
			cleanup, _ := logger.Setup(logger.Config{Root: wd, Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}
			log := logger.L()

			src, err := openSource(cmd)
			if err != nil {
				return err
			}
			defer src.Close()

			srv, err := server.New(cmd.Context(), src.routes, src.name, log)
			if err != nil {
				return err
			}

			listenAddr := addr
			if listenAddr == "" {
				if port := os.Getenv("PORT"); port != "" {
					listenAddr = ":" + port
				} else {
					listenAddr = src.cfg.Server.Addr
				}
			}

			log.Info("server.listening", "addr", listenAddr, "source", src.name)
			return http.ListenAndServe(listenAddr, srv.Handler(src.cfg.Server.AllowedOrigins))
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "listen address (default from PORT env or config)")
	return c
}
