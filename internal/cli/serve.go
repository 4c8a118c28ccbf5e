package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/feedbackboard/pkg/config"
	"github.com/dmitrymomot/feedbackboard/pkg/httpserver"
	"github.com/dmitrymomot/feedbackboard/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the web pages and the JSON API on HTTP_ADDR.

STORAGE_DRIVER selects memory (default, seeded with sample data when SEED is
true) or postgres. SESSION_STORE selects memory or redis. When FORWARD_URL is
set, new feedback is also posted to that endpoint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			log := newLogger(cfg)
			logger.SetAsDefault(log)

			ctx := cmd.Context()
			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.close()

			a.runJanitors(ctx)

			srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(ctx, a.router())
		},
	}
}
