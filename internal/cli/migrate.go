package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/feedbackboard/internal/board/pgstore"
	"github.com/dmitrymomot/feedbackboard/pkg/config"
	"github.com/dmitrymomot/feedbackboard/pkg/logger"
	"github.com/dmitrymomot/feedbackboard/pkg/pg"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long:  `Apply the embedded schema migrations to the database at PG_CONN_URL.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			var pgCfg pg.Config
			if err := config.Load(&pgCfg); err != nil {
				return err
			}
			pgCfg.MigrationsDir = pgstore.MigrationsDir

			log := newLogger(cfg).With(logger.Component("migrate"))
			ctx := cmd.Context()

			pool, err := pg.Connect(ctx, pgCfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			version, err := pg.Migrate(ctx, pool, pgCfg, pgstore.Migrations, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
			return nil
		},
	}
}
