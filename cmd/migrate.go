package cmd

import (
	"formdesk/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the contact_forms table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.OpenSQL(cfg, log)
		if err != nil {
			return err
		}
		defer database.CloseSQL(db)

		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info().Str("driver", cfg.DatabaseDriver).Msg("contact_forms is up to date")
		return nil
	},
}
