// Package cmd provides the formdesk command line.
package cmd

import (
	"fmt"
	"os"

	"formdesk/internal/config"
	"formdesk/internal/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "formdesk",
	Short: "Todo and contact form HTTP services",
	Long: `formdesk runs two small HTTP services: a todo API backed by a document
store and a contact form API backed by a relational database.

Examples:
  formdesk serve
  formdesk serve contact
  formdesk migrate
  formdesk token --subject admin --ttl 24h`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		log = logger.New(cfg.LogLevel, cfg.LogPretty)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
}
