package cmd

import (
	"errors"
	"fmt"
	"time"

	"formdesk/internal/services"

	"github.com/spf13/cobra"
)

var (
	flagTokenSubject string
	flagTokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for deleting contact posts",
	Long: `Issue a signed bearer token accepted by DELETE /posts/{post_id}.
Requires AUTH_JWT_SECRET to be set to the same value the contact service uses.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.AuthJWTSecret == "" {
			return errors.New("AUTH_JWT_SECRET is not set")
		}
		token, err := services.NewAuthService(cfg.AuthJWTSecret).IssueToken(flagTokenSubject, flagTokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&flagTokenSubject, "subject", "admin", "token subject")
	tokenCmd.Flags().DurationVar(&flagTokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
