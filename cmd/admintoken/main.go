// Command admintoken mints a bearer token for the /api/admin endpoints,
// signed with JWT_SECRET.
package main

import (
	"fmt"
	"os"
	"time"

	"cpicareers/config"
	"cpicareers/utils"

	"github.com/spf13/cobra"
)

func main() {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:          "admintoken --subject ID",
		Short:        "Print an admin bearer token",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			token, err := utils.GenerateToken(cfg.JWTSecret, subject, utils.RoleAdmin, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "admin identifier stored in the sub claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
