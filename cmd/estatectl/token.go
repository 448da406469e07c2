// AngelaMos | 2026
// token.go

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/estateease-api/internal/auth"
	"github.com/carterperez-dev/estateease-api/internal/config"
	"github.com/carterperez-dev/estateease-api/internal/user"
)

func tokenCmd(configPath *string) *cobra.Command {
	var email, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local testing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !user.ValidRole(role) {
				return fmt.Errorf("unknown role %q", role)
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			manager, err := auth.NewJWTManager(cfg.JWT)
			if err != nil {
				return err
			}

			token, err := manager.CreateAccessToken(email, role)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "token subject")
	cmd.Flags().StringVar(&role, "role", user.RoleUser, "role claim")
	//nolint:errcheck // flag is defined above
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
