// AngelaMos | 2026
// keys.go

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/estateease-api/internal/auth"
)

func keysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage JWT signing keys",
	}
	cmd.AddCommand(keysGenerateCmd())
	return cmd
}

func keysGenerateCmd() *cobra.Command {
	var (
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a new ES256 key pair as private.pem and public.pem",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("create key dir: %w", err)
			}

			privatePath := filepath.Join(dir, "private.pem")
			publicPath := filepath.Join(dir, "public.pem")

			if !force {
				if _, err := os.Stat(privatePath); err == nil {
					return fmt.Errorf("%s already exists, pass --force to replace it", privatePath)
				}
			}

			if err := auth.GenerateKeyPair(privatePath, publicPath); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", privatePath, publicPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "keys", "output directory")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing key pair")

	return cmd
}
