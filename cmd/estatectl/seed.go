// AngelaMos | 2026
// seed.go

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/estateease-api/internal/apartment"
	"github.com/carterperez-dev/estateease-api/internal/config"
	"github.com/carterperez-dev/estateease-api/internal/core"
)

func seedCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data into the database",
	}
	cmd.AddCommand(seedApartmentsCmd(configPath))
	return cmd
}

func seedApartmentsCmd(configPath *string) *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "apartments",
		Short: "Insert apartments from a YAML file",
		Long: `Insert apartments from a YAML file of the form:

  apartments:
    - floorNo: 1
      blockName: A
      apartmentNo: 101
      rent: 1200
      image: https://...`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := os.ReadFile(file) //nolint:gosec // operator supplied path
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}

			items, err := apartment.ParseSeed(bytes.NewReader(raw))
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d apartments valid, nothing written\n", len(items))
				return nil
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := core.NewDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close(ctx) //nolint:errcheck // process exits right after

			n, err := apartment.NewService(apartment.NewRepository(db.DB)).
				Seed(ctx, bytes.NewReader(raw))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d apartments into %s\n", n, cfg.Database.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "apartments.yaml", "seed file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")

	return cmd
}
