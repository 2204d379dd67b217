// Command vehicle-sync replaces the vehicle_dimensions table with the rows of
// a YAML reference file (the embedded one by default).
package main

import (
	"context"
	"fmt"
	"os"

	"wrapcommand/internal/adapter/persistence/repository"
	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/domain/pricing"
	"wrapcommand/internal/infrastructure/config"
	"wrapcommand/internal/infrastructure/database"
	"wrapcommand/internal/infrastructure/logger"
	"wrapcommand/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:           "vehicle-sync",
		Short:         "Replace the vehicle_dimensions table with a reference file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := readRows(file)
			if err != nil {
				return err
			}
			if dryRun {
				valid := pricing.NewVehicleTable(rows).Len()
				fmt.Fprintf(cmd.OutOrStdout(), "%d rows read, %d valid\n", len(rows), valid)
				return nil
			}
			return syncRows(cmd.Context(), rows, cmd)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with vehicle rows (default: embedded reference table)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and count rows without touching the table")
	return cmd
}

func readRows(path string) ([]entities.VehicleSize, error) {
	if path == "" {
		return pricing.DefaultVehicleEntries()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return pricing.ParseVehicleEntries(raw)
}

func syncRows(ctx context.Context, rows []entities.VehicleSize, cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zl.Sync() }()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	repo := repository.NewVehicleSizeDynamoRepository(ddb, cfg.Tables.VehicleDimensions)
	res, err := usecase.NewVehicleSyncUseCase(repo, zl).Sync(ctx, rows)
	if err != nil {
		zl.Error("[vehicle_sync][cli] sync failed", zap.Int("deleted", res.Deleted), zap.Int("inserted", res.Inserted), zap.Error(err))
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d, inserted %d in %d batches\n", res.Deleted, res.Inserted, res.Batches)
	return nil
}
