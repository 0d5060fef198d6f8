package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/propertypal/pms-backend/config"
	"github.com/propertypal/pms-backend/storage"
	"github.com/propertypal/pms-backend/store"
)

func newSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the lead and property collections to the sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(*configPath)
		},
	}
}

func runSeed(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := cfg.OpenStorage(ctx)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer db.Close()

	for _, key := range []string{storage.KeyLeads, storage.KeyProperties} {
		if err := db.Delete(ctx, key); err != nil {
			return fmt.Errorf("clearing %s: %w", key, err)
		}
	}

	// Construction over the cleared keys persists the seed collections.
	leads := store.NewLeadStore(ctx, db)
	properties := store.NewPropertyStore(ctx, db)

	slog.Info("seeded sample data",
		"leads", len(leads.List()),
		"properties", len(properties.List()),
		"backend", cfg.Backend)
	return nil
}
