package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/propertypal/pms-backend/config"
	"github.com/propertypal/pms-backend/export"
	"github.com/propertypal/pms-backend/store"
)

func newExportCmd(configPath *string) *cobra.Command {
	var kindFlag, format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate a PDF or Excel report from the stored collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(*configPath, kindFlag, format, out)
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "type", "t", "all", "report contents: leads, properties, or all")
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "output format: pdf or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file path (defaults to pms-report.<format>)")
	return cmd
}

func runExport(configPath, kindFlag, format, out string) error {
	kind, err := export.ParseKind(kindFlag)
	if err != nil {
		return err
	}

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

	leads := store.NewLeadStore(ctx, db)
	properties := store.NewPropertyStore(ctx, db)

	snap := export.Snapshot{
		GeneratedAt:   time.Now(),
		Leads:         leads.List(),
		LeadStats:     leads.Stats(),
		Properties:    properties.List(),
		PropertyStats: properties.Stats(),
	}

	var data []byte
	switch format {
	case "pdf":
		data, err = export.BuildPDF(snap, kind)
	case "xlsx":
		data, err = export.BuildExcel(snap, kind)
	default:
		return fmt.Errorf("unknown format %q, expected pdf or xlsx", format)
	}
	if err != nil {
		return err
	}

	if out == "" {
		out = "pms-report." + format
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	slog.Info("report written", "path", out, "bytes", len(data))
	return nil
}
