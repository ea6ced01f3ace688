// Command fenatsctl runs registry maintenance tasks outside the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cokeke26/fenats/internal/config"
	"github.com/cokeke26/fenats/internal/importer"
	"github.com/cokeke26/fenats/internal/member"
	sharedContext "github.com/cokeke26/fenats/internal/shared/context"
	"github.com/cokeke26/fenats/internal/shared/database"
	"github.com/cokeke26/fenats/internal/shared/logger"
	"github.com/cokeke26/fenats/internal/shared/rut"
	"github.com/cokeke26/fenats/internal/shared/token"
	"github.com/spf13/cobra"
)

var (
	env       string
	affiliate string
	source    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "fenatsctl",
		Short:         "Member registry maintenance",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetupWriter(env, os.Stderr)
		},
	}
	rootCmd.PersistentFlags().StringVar(&env, "env", "local", "Environment (local|dev|production)")

	importCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import members from an .xlsx or .csv file",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVar(&affiliate, "affiliate", "", "Affiliate organization assigned to every imported member")
	importCmd.Flags().StringVar(&source, "source", "", "Free-text provenance label (defaults to the file name)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the detected member table and its rows without writing",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	rutCmd := &cobra.Command{
		Use:   "rut [value...]",
		Short: "Normalize and format RUTs",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRut,
	}

	rootCmd.AddCommand(importCmd, inspectCmd, rutCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	store := member.NewStore(db.DB, member.NewMemberRepository())
	return importFile(cmd, importer.NewImportService(store, token.NewVerificationToken), args[0])
}

// importFile prints the result even when the import aborts, so the operator
// sees how many rows were committed before the failure.
func importFile(cmd *cobra.Command, service *importer.ImportService, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	label := source
	if label == "" {
		label = filepath.Base(path)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := service.Import(ctx, sharedContext.SystemActor, importer.Upload{
		Filename:  filepath.Base(path),
		Data:      data,
		Affiliate: affiliate,
		Source:    label,
	})
	if printErr := printJSON(cmd, result); printErr != nil {
		return printErr
	}
	return err
}

type inspectReport struct {
	Sheet     int                `json:"sheet"`
	HeaderRow int                `json:"headerRow"`
	Strategy  string             `json:"strategy"`
	HasGender bool               `json:"hasGender"`
	Rows      []inspectRowReport `json:"rows"`
}

type inspectRowReport struct {
	Rut    string  `json:"rut"`
	Name   string  `json:"name"`
	Gender *string `json:"gender,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	grids, err := importer.ReadWorkbook(filepath.Base(path), data)
	if err != nil {
		return err
	}

	for sheet, grid := range grids {
		mapping, err := importer.Locate(grid)
		if err != nil {
			continue
		}

		report := inspectReport{
			Sheet:     sheet,
			HeaderRow: mapping.HeaderRow,
			Strategy:  mapping.Strategy.String(),
			HasGender: mapping.HasGender(),
			Rows:      []inspectRowReport{},
		}
		for row := range importer.Extract(grid, mapping) {
			normalized := rut.Normalize(row.RawID)
			if normalized == "" {
				normalized = "invalid: " + row.RawID
			}
			report.Rows = append(report.Rows, inspectRowReport{Rut: normalized, Name: row.FullName, Gender: row.Gender})
		}
		return printJSON(cmd, report)
	}

	return importer.ErrTableNotFound
}

func runRut(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, raw := range args {
		normalized := rut.Normalize(raw)
		if normalized == "" {
			fmt.Fprintf(out, "%s\tinvalid\n", raw)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", raw, normalized, rut.Format(normalized))
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
