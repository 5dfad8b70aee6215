package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/tui"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var (
	editOutDir     string
	editFormat     string
	editConfigFile string
	editAccessible bool
	editVerbose    bool
	editWidth      int
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a resume in the terminal and export it",
	Long:  "Walks through the resume sections with interactive forms, printing the preview after each one, then writes resume.png and/or resume.pdf.",
	Args:  cobra.NoArgs,
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editOutDir, "out-dir", "o", ".", "Directory for the exported files")
	editCmd.Flags().StringVarP(&editFormat, "format", "f", "both", "Export format: png, pdf or both")
	editCmd.Flags().StringVar(&editConfigFile, "config", "", "Path to JSON config file")
	editCmd.Flags().BoolVar(&editAccessible, "accessible", false, "Use plain line prompts instead of the interactive forms")
	editCmd.Flags().BoolVarP(&editVerbose, "verbose", "v", false, "Print a summary of the resume before exporting")
	editCmd.Flags().IntVar(&editWidth, "width", 80, "Preview width in columns (0 disables the preview)")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, _ []string) error {
	modes, err := parseFormats(editFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(editConfigFile)
	if err != nil {
		return err
	}
	if editVerbose {
		cfg.Verbose = true
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	store := editor.NewStore()
	outcome, err := tui.New(store, tui.HuhPrompter{Accessible: editAccessible}, out, editWidth).Run(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}
	if err != nil {
		return err
	}
	if outcome != tui.OutcomeExport {
		return nil
	}

	snapshot := store.Snapshot()
	if cfg.Verbose {
		observability.NewPrinter(out).PrintResumeSummary(&snapshot)
	}

	return exportAll(ctx, newPipeline(cfg), snapshot, modes, editOutDir, out)
}

// parseFormats expands the --format value into export modes.
func parseFormats(format string) ([]export.Mode, error) {
	if strings.EqualFold(strings.TrimSpace(format), "both") {
		return []export.Mode{export.ModeImage, export.ModeDocument}, nil
	}
	mode, err := export.ParseMode(format)
	if err != nil {
		return nil, fmt.Errorf("invalid --format: %w", err)
	}
	return []export.Mode{mode}, nil
}

// exportAll writes one artifact per mode into dir. All artifacts come from the
// same snapshot; nothing is written for a mode that fails.
func exportAll(ctx context.Context, exporter server.Exporter, s types.FormState, modes []export.Mode, dir string, out io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var paths []string
	var sizes []int
	for _, mode := range modes {
		artifact, err := exporter.Export(ctx, s, mode)
		if err != nil {
			return fmt.Errorf("export %s failed: %w", mode, err)
		}
		path := filepath.Join(dir, artifact.Filename)
		if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
		sizes = append(sizes, len(artifact.Data))
	}

	observability.NewPrinter(out).PrintExportResult(paths, sizes)
	return nil
}
