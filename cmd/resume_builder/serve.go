package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the browser editor",
	Long:  `Start an HTTP server that serves the resume editor, its live preview and the PNG/PDF downloads.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigFile)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv := server.New(server.Config{
		Port:       cfg.Port,
		SessionTTL: cfg.SessionTTL.Duration,
		Verbose:    cfg.Verbose,
	}, newPipeline(cfg))

	return srv.Start()
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newPipeline(cfg *config.Config) *export.Pipeline {
	return export.NewPipeline(export.NewChromeRasterizer(cfg.ChromePath, cfg.Verbose), export.Options{
		MaxConcurrent: int64(cfg.MaxExports),
		Timeout:       cfg.ExportTimeout.Duration,
		Verbose:       cfg.Verbose,
	})
}
