package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soulful-academy/chakra-report/internal/config"
	"github.com/soulful-academy/chakra-report/internal/report"
	"github.com/soulful-academy/chakra-report/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for questionnaire sessions and report generation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv := server.New(server.Config{
		Port:          cfg.Port,
		LogoURL:       cfg.LogoURL,
		LogoCachePath: cfg.LogoCachePath,
		LogoTimeout:   cfg.LogoTimeout,
		PlanVariant:   report.PlanVariant(cfg.PlanVariant),
	})

	return srv.Start()
}
