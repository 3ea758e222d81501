package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/suggest"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the analysis pipeline over REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	a := analyzer.New(log, taxonomy.Default(), remoteProviders(cfg, log)...)
	return server.New(cfg, a, log).Start()
}

// remoteProviders builds the remote suggestion providers in priority order.
// Providers without a configured credential stay in the chain but report
// themselves unavailable.
func remoteProviders(cfg *config.Config, log *zap.Logger) []suggest.Provider {
	return []suggest.Provider{
		suggest.NewGeminiProvider(log, cfg.GeminiAPIKey, cfg.GeminiModel),
		suggest.NewOpenAIProvider(log, cfg.OpenAIAPIKey, cfg.OpenAIModel),
	}
}
