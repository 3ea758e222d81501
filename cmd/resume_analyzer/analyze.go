package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
)

var (
	analyzeResume string
	analyzeJob    string
	analyzeJobURL string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long:  `Analyze reads a resume file and a job description (from a file or a URL), runs the analysis pipeline, and prints the result as JSON.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Path to resume file (txt, pdf or docx)")
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job description from")
	_ = analyzeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeJob != "" && analyzeJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	log, err := logger.New(false, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	raw, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	resumeText := ingestion.ExtractText(analyzeResume, raw)

	var jobText string
	switch {
	case analyzeJob != "":
		rawJob, err := os.ReadFile(analyzeJob)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobText = ingestion.ExtractText(analyzeJob, rawJob)
	case analyzeJobURL != "":
		jobText, err = ingestion.FetchJobPosting(cmd.Context(), analyzeJobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}

	a := analyzer.New(log, taxonomy.Default(), remoteProviders(cfg, log)...)
	result := a.Analyze(cmd.Context(), resumeText, jobText)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
