package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/parthsali/prompt-generator/internal/analyze"
	"github.com/parthsali/prompt-generator/internal/analyze/gemini"
	"github.com/parthsali/prompt-generator/internal/analyze/openai"
	"github.com/parthsali/prompt-generator/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "Turn images of technical questions into ready-to-paste LLM prompts",
	Long: `analyzer sends images of technical questions to a multimodal model,
extracts a structured analysis and wraps it into a solver prompt you can
paste into any LLM session.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logLevel := slog.LevelWarn
		if debugFlag {
			logLevel = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
		slog.SetDefault(logger)
	},
}

var (
	debugFlag  bool
	engineFlag string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&engineFlag, "engine", "e", "", "Model engine to use (gemini | gpt)")
}

func buildEngines(cfg *config.Config) *analyze.Engines {
	return &analyze.Engines{
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		OpenAI: openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
	}
}

// pickEngine resolves the --engine flag, falling back to the configured default.
func pickEngine(cfg *config.Config, engines *analyze.Engines) (analyze.Engine, error) {
	name := engineFlag
	if name == "" {
		name = cfg.DefaultEngine
	}
	return engines.GetEngine(name)
}
