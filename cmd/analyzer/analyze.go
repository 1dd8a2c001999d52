package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parthsali/prompt-generator/internal/analyze"
	"github.com/parthsali/prompt-generator/internal/config"
	"github.com/parthsali/prompt-generator/internal/display"
	"github.com/parthsali/prompt-generator/internal/session"
	"github.com/parthsali/prompt-generator/internal/util"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>...",
	Short: "Analyze question images and print their solver prompts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	engines := buildEngines(cfg)
	eng, err := pickEngine(cfg, engines)
	if err != nil {
		return err
	}
	req := analyze.NewRequester(eng)

	sess, err := session.New()
	if err != nil {
		return err
	}
	defer func() {
		for _, w := range sess.Close() {
			display.Warning(w)
		}
	}()

	for _, path := range args {
		if !util.IsImageFile(path) {
			display.Warning(path + ": not a supported image, skipping")
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			display.Warning(path + ": " + err.Error())
			continue
		}

		res := sess.Process(cmd.Context(), req, session.Upload{Name: path, Data: data})

		display.Header(res.Name)
		if res.Label != "" {
			display.Label(res.Label)
		}
		for _, w := range res.Warnings {
			display.Warning(w)
		}
		fmt.Println(res.Prompt)
		fmt.Println()
	}
	return nil
}
