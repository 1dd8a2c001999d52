package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/parthsali/prompt-generator/internal/config"
	"github.com/parthsali/prompt-generator/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload UI and JSON API",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := config.Load()
	srv := web.New(buildEngines(cfg))

	addr := ":" + cfg.Port
	log.Printf("analyzer listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, srv.Routes()))
}
