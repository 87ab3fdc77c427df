package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/veridoc-io/veridoc/internal/api"
)

var (
	serveListen  string
	serveDir     string
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the validation HTTP API",
	Long: `Starts the HTTP API exposing POST /v1/validate, GET /v1/tiers,
GET /v1/cost, and GET /healthz. Project settings are read from veridoc.yml
in the config directory when present.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", ":8080", "address to listen on")
	serveCmd.Flags().StringVarP(&serveDir, "config-dir", "c", ".", "directory holding veridoc.yml")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "enable debug logging")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger(serveVerbose)

	engine, _, _, err := buildEngine(serveDir, "", log)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := api.NewRouter(api.NewHandler(engine, log))
	return api.Run(ctx, router, serveListen, log)
}
