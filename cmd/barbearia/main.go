package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/barbearia-client/internal/api"
	"github.com/BruksfildServices01/barbearia-client/internal/config"
	"github.com/BruksfildServices01/barbearia-client/internal/session"
	"github.com/BruksfildServices01/barbearia-client/internal/views"
	"github.com/BruksfildServices01/barbearia-client/pkg/logging"
)

func main() {

	// .env é opcional; variáveis de ambiente têm precedência.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	client := api.NewClient(cfg.APIBaseURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(logger),
	)
	store := session.NewStore(cfg.SessionFile)

	shell := views.NewShell(client, store, logger, cfg, os.Stdin, os.Stdout)

	log.Printf("Barbearia client — API em %s", cfg.APIBaseURL)
	if err := shell.Run(context.Background()); err != nil {
		log.Fatalf("failed to run shell: %v", err)
	}
}
