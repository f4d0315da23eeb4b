package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dkravets/folio/internal/server"
	"github.com/dkravets/folio/internal/server/config"
)

func main() {

	// a missing .env file is fine, settings may come from the environment
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
