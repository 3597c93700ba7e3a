package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/nmatveev/dockeep/internal/buildinfo"
	"github.com/nmatveev/dockeep/internal/client/cli"
	"github.com/nmatveev/dockeep/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
