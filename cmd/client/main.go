package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/cmdui"
	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := config.Load()

	app, err := cmdui.NewApp(cfg)
	if err != nil {
		slog.Error("failed to start client", "error", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		slog.Error("client exited with error", "error", err)
		os.Exit(1)
	}
}
