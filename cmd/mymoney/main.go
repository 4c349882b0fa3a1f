package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/mymoney/internal/buildinfo"
	"github.com/dmitrijs2005/mymoney/internal/client/cli"
	"github.com/dmitrijs2005/mymoney/internal/client/config"
	"github.com/dmitrijs2005/mymoney/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
