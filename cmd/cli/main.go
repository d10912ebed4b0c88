package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophgallery/internal/buildinfo"
	"github.com/dmitrijs2005/gophgallery/internal/client/cli"
	"github.com/dmitrijs2005/gophgallery/internal/client/config"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg.LogFormat, cfg.Debug)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, cleanup, err := cli.Build(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		cancel()
		os.Exit(1)
	}
	defer cleanup()

	app.Root(ctx, cfg.OnlineCheckInterval)
}
