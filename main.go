package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"astroai/api"
	"astroai/config"
	"astroai/logger"
	"astroai/session"
	"astroai/ui"
)

func main() {
	serverURL := flag.String("server", "", "AstroAI server base URL (overrides ASTROAI_SERVER)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}

	var logOut *os.File
	if cfg.LogFile != "" {
		logOut, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
			os.Exit(1)
		}
		defer logOut.Close()
		logger.Init(logger.Options{Level: cfg.LogLevel, Output: logOut})
	} else {
		logger.Init(logger.Options{Level: cfg.LogLevel})
	}

	keys, err := session.OpenKeystore(cfg.KeystorePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer keys.Close()

	client := api.NewClient(cfg.ServerURL)
	store := session.NewStore(client, keys)

	app := ui.NewApp(client, store)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
