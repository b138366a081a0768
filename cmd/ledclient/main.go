package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"ledlink/internal/ledclient"
	"ledlink/internal/shared/config"
	"ledlink/internal/shared/logger"
	"ledlink/internal/shared/types"
)

func main() {
	configDir := flag.String("configdir", "configs", "Path to config directory")
	flag.Parse()

	iniPath := filepath.Join(*configDir, "ledlink.ini")

	// Built-in defaults match the stock dev kit; the ini file only overrides.
	cfg := types.DefaultConfig()
	if err := config.Load(cfg, iniPath); err != nil {
		// Use standard fmt before logger is initialized.
		fmt.Fprintf(os.Stderr, "Fatal: Failed to load config file '%s': %v\n", iniPath, err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ledclient.PrintBanner(os.Stdout)

	conn, err := ledclient.Dial(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msgf("Failed to connect to %s:%d", cfg.Address, cfg.Port)
	}
	defer conn.Close()

	session := ledclient.NewSession(cfg, conn, os.Stdout)
	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msgf("Session terminated")
	}
}
