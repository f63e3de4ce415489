package main

import (
	"fmt"
	"os"

	"pet-shelter/internal/cli"
	"pet-shelter/internal/platform/config"
	"pet-shelter/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Output: os.Stderr,
	})

	if err := cli.NewRootCmd(cli.Deps{Config: cfg, Log: log}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
