// Package main is the entry point for the wagecalc CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tolga/wagecalc/internal/config"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	cfg := config.Load()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	root := &cobra.Command{
		Use:   "wagecalc",
		Short: "Monthly wage computation for shift-working guides",
	}
	root.AddCommand(newComputeCmd(cfg), newSegmentsCmd(cfg))

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
