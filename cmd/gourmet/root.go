package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/gourmet-server/internal/config"
	"github.com/dtroode/gourmet-server/internal/logger"
)

// commandContext carries what every command needs once flags are parsed.
type commandContext struct {
	cfg *config.Config
	log *logger.Logger
}

func (c *commandContext) load() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.cfg = cfg
	c.log = logger.New(cfg.LogLevel, cfg.LogFormat)
	return nil
}

func newRootCommand() *cobra.Command {
	cc := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "gourmet",
		Short:         "Food photo ingestion and classification server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return cc.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cc)
		},
	}

	rootCmd.AddCommand(newServeCommand(cc))
	rootCmd.AddCommand(newMigrateCommand(cc))
	rootCmd.AddCommand(newIngestCommand(cc))
	rootCmd.AddCommand(newPhotosCommand(cc))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
