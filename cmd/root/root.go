// Package root contains the root command for the application.
package root

import (
	"fjacquet/sms-ledger/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all
	// commands after PersistentPreRunE.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "sms-ledger",
		Short: "Sync bank notification messages into a personal-finance ledger.",
		Long: `sms-ledger scans a batch of short text messages, extracts financial
transactions from bank notifications, and reconciles them against a
persistent expense/income ledger without inserting duplicates.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to sms-ledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
			return nil
		},
	}
)
