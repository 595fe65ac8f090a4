// Package sync contains the sync command: one full batch run of the
// message-to-ledger pipeline.
package sync

import (
	"fjacquet/sms-ledger/cmd/root"
	"fjacquet/sms-ledger/internal/container"
	"fjacquet/sms-ledger/internal/models"

	"github.com/spf13/cobra"
)

var quiet bool

// Cmd represents the sync command.
var Cmd = &cobra.Command{
	Use:   "sync",
	Short: "Scan the message inbox and sync transactions into the ledger",
	Long: `Scan the configured message source, extract financial transactions
from bank notifications, and insert the ones not already present in the
ledger. Prints a progress line and the final counters.`,
	RunE: syncFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-batch progress output")
}

func syncFunc(cmd *cobra.Command, args []string) error {
	c, err := container.NewContainer(root.Cfg)
	if err != nil {
		return err
	}

	var onProgress func(models.SyncProgress)
	if !quiet {
		onProgress = func(p models.SyncProgress) {
			root.Log.Infof("Sync progress: %d/%d processed, %d added", p.Processed, p.Total, p.Added)
		}
	}

	progress, err := c.GetSyncer().SyncAll(cmd.Context(), onProgress)
	if err != nil {
		return err
	}

	root.Log.Infof("Sync finished: %d total, %d processed, %d added, %d failed writes",
		progress.Total, progress.Processed, progress.Added, progress.FailedWrites)
	return nil
}
