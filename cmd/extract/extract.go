// Package extract contains the extract command for debugging the rule
// cascades against a single message.
package extract

import (
	"time"

	"fjacquet/sms-ledger/cmd/root"
	"fjacquet/sms-ledger/internal/categorizer"
	"fjacquet/sms-ledger/internal/extractor"
	"fjacquet/sms-ledger/internal/logging"
	"fjacquet/sms-ledger/internal/senderfilter"

	"github.com/spf13/cobra"
)

var (
	sender string
	body   string
)

// Cmd represents the extract command.
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a transaction from a single message body",
	Long: `Run a single sender/body pair through the field extractor and
categorizer and print the result. Useful when tuning pattern rules.`,
	RunE: extractFunc,
}

func init() {
	Cmd.Flags().StringVarP(&sender, "sender", "s", "", "Message sender identifier")
	Cmd.Flags().StringVarP(&body, "body", "b", "", "Message body text")
	_ = Cmd.MarkFlagRequired("sender")
	_ = Cmd.MarkFlagRequired("body")
}

func extractFunc(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	ext := extractor.New(logger)

	root.Log.Infof("Sender looks like a bank: %t", senderfilter.IsBankSender(sender, nil))

	tx, err := ext.Extract(sender, body, time.Now().UnixMilli())
	if err != nil {
		root.Log.Infof("No transaction extracted: %v", err)
		return nil
	}

	label := categorizer.NewCategorizer(nil, logger).Categorize(*tx)
	root.Log.Infof("Direction: %s", tx.Direction)
	root.Log.Infof("Amount: %s", tx.Amount.String())
	root.Log.Infof("Counterparty: %s", tx.CounterpartyName)
	root.Log.Infof("Account suffix: %s", tx.AccountSuffix)
	root.Log.Infof("Category: %s", label)
	if tx.IsTransferLike {
		root.Log.Infof("Transfer-like, destination suffix: %s", tx.DestinationSuffix)
	}
	return nil
}
