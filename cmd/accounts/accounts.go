// Package accounts contains the accounts command for managing the
// registered bank account mappings used during sync.
package accounts

import (
	"fmt"

	"fjacquet/sms-ledger/cmd/root"
	"fjacquet/sms-ledger/internal/container"
	"fjacquet/sms-ledger/internal/models"

	"github.com/spf13/cobra"
)

var (
	last4 string
	name  string
)

// Cmd represents the accounts command.
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "List or register bank account mappings",
	Long: `Without flags, lists the registered account-suffix to name mappings.
With --last4 and --name, registers a new mapping so synced transactions on
that account carry the chosen label.`,
	RunE: accountsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&last4, "last4", "l", "", "Last digits of the account number")
	Cmd.Flags().StringVarP(&name, "name", "n", "", "Label for the account")
}

func accountsFunc(cmd *cobra.Command, args []string) error {
	c, err := container.NewContainer(root.Cfg)
	if err != nil {
		return err
	}
	settings := c.GetSettings()

	if last4 == "" && name == "" {
		if len(settings.BankAccounts) == 0 {
			root.Log.Info("No bank accounts registered")
			return nil
		}
		for _, acct := range settings.BankAccounts {
			root.Log.Infof("%s -> %s", acct.Last4, acct.Name)
		}
		return nil
	}

	if last4 == "" || name == "" {
		return fmt.Errorf("--last4 and --name must be given together")
	}

	settings.BankAccounts = append(settings.BankAccounts, models.BankAccountMapping{
		Last4: last4,
		Name:  name,
	})
	if err := c.GetFileStore().SaveSettings(settings); err != nil {
		return err
	}
	root.Log.Infof("Registered account %s as %q", last4, name)
	return nil
}
