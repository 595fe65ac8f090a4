// Package main provides the entry point for the sms-ledger CLI application.
package main

import (
	"os"

	"fjacquet/sms-ledger/cmd/accounts"
	"fjacquet/sms-ledger/cmd/extract"
	"fjacquet/sms-ledger/cmd/root"
	synccmd "fjacquet/sms-ledger/cmd/sync"
)

func main() {
	root.Cmd.AddCommand(synccmd.Cmd)
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(accounts.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		root.Log.Error(err)
		os.Exit(1)
	}
}
