// Package commands provides the pricing tool's command line subcommands.
// They attach to the PocketBase root command so one binary serves the web
// UI and the CLI.
package commands

import (
	"github.com/spf13/cobra"

	"pricingtool/services"
)

// LedgerFunc returns the ledger to operate on. It is called when a command
// runs, after flags have been parsed.
type LedgerFunc func() *services.Ledger

// Register adds the quote and ledger commands to root.
func Register(root *cobra.Command, ledger LedgerFunc, currency string) {
	root.AddCommand(NewQuoteCommand(currency))
	root.AddCommand(NewLedgerCommand(ledger, currency))
}
