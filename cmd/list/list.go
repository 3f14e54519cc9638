// Package list handles printing the full ledger
package list

import (
	"fjacquet/weekledger/cmd/common"
	"fjacquet/weekledger/cmd/root"
	"fjacquet/weekledger/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List every expense in the ledger",
	Long: `List every expense in the ledger, newest first, together with
per-category totals over the whole ledger.`,
	Run: listFunc,
}

func listFunc(cmd *cobra.Command, args []string) {
	svc := root.AppContainer.GetService()
	view := report.NewLedgerView(svc.Expenses(), root.AppConfig.Currency.Symbol)
	common.Emit(root.AppContainer.GetGenerator(), view, root.SharedFlags.Format, root.SharedFlags.Output, root.Log)
}
