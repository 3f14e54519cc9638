// Package remove handles deleting an expense from the ledger
package remove

import (
	"fmt"

	"fjacquet/weekledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the remove command
var Cmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an expense by its identifier",
	Long: `Remove an expense from the ledger. Removing an identifier that does
not exist leaves the ledger untouched.`,
	Run: removeFunc,
}

func init() {
	// Remove command flags
	Cmd.Flags().StringVar(&root.ExpenseID, "id", "", "Identifier of the expense to remove")
	_ = Cmd.MarkFlagRequired("id")
}

func removeFunc(cmd *cobra.Command, args []string) {
	if root.AppContainer.GetService().DeleteExpense(root.ExpenseID) {
		fmt.Printf("Removed expense %s\n", root.ExpenseID)
		return
	}
	fmt.Printf("No expense with id %s\n", root.ExpenseID)
}
