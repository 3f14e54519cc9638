// Package add handles recording a new expense in the ledger
package add

import (
	"fmt"
	"strings"

	"fjacquet/weekledger/cmd/root"
	"fjacquet/weekledger/internal/currencyutils"
	"fjacquet/weekledger/internal/dateutils"
	"fjacquet/weekledger/internal/logging"
	"fjacquet/weekledger/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	Long: `Record a new expense in the ledger. The date defaults to today and the
category falls back to Other when none is given.`,
	Run: addFunc,
}

func init() {
	// Add command flags
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "What the money was spent on")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "Amount spent, e.g. 12.50")
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Expense category (default: Other)")
	Cmd.Flags().StringVarP(&root.Date, "date", "t", "", "Expense date in YYYY-MM-DD form (default: today)")
	Cmd.Flags().BoolVar(&root.UseSuggest, "suggest", false, "Suggest a category from the description when none is given")
	_ = Cmd.MarkFlagRequired("description")
	_ = Cmd.MarkFlagRequired("amount")
}

func addFunc(cmd *cobra.Command, args []string) {
	category := root.Category
	if category != "" {
		if _, ok := models.ParseCategory(category); !ok {
			names := make([]string, 0, len(models.Categories()))
			for _, c := range models.Categories() {
				names = append(names, c.String())
			}
			root.Log.Fatalf("Unknown category %q. Valid categories: %s", category, strings.Join(names, ", "))
		}
	} else if root.UseSuggest {
		if suggested, ok := root.AppContainer.GetSuggester().Suggest(root.Description); ok {
			category = suggested.String()
			root.Log.Info("Suggested a category",
				logging.Field{Key: logging.FieldDescription, Value: root.Description},
				logging.Field{Key: logging.FieldCategory, Value: category})
		}
	}

	date := root.Date
	if date == "" {
		date = dateutils.Today().String()
	}

	expense, err := root.AppContainer.GetService().AddExpense(root.Description, root.Amount, category, date)
	if err != nil {
		root.Log.Fatalf("Error recording expense: %v", err)
	}

	fmt.Printf("Recorded %s on %s: %s (%s)\n",
		currencyutils.FormatAmount(root.AppConfig.Currency.Symbol, expense.Amount),
		expense.Date, expense.Description, expense.Category)
}
