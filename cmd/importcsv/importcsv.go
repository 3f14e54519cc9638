// Package importcsv handles bulk loading expenses from a CSV file
package importcsv

import (
	"fmt"
	"path/filepath"

	"fjacquet/weekledger/cmd/root"
	"fjacquet/weekledger/internal/common"
	"fjacquet/weekledger/internal/logging"
	"fjacquet/weekledger/internal/models"
	"fjacquet/weekledger/internal/report"
	"fjacquet/weekledger/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import expenses from a CSV file",
	Long: `Import expenses from a CSV file with date, description, category and
amount columns, the same layout the CSV export writes. Rows that fail
validation are logged and skipped.`,
	Run: importFunc,
}

func init() {
	// Import command flags
	Cmd.Flags().StringVarP(&root.InputFile, "input", "i", "", "CSV file to import")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) {
	inputFile, err := filepath.Abs(root.InputFile)
	if err != nil {
		root.Log.Fatalf("Error resolving input path: %v", err)
	}
	if err := validation.IsValidPath(inputFile); err != nil {
		root.Log.Fatalf("Error reading CSV file: %v", err)
	}

	rows, err := common.ReadCSVFile[report.Row](inputFile, root.Log)
	if err != nil {
		root.Log.Fatalf("Error reading CSV file: %v", err)
	}

	records := make([]models.Expense, 0, len(rows))
	for i, row := range rows {
		expense, buildErr := models.NewExpenseBuilder().
			WithDescription(row.Description).
			WithAmountString(row.Amount).
			WithCategoryString(row.Category).
			WithDateString(row.Date).
			Build()
		if buildErr != nil {
			root.Log.WithError(buildErr).Warn("Skipping invalid row",
				logging.Field{Key: "row", Value: i + 1})
			continue
		}
		records = append(records, expense)
	}

	imported := root.AppContainer.GetService().ImportExpenses(records)
	fmt.Printf("Imported %d of %d rows\n", imported, len(rows))
}
