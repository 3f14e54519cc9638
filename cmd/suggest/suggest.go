// Package suggest handles category suggestions for expense descriptions
package suggest

import (
	"fmt"

	"fjacquet/weekledger/cmd/root"
	"fjacquet/weekledger/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a category for an expense description",
	Long: `Suggest a category for an expense description using learned mappings,
built-in keywords and, when enabled, the Gemini model.`,
	Run: suggestFunc,
}

func init() {
	// Suggest command flags
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Expense description to categorize")
	_ = Cmd.MarkFlagRequired("description")
}

func suggestFunc(cmd *cobra.Command, args []string) {
	category, matched := root.AppContainer.GetSuggester().Suggest(root.Description)
	if !matched {
		root.Log.Debug("No confident match, falling back to Other",
			logging.Field{Key: logging.FieldDescription, Value: root.Description})
	}
	fmt.Println(category)
}
