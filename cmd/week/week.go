// Package week handles the weekly expense summary
package week

import (
	"fjacquet/weekledger/cmd/common"
	"fjacquet/weekledger/cmd/root"
	"fjacquet/weekledger/internal/dateutils"
	"fjacquet/weekledger/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the week command
var Cmd = &cobra.Command{
	Use:   "week",
	Short: "Show the expenses of one Monday-to-Sunday week",
	Long: `Show the expenses that fall into one Monday-to-Sunday week together
with per-category totals. The week containing today is shown unless
--date, --next or --prev select another one.`,
	Run: weekFunc,
}

func init() {
	// Week command flags
	Cmd.Flags().StringVarP(&root.Date, "date", "t", "", "Show the week containing this date (YYYY-MM-DD)")
	Cmd.Flags().IntVar(&root.NextWeeks, "next", 0, "Shift the shown week N weeks forward")
	Cmd.Flags().IntVar(&root.PrevWeeks, "prev", 0, "Shift the shown week N weeks back")
}

func weekFunc(cmd *cobra.Command, args []string) {
	svc := root.AppContainer.GetService()

	if root.Date != "" {
		anchor, err := dateutils.ParseDate(root.Date)
		if err != nil {
			root.Log.Fatalf("Invalid date: %v", err)
		}
		svc.SetAnchor(anchor)
	}
	for i := 0; i < root.NextWeeks; i++ {
		svc.NextWeek()
	}
	for i := 0; i < root.PrevWeeks; i++ {
		svc.PreviousWeek()
	}

	view := report.NewWeekView(svc.Window(), svc.WeekExpenses(), svc.WeekTotals(), root.AppConfig.Currency.Symbol)
	common.Emit(root.AppContainer.GetGenerator(), view, root.SharedFlags.Format, root.SharedFlags.Output, root.Log)
}
