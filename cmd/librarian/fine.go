package cmd

import (
	"fmt"
	"time"

	"github.com/kerbaras/librarian/pkg/data"
	"github.com/spf13/cobra"
)

var fineCmd = &cobra.Command{
	Use:   "fine",
	Short: "Compute the overdue fine for a borrow date",
	Long: `Compute the fine owed on a book borrowed on a given date.

Examples:
  librarian fine --borrowed 2024-01-01
  librarian fine --borrowed 2024-01-01 --on 2024-02-01`,
	Run: func(cmd *cobra.Command, args []string) {
		borrowed, _ := cmd.Flags().GetString("borrowed")
		on, _ := cmd.Flags().GetString("on")

		if _, ok := data.ParseDate(borrowed); !ok {
			cobra.CheckErr(fmt.Errorf("invalid borrow date %q, expected YYYY-MM-DD", borrowed))
		}

		now := time.Now()
		if on != "" {
			t, ok := data.ParseDate(on)
			if !ok {
				cobra.CheckErr(fmt.Errorf("invalid date %q, expected YYYY-MM-DD", on))
			}
			now = t
		}

		policy := cfg.FinePolicy()
		overdue := policy.OverdueDays(borrowed, now)
		if overdue == 0 {
			fmt.Printf("✅ Not overdue (borrow period is %d days)\n", policy.BorrowPeriodDays)
			return
		}
		fmt.Printf("⚠️  %d days overdue: $%d\n", overdue, policy.Calculate(borrowed, now))
	},
}

func init() {
	fineCmd.Flags().StringP("borrowed", "b", "", "Borrow date (YYYY-MM-DD)")
	fineCmd.Flags().String("on", "", "Date to compute the fine on (default: today)")
	fineCmd.MarkFlagRequired("borrowed")
}
