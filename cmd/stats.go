package cmd

import (
	"fmt"
	"strings"

	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/ledger"
	"github.com/rdesai/drill/internal/schedule"
	"github.com/rdesai/drill/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show performance stats for every bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		banks, err := bank.Discover()
		if err != nil {
			return fmt.Errorf("load question banks: %w", err)
		}

		repo := st.LedgerRepo()
		ctx := cmd.Context()

		fmt.Printf("%-24s  %9s  %8s  %7s  %8s  %4s\n",
			"Bank", "Questions", "Answered", "Correct", "Accuracy", "Due")
		fmt.Println(strings.Repeat("─", 72))

		for _, b := range banks {
			l, err := repo.Load(ctx, b.ID)
			if err != nil {
				return fmt.Errorf("load ledger for %s: %w", b.ID, err)
			}
			l.Sync(b.Questions)
			s := ledger.ComputeStats(l)
			due := len(schedule.DueForReview(b.Questions, l))

			name := b.Name
			if len(name) > 24 {
				name = name[:21] + "..."
			}
			fmt.Printf("%-24s  %9d  %8d  %7d  %7d%%  %4d\n",
				name, len(b.Questions), s.TotalAnswered, s.TotalCorrect,
				s.AccuracyRounded(), due)
		}
		return nil
	},
}
