package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rdesai/drill/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [bank-id]",
	Short: "Erase recorded progress for one bank, or all banks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.LedgerRepo()
		ctx := cmd.Context()

		var targets []string
		if len(args) == 1 {
			targets = args
		} else {
			targets, err = repo.Banks(ctx)
			if err != nil {
				return fmt.Errorf("list stored banks: %w", err)
			}
			if len(targets) == 0 {
				fmt.Println("No recorded progress to erase.")
				return nil
			}
		}

		if !yes {
			fmt.Printf("This erases progress for: %s\nContinue? [y/N] ", strings.Join(targets, ", "))
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		for _, id := range targets {
			if err := repo.Delete(ctx, id); err != nil {
				return fmt.Errorf("reset %s: %w", id, err)
			}
			fmt.Println("Erased progress for", id)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
