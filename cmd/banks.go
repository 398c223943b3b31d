package cmd

import (
	"fmt"
	"strings"

	"github.com/rdesai/drill/internal/bank"
	"github.com/spf13/cobra"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List available question banks",
	RunE: func(cmd *cobra.Command, args []string) error {
		banks, err := bank.Discover()
		if err != nil {
			return fmt.Errorf("load question banks: %w", err)
		}

		dir, err := bank.DefaultBanksDir()
		if err != nil {
			return err
		}

		fmt.Printf("%-24s  %-32s  %s\n", "ID", "Name", "Questions")
		fmt.Println(strings.Repeat("─", 68))
		for _, b := range banks {
			name := b.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}
			fmt.Printf("%-24s  %-32s  %d\n", b.ID, name, len(b.Questions))
		}
		fmt.Printf("\n%d banks (drop .json files into %s to add more)\n", len(banks), dir)
		return nil
	},
}
