package cmd

import (
	"fmt"

	"github.com/rdesai/drill/internal/app"
	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, discovers banks, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	return app.Run(app.Options{
		Banks: banks,
		Store: st,
	})
}
