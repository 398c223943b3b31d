package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rdesai/drill/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update drill to the latest release",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only check whether a newer release exists")
	updateCmd.Flags().String("tag", "", "Install a specific release tag instead of the latest")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	checkOnly, _ := cmd.Flags().GetBool("check")
	tag, _ := cmd.Flags().GetString("tag")

	checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))
	current := resolveVersion()

	if checkOnly {
		result, err := checker.Check(cmd.Context(), &selfupdate.CheckInput{Version: current})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !result.UpdateAvailable {
			fmt.Printf("drill %s is up to date.\n", current)
			return nil
		}
		fmt.Printf("drill %s is available (running %s).\nRun `drill update` to install it.\n",
			result.LatestVersion, current)
		return nil
	}

	err := checker.Apply(cmd.Context(), current, tag, func(line string) {
		fmt.Println(line)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, selfupdate.ErrDevBuild):
		fmt.Println("Cannot update a development build. Install a release build first.")
		return nil
	case errors.Is(err, selfupdate.ErrAlreadyLatest):
		fmt.Println("Already running the latest version.")
		return nil
	case os.IsPermission(err):
		return fmt.Errorf("%w\n\nTry running: sudo drill update", err)
	default:
		return err
	}
}
