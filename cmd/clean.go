package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the Qargs data directory, including placeholder images and run sockets.",
	Run: func(cmd *cobra.Command, args []string) {
		store := createStoreOrExit()

		rmPath := store.DataDirPath()

		if !cleanYesFlag {
			fmt.Fprintf(os.Stderr, "Will permanently remove '%v'. Proceed? (y/n) > ", rmPath)

			answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				slog.Error("Failed to read answer", "error", err.Error())
				os.Exit(1)
			}

			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Fprintf(os.Stderr, "Aborted.\n")
				os.Exit(2)
			}
		}

		err := osFs.RemoveAll(rmPath)
		if err != nil {
			slog.Error("Failed to remove data directory", "error", err.Error(), "path", rmPath)
			os.Exit(1)
		}

		slog.Info("Deleted data directory", "path", rmPath)
	},
}

var cleanYesFlag bool

func init() {
	cleanCmd.Flags().BoolVarP(&cleanYesFlag, "yes", "y", false, "Skips the confirmation prompt.")
}
