package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qargs",
	Short: "Compile virtual machine descriptions into QEMU invocations.",
	Long: `Qargs reads a virtual machine description (YAML, JSON or TOML) and prints the exact, ordered argument ` +
		`list for qemu-system-<arch>. The output depends on the description and on the detected host only, so the ` +
		`same description on the same host always yields the same invocation.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verboseFlag {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	dataDirFlag     string
	resourceDirFlag string
	verboseFlag     bool
)

func defaultDataDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "qargs")
}

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(subnetCmd)
	rootCmd.AddCommand(hostCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(copyrightCmd)

	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", defaultDataDir(), "Specifies the directory holding run sockets and per-machine cache files.")
	rootCmd.PersistentFlags().StringVar(&resourceDirFlag, "resource-dir", "", "Specifies the QEMU resource directory passed with -L. Well-known install locations are searched when empty.")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enables debug logging.")
}
