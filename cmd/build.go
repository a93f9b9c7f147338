package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/AlexSSD7/qargs/qemuargs"
	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var buildCmd = &cobra.Command{
	Use:   "build <config>",
	Short: "Compile a machine description into a QEMU command line.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfigOrExit(args[0])
		info := detectHost()
		store := createStoreOrExit()

		paths, err := store.Paths(cfg.Information.UUID, resourceDirFlag)
		if err != nil {
			slog.Error("Failed to prepare run directories", "error", err.Error())
			os.Exit(1)
		}

		ctx := qemuargs.BuildContext{
			Host:  info,
			Paths: paths,
			FS:    osFs,
		}
		applyBuildFlags(&ctx)

		if !buildSkipPlaceholders {
			for _, d := range cfg.Drives {
				if d.ImagePath != "" || d.IsRemovable() {
					continue
				}

				_, err := store.TouchPlaceholder(paths.Placeholder(d.ID))
				if err != nil {
					slog.Error("Failed to create placeholder image", "drive", d.ID, "error", err.Error())
					os.Exit(1)
				}
			}
		}

		var res qemuargs.Result
		if buildTPMEmulatorFlag {
			var ok bool
			res, ok = qemuargs.BuildTPMEmulator(cfg, ctx)
			if !ok {
				slog.Error("Machine has no TPM device", "target", cfg.System.Target)
				os.Exit(1)
			}

			_, err := store.TouchPlaceholder(qemuargs.TPMStatePath(cfg, ctx))
			if err != nil {
				slog.Error("Failed to create TPM state file", "error", err.Error())
				os.Exit(1)
			}
		} else {
			res = qemuargs.Build(cfg, ctx)
		}

		slog.Debug("Built invocation", "binary", res.Binary, "args", len(res.Args), "tokens", len(res.Tokens))

		if buildTokensFlag {
			for _, t := range res.Tokens {
				fmt.Println(t.String())
			}

			return
		}

		if shellOutput() {
			fmt.Println(qemucli.CommandLine(res.Binary, res.Args))
			return
		}

		fmt.Println(res.Binary)
		for _, a := range res.Args {
			fmt.Println(a)
		}
	},
}

func shellOutput() bool {
	switch {
	case buildShellFlag:
		return true
	case buildLinesFlag:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func init() {
	initBuildFlags(buildCmd.Flags())
	buildCmd.MarkFlagsMutuallyExclusive("shell", "lines")
}
