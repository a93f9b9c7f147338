package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/AlexSSD7/qargs/qemuargs"
	"github.com/spf13/cobra"
)

var subnetCmd = &cobra.Command{
	Use:   "subnet <address[/mask]>",
	Short: "Show the DHCP range derived from a guest address.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, ok := qemuargs.ComputeSubnet(args[0])
		if !ok {
			slog.Error("Malformed address", "value", args[0])
			os.Exit(1)
		}

		fmt.Printf("first: %v\nlast:  %v\nmask:  %v\n", s.First, s.Last, s.Mask)
	},
}
