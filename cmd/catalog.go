package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [arch]",
	Short: "List the architectures, or the machines and devices known for one architecture.",
	Args:  cobra.RangeArgs(0, 1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			for _, a := range catalog.Architectures() {
				fmt.Println(a)
			}

			return
		}

		c := catalog.For(catalog.Architecture(args[0]))
		if c.Machines.Len() == 0 {
			slog.Error("Unknown architecture", "arch", args[0])
			os.Exit(1)
		}

		printSet("CPUs", c.CPUs)
		printSet("CPU flags", c.CPUFlags)
		printSet("Machines", c.Machines)
		printSet("Display devices", c.DisplayDevices)
		printSet("Network devices", c.NetworkDevices)
		printSet("Sound devices", c.SoundDevices)
		printSet("Serial devices", c.SerialDevices)
	},
}

func printSet[T ~string](title string, s catalog.Set[T]) {
	if s.Len() == 0 {
		return
	}

	fmt.Printf("%v:\n", title)
	for _, v := range s.All() {
		var marks []string
		if v == s.Default() {
			marks = append(marks, "default")
		}

		if p := s.Pretty(v); p != string(v) {
			marks = append(marks, p)
		}

		if len(marks) > 0 {
			fmt.Printf("  %v (%v)\n", v, strings.Join(marks, ", "))
		} else {
			fmt.Printf("  %v\n", v)
		}
	}
}
