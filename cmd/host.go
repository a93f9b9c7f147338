package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Show the detected host facts the compiler depends on.",
	Run: func(cmd *cobra.Command, args []string) {
		info := detectHost()

		fmt.Printf("os:                  %v %v\n", info.OS, info.OSVersion)
		fmt.Printf("arch:                %v\n", info.Arch)
		fmt.Printf("cpu:                 %v (family %q)\n", info.CPUModel, info.CPUFamily)
		fmt.Printf("cores:               %v physical, %v logical\n", info.PhysicalCores, info.LogicalCores)
		if info.PerformanceCores > 0 {
			fmt.Printf("performance cores:   %v (%v threads)\n", info.PerformanceCores, info.PerformanceThreads)
		}
		fmt.Printf("page size:           %v\n", humanize.IBytes(uint64(info.PageSize)))
		fmt.Printf("hypervisor:          %v\n", info.HasHypervisor)
		fmt.Printf("tso:                 %v\n", info.SupportsTSO)
		fmt.Printf("3d acceleration:     %v\n", info.Supports3D)
		fmt.Printf("pty:                 %v\n", info.SupportsPTY)
	},
}
