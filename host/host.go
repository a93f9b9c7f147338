// Qargs - A compiler from virtual machine descriptions to QEMU invocations.
// Copyright (c) 2023 The Qargs Authors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package host

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/cpu"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// Family identifies the host CPU generation for picking a guest CPU model.
type Family string

const (
	FamilyUnknown   Family = ""
	FamilyApple     Family = "apple"
	FamilyHaswell   Family = "haswell"
	FamilyBroadwell Family = "broadwell"
	FamilySkylake   Family = "skylake"
	FamilyIcelake   Family = "icelake"
	FamilyZen       Family = "zen"
)

// Info holds the host facts the compiler depends on. Zero counts mean
// unknown.
type Info struct {
	OS   string
	Arch catalog.Architecture

	CPUFamily Family
	CPUModel  string

	PhysicalCores      int
	LogicalCores       int
	PerformanceCores   int
	PerformanceThreads int

	PageSize int

	// OSVersion is the marketing version on macOS and the kernel release
	// elsewhere.
	OSVersion string

	HasHypervisor     bool
	HasJITEntitlement bool
	SupportsTSO       bool
	Supports3D        bool
	SupportsPTY       bool
}

func IsWindows() bool {
	return runtime.GOOS == "windows"
}

func IsMacOS() bool {
	return runtime.GOOS == "darwin"
}

// ArchFromGOARCH maps Go's architecture names to QEMU's.
func ArchFromGOARCH(goarch string) catalog.Architecture {
	switch goarch {
	case "amd64":
		return catalog.ArchX86_64
	case "386":
		return catalog.ArchI386
	case "arm64":
		return catalog.ArchAarch64
	case "arm":
		return catalog.ArchARM
	case "ppc64", "ppc64le":
		return catalog.ArchPPC64
	case "riscv64":
		return catalog.ArchRISCV64
	case "s390x":
		return catalog.ArchS390X
	case "mips":
		return catalog.ArchMIPS
	case "mipsle":
		return catalog.ArchMIPSEL
	case "mips64":
		return catalog.ArchMIPS64
	case "mips64le":
		return catalog.ArchMIPS64EL
	default:
		return catalog.Architecture(goarch)
	}
}

// Detect identifies the running host. Partial results are returned along
// with every error that occurred on the way.
func Detect(fs afero.Fs) (Info, error) {
	info := Info{
		OS:                runtime.GOOS,
		Arch:              ArchFromGOARCH(runtime.GOARCH),
		PageSize:          os.Getpagesize(),
		HasJITEntitlement: true,
		SupportsPTY:       !IsWindows(),
		Supports3D:        IsMacOS() || runtime.GOOS == "linux",
	}

	var retErr error

	stats, err := cpu.Info()
	if err != nil {
		retErr = multierr.Append(retErr, errors.Wrap(err, "get cpu info"))
	} else if len(stats) > 0 {
		s := stats[0]
		info.CPUModel = strings.TrimSpace(s.ModelName)
		info.CPUFamily = ClassifyFamily(info.Arch, s.VendorID, s.Family, s.Model, s.ModelName)
	}

	info.PhysicalCores, err = cpu.Counts(false)
	if err != nil {
		retErr = multierr.Append(retErr, errors.Wrap(err, "count physical cores"))
	}

	info.LogicalCores, err = cpu.Counts(true)
	if err != nil {
		retErr = multierr.Append(retErr, errors.Wrap(err, "count logical cores"))
	}

	info.PerformanceCores, info.PerformanceThreads = performanceCores()

	info.OSVersion, err = osVersion()
	if err != nil {
		retErr = multierr.Append(retErr, errors.Wrap(err, "get os version"))
	}

	info.HasHypervisor, err = hasHypervisor(fs)
	if err != nil {
		retErr = multierr.Append(retErr, errors.Wrap(err, "check hypervisor"))
	}

	info.SupportsTSO = IsMacOS() && info.Arch == catalog.ArchAarch64

	return info, retErr
}

// ClassifyFamily maps CPUID style identification to a Family.
func ClassifyFamily(arch catalog.Architecture, vendor, family, model, modelName string) Family {
	if arch == catalog.ArchAarch64 {
		if vendor == "Apple" || strings.HasPrefix(modelName, "Apple") {
			return FamilyApple
		}

		return FamilyUnknown
	}

	fam, err := strconv.Atoi(family)
	if err != nil {
		return FamilyUnknown
	}

	switch vendor {
	case "AuthenticAMD", "HygonGenuine":
		// 0x17 and later are Zen cores.
		if fam >= 0x17 {
			return FamilyZen
		}
	case "GenuineIntel":
		if fam != 6 {
			return FamilyUnknown
		}

		m, err := strconv.Atoi(model)
		if err != nil {
			return FamilyUnknown
		}

		return intelFamilies[m]
	}

	return FamilyUnknown
}

var intelFamilies = map[int]Family{
	60: FamilyHaswell, 63: FamilyHaswell, 69: FamilyHaswell, 70: FamilyHaswell,
	61: FamilyBroadwell, 71: FamilyBroadwell, 79: FamilyBroadwell, 86: FamilyBroadwell,
	78: FamilySkylake, 85: FamilySkylake, 94: FamilySkylake, 142: FamilySkylake, 158: FamilySkylake,
	165: FamilySkylake, 166: FamilySkylake,
	106: FamilyIcelake, 108: FamilyIcelake, 125: FamilyIcelake, 126: FamilyIcelake, 140: FamilyIcelake,
	141: FamilyIcelake, 143: FamilyIcelake, 151: FamilyIcelake, 154: FamilyIcelake, 167: FamilyIcelake,
}

// VersionAtLeast compares dotted numeric versions. Missing components count
// as zero and an unparsable version is never at least anything.
func VersionAtLeast(version string, min string) bool {
	have, ok := parseVersion(version)
	if !ok {
		return false
	}

	want, ok := parseVersion(min)
	if !ok {
		return false
	}

	for len(have) < len(want) {
		have = append(have, 0)
	}

	for i := range want {
		if have[i] != want[i] {
			return have[i] > want[i]
		}
	}

	return true
}

func parseVersion(s string) ([]int, bool) {
	if s == "" {
		return nil, false
	}

	// Kernel releases carry suffixes such as "6.1.0-13-amd64".
	s, _, _ = strings.Cut(s, "-")

	var out []int
	for _, part := range strings.Split(s, ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}

		out = append(out, n)
	}

	return out, true
}
