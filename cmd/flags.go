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

package cmd

import (
	"github.com/AlexSSD7/qargs/qemuargs"
	"github.com/spf13/pflag"
)

var (
	buildShellFlag          bool
	buildLinesFlag          bool
	buildTokensFlag         bool
	buildAudioBackendFlag   string
	buildRemoteDisplayFlag  bool
	buildNoFileLockingFlag  bool
	buildUSBRedirectionFlag bool
	buildSkipPlaceholders   bool
	buildTPMEmulatorFlag    bool
)

func initBuildFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&buildShellFlag, "shell", false, "Prints a single shell-quoted command line. This is the default on a terminal.")
	flags.BoolVar(&buildLinesFlag, "lines", false, "Prints the binary and then one argument per line. This is the default when the output is not a terminal.")
	flags.BoolVar(&buildTokensFlag, "tokens", false, "Prints the emission log (continuation and boundary tokens) instead of the arguments.")
	flags.StringVar(&buildAudioBackendFlag, "audio-backend", "", `Overrides the -audiodev driver. Defaults to "spice".`)
	flags.BoolVar(&buildRemoteDisplayFlag, "remote-display", false, "Assumes the display is streamed to another machine. GL devices are replaced with their plain counterparts.")
	flags.BoolVar(&buildNoFileLockingFlag, "no-file-locking", false, "Disables QEMU image file locking.")
	flags.BoolVar(&buildUSBRedirectionFlag, "usb-redirection", true, "Assumes the emulator is built with usbredir support.")
	flags.BoolVar(&buildSkipPlaceholders, "skip-placeholders", false, "Does not create placeholder images for disks without an image path.")
	flags.BoolVar(&buildTPMEmulatorFlag, "tpm-emulator", false, "Prints the swtpm invocation that backs the TPM socket instead of the QEMU one.")
}

func applyBuildFlags(ctx *qemuargs.BuildContext) {
	ctx.AudioBackend = buildAudioBackendFlag
	ctx.RemoteDisplay = buildRemoteDisplayFlag
	ctx.DisableFileLocking = buildNoFileLockingFlag
	ctx.USBRedirection = buildUSBRedirectionFlag
}
