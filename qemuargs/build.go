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

// Package qemuargs compiles a machine description into the argument vector
// of qemu-system-<arch>.
package qemuargs

import (
	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/config"
	"github.com/AlexSSD7/qargs/host"
	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/AlexSSD7/qargs/storage"
	"github.com/spf13/afero"
)

// BuildContext carries everything besides the machine description that the
// output depends on.
type BuildContext struct {
	Host  host.Info
	Paths storage.Paths

	// FS is used for existence checks only. Nil means the OS file system.
	FS afero.Fs

	// AudioBackend overrides the -audiodev driver. Empty selects "spice".
	AudioBackend string

	// RemoteDisplay is set when the display is streamed to another machine,
	// which rules out GL devices.
	RemoteDisplay bool

	DisableFileLocking bool

	// USBRedirection is set when the emulator is built with usbredir.
	USBRedirection bool
}

type Result struct {
	Binary string
	Args   []string

	// Tokens is the emission log Args was reduced from.
	Tokens []qemucli.Token
}

// Build compiles cfg. It never fails: settings that cannot be expressed are
// omitted.
func Build(cfg *config.Config, ctx BuildContext) Result {
	f := newFacts(cfg, ctx)

	b := qemucli.NewBuilder()
	for _, step := range f.steps() {
		step(b)
		b.End()
	}

	tokens := b.Tokens()

	return Result{
		Binary: f.arch.QEMUSystemBinary(),
		Args:   qemucli.Reduce(tokens),
		Tokens: tokens,
	}
}

// steps lists the builders in emission order. Later arguments win in QEMU,
// so user arguments go last.
func (f *facts) steps() []func(*qemucli.Builder) {
	return []func(*qemucli.Builder){
		f.resourceArgs,
		f.spiceArgs,
		f.networkArgs,
		f.displayArgs,
		f.serialArgs,
		f.cpuArgs,
		f.machineArgs,
		f.architectureArgs,
		f.soundArgs,
		f.usbArgs,
		f.otherInputArgs,
		f.driveArgs,
		f.sharingArgs,
		f.miscArgs,
		f.userArgs,
	}
}

// facts are derived once per build and shared read-only by all builders.
type facts struct {
	cfg *config.Config
	ctx BuildContext
	fs  afero.Fs

	arch    catalog.Architecture
	machine catalog.Machine

	accel    bool
	usb      bool
	usbXHCI  bool
	ps2      bool
	gl       bool
	userArgv []string
}

func newFacts(cfg *config.Config, ctx BuildContext) *facts {
	f := &facts{
		cfg:     cfg,
		ctx:     ctx,
		fs:      ctx.FS,
		arch:    cfg.System.Architecture,
		machine: cfg.System.Target,
	}

	if f.fs == nil {
		f.fs = afero.NewOsFs()
	}

	f.accel = cfg.QEMU.HasHypervisor && ctx.Host.HasHypervisor && f.arch == ctx.Host.Arch && accelName(ctx.Host.OS) != ""
	f.usb = cfg.Input.USBBusSupport != config.USBBusDisabled && cfg.Input.USBBusSupport != "" &&
		f.arch.HasUSBSupport() && f.machine.HasUSBSupport()
	f.usbXHCI = f.usb && f.machine.IsVirt()
	f.ps2 = cfg.QEMU.HasPS2Controller && f.machine.HasPS2Controller()
	f.userArgv = qemucli.SplitAll(cfg.QEMU.AdditionalArguments)

	if !ctx.RemoteDisplay {
		for _, d := range cfg.Displays {
			if isGLDevice(d.Hardware) {
				f.gl = true
				break
			}
		}
	}

	return f
}

func (f *facts) exists(path string) bool {
	ok, err := afero.Exists(f.fs, path)
	return err == nil && ok
}

// deviceSuffix is the bus flavour of virtio devices.
func (f *facts) deviceSuffix() string {
	if f.arch.UsesCCW() {
		return "-ccw"
	}

	return "-pci"
}

func (f *facts) fileLockingHint(b *qemucli.Builder) {
	if f.ctx.DisableFileLocking {
		b.Field("file.locking=off")
	}
}
