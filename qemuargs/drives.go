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

package qemuargs

import (
	"strings"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/config"
	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/AlexSSD7/qargs/utils"
)

// maxSerialLen is the longest serial virtio-blk and NVMe accept.
const maxSerialLen = 20

const bootCounterKey = "boot"

// busAllocator hands out unit, bus and boot numbers while the drive list is
// walked. It lives for a single driveArgs call.
type busAllocator struct {
	next map[string]int

	// floppies holds the drives of floppy controller fdc not yet emitted.
	floppies []floppyUnit
	fdc      int
}

var floppyBootProps = [2]string{"bootindexA", "bootindexB"}

type floppyUnit struct {
	driveID string
	boot    int
	hasBoot bool
}

func newBusAllocator() *busAllocator {
	return &busAllocator{next: make(map[string]int)}
}

func (a *busAllocator) take(key string) int {
	n := a.next[key]
	a.next[key] = n + 1

	return n
}

// bootPrioritySuppressed reports the one case in which drives get no
// bootindex: OpenFirmware on PPC machines already has a boot device
// selected with -prom-env, and bootindex would override it.
func bootPrioritySuppressed(arch catalog.Architecture, userArgv []string) bool {
	if !arch.IsPPC() {
		return false
	}

	for i := 0; i+1 < len(userArgv); i++ {
		if userArgv[i] == "-prom-env" && strings.HasPrefix(userArgv[i+1], "boot-device=") {
			return true
		}
	}

	return false
}

// ideAddress maps the n-th IDE drive to a bus and unit.
func ideAddress(m catalog.Machine, n int) (int, int) {
	if m.UsesSingleUnitIDE() {
		return n, 0
	}

	return n / 2, n % 2
}

func (f *facts) scsiController() string {
	switch {
	case f.arch.UsesCCW():
		return "virtio-scsi-ccw"
	case f.machine.IsVirt():
		return "virtio-scsi-pci"
	default:
		return "lsi53c895a"
	}
}

func driveSerial(d config.Drive) string {
	s := d.Serial
	if s == "" {
		s = d.ID
	}

	return qemucli.EscapePath(utils.TrimLen(s, maxSerialLen))
}

func (f *facts) driveArgs(b *qemucli.Builder) {
	alloc := newBusAllocator()
	suppressBoot := bootPrioritySuppressed(f.arch, f.userArgv)

	for _, d := range f.cfg.Drives {
		switch d.ImageType {
		case config.ImageTypeDisk, config.ImageTypeCD:
			f.driveArg(b, d, alloc, suppressBoot)
		case config.ImageTypeBIOS, config.ImageTypeKernel, config.ImageTypeInitrd, config.ImageTypeDTB:
			f.bootImageArg(b, d)
		}
	}

	flushFloppyController(b, alloc)
}

// flushFloppyController emits the pending isa-fdc controller followed by
// its drives. Floppy boot priorities are properties of the controller
// (bootindexA, bootindexB), so it is written once both units are known.
func flushFloppyController(b *qemucli.Builder, alloc *busAllocator) {
	if len(alloc.floppies) == 0 {
		return
	}

	controller := "fdc" + utils.IntToStr(alloc.fdc)

	b.Option("device")
	b.Append("isa-fdc")
	b.Prop("id", controller)
	for i, u := range alloc.floppies {
		if u.hasBoot {
			b.Prop(floppyBootProps[i], utils.IntToStr(u.boot))
		}
	}
	b.End()

	for i, u := range alloc.floppies {
		b.Option("device")
		b.Append("floppy")
		b.Prop("unit", utils.IntToStr(i))
		b.Prop("bus", controller+".0")
		b.Prop("drive", u.driveID)
		b.End()
	}

	alloc.floppies = nil
}

var bootImageOptions = map[config.ImageType]string{
	config.ImageTypeBIOS:   "bios",
	config.ImageTypeKernel: "kernel",
	config.ImageTypeInitrd: "initrd",
	config.ImageTypeDTB:    "dtb",
}

// bootImageArg emits firmware and direct kernel boot images. Images that do
// not exist are skipped.
func (f *facts) bootImageArg(b *qemucli.Builder, d config.Drive) {
	if d.IsExternal || d.ImagePath == "" || !f.exists(d.ImagePath) {
		return
	}

	b.Add(qemucli.MustNewPathArg(bootImageOptions[d.ImageType], d.ImagePath))
}

func (f *facts) driveArg(b *qemucli.Builder, d config.Drive, alloc *busAllocator, suppressBoot bool) {
	removable := d.IsRemovable()
	driveID := "drive" + d.ID

	bootIndex := func(prop string) {
		if !suppressBoot {
			b.Prop(prop, utils.IntToStr(alloc.take(bootCounterKey)))
		}
	}

	// The -drive interface hint. Drives attached through -device use none.
	hint := config.DriveInterfaceNone

	switch d.Interface {
	case config.DriveInterfaceIDE:
		bus, unit := ideAddress(f.machine, alloc.take(string(d.Interface)))

		b.Option("device")
		if removable {
			b.Append("ide-cd")
		} else {
			b.Append("ide-hd")
		}
		b.Prop("bus", "ide."+utils.IntToStr(bus))
		b.Prop("unit", utils.IntToStr(unit))
		b.Prop("drive", driveID)
		bootIndex("bootindex")
		b.End()
	case config.DriveInterfaceSCSI:
		n := alloc.take(string(d.Interface))

		// SPARC machines have an on-board ESP controller.
		bus := "scsi"
		if !f.arch.IsSparc() {
			bus = "scsi0"
			if n == 0 {
				b.Arg("device", f.scsiController()+",id=scsi0")
			}
		}

		b.Option("device")
		if removable {
			b.Append("scsi-cd")
		} else {
			b.Append("scsi-hd")
		}
		b.Prop("bus", bus+".0")
		b.Field("channel=0")
		b.Prop("scsi-id", utils.IntToStr(n))
		b.Prop("drive", driveID)
		bootIndex("bootindex")
		b.End()
	case config.DriveInterfaceVirtIO:
		b.Option("device")
		b.Append("virtio-blk" + f.deviceSuffix())
		b.Prop("drive", driveID)
		b.Prop("serial", driveSerial(d))
		bootIndex("bootindex")
		b.End()
	case config.DriveInterfaceNVMe:
		b.Option("device")
		b.Append("nvme")
		b.Prop("drive", driveID)
		b.Prop("serial", driveSerial(d))
		bootIndex("bootindex")
		b.End()
	case config.DriveInterfaceUSB:
		b.Option("device")
		b.Append("usb-storage")
		b.Prop("drive", driveID)
		b.Prop("removable", utils.OnOff(removable))
		bootIndex("bootindex")
		if f.usbXHCI {
			b.Field("bus=usb-bus.0")
		}
		b.End()
	case config.DriveInterfaceFloppy:
		if !f.machine.IsPC() {
			hint = d.Interface
			break
		}

		n := alloc.take(string(d.Interface))

		u := floppyUnit{driveID: driveID, hasBoot: !suppressBoot}
		if u.hasBoot {
			u.boot = alloc.take(bootCounterKey)
		}

		// One controller serves two drives.
		alloc.fdc = n / 2
		alloc.floppies = append(alloc.floppies, u)
		if n%2 == 1 {
			flushFloppyController(b, alloc)
		}
	default:
		hint = d.Interface
	}

	b.Option("drive")
	b.Prop("if", string(hint))

	if removable && d.Interface != config.DriveInterfaceFloppy {
		b.Field("media=cdrom")
	} else {
		b.Field("media=disk")
	}

	b.Prop("id", driveID)

	path := d.ImagePath
	if path == "" && !removable {
		path = f.ctx.Paths.Placeholder(d.ID)
	}

	if path != "" {
		b.PathProp("file", path)
		f.fileLockingHint(b)
	}

	if d.IsReadOnly || d.ImageType == config.ImageTypeCD {
		b.Field("readonly=on")
	} else if !removable {
		b.Field("discard=unmap")
		b.Field("detect-zeroes=unmap")
	}

	b.End()
}
