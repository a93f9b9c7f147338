package qemuargs

import (
	"strings"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/config"
	"github.com/AlexSSD7/qargs/host"
	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/AlexSSD7/qargs/utils"
)

// highmemSafeMacOS is the first macOS release where highmem=on does not
// panic the host kernel.
const highmemSafeMacOS = "12.4"

// legacyIPAGranulePageSize is the host page size that needs a 4K IPA
// granule to keep guest memory aligned.
const legacyIPAGranulePageSize = 16384

func accelName(hostOS string) string {
	switch hostOS {
	case "darwin":
		return "hvf"
	case "linux":
		return "kvm"
	case "windows":
		return "whpx"
	default:
		return ""
	}
}

// appendDefaultProperty adds name=value unless props already sets name.
func appendDefaultProperty(props string, name string, value string) string {
	for _, p := range strings.Split(props, ",") {
		k, _, _ := strings.Cut(p, "=")
		if k == name {
			return props
		}
	}

	if props != "" {
		props += ","
	}

	return props + name + "=" + value
}

// isPCIPC reports i440fx and q35 machines, the PCs with a PCI bus.
func isPCIPC(m catalog.Machine) bool {
	return m.IsPC() && m != "isapc"
}

func (f *facts) hasSound(hw catalog.SoundDevice) bool {
	for _, s := range f.cfg.Sound {
		if s.Hardware == hw {
			return true
		}
	}

	return false
}

func (f *facts) machineProperties() string {
	props := f.cfg.QEMU.MachinePropertyOverride

	if isPCIPC(f.machine) {
		props = appendDefaultProperty(props, "vmport", "off")

		// Drop the i8042 when USB input replaces it.
		if f.usb && !f.cfg.QEMU.HasPS2Controller {
			props = appendDefaultProperty(props, "i8042", "off")
		}

		if f.hasSound("pcspk") {
			props = appendDefaultProperty(props, "pcspk-audiodev", audioID)
		}
	}

	if f.machine.IsVirt() && !f.arch.IsRISCV() {
		if f.ctx.Host.OS == "darwin" && !host.VersionAtLeast(f.ctx.Host.OSVersion, highmemSafeMacOS) {
			props = appendDefaultProperty(props, "highmem", "off")
		}

		// Windows on ARM needs EL2 under TCG.
		if f.arch == catalog.ArchAarch64 && !f.accel {
			props = appendDefaultProperty(props, "virtualization", "on")
		}
	}

	if f.machine.IsMac99() {
		props = appendDefaultProperty(props, "via", "pmu")

		if f.hasSound("screamer") {
			props = appendDefaultProperty(props, "audiodev", audioID)
		}
	}

	if f.machine.IsQ800() && f.hasSound("asc") {
		props = appendDefaultProperty(props, "audiodev", audioID)
	}

	return props
}

func (f *facts) machineArgs(b *qemucli.Builder) {
	b.Option("machine")
	b.Append(string(f.machine))
	b.Field(f.machineProperties())
	b.End()

	if f.accel {
		f.hardwareAccelArgs(b)
	} else {
		f.tcgAccelArgs(b)
	}
}

func (f *facts) hardwareAccelArgs(b *qemucli.Builder) {
	name := accelName(f.ctx.Host.OS)

	b.Option("accel")
	b.Append(name)

	switch name {
	case "whpx":
		b.Field("kernel-irqchip=off")
	case "hvf":
		if f.cfg.QEMU.HasTSO && f.ctx.Host.SupportsTSO {
			b.Field("tso=on")
		}

		if f.arch == catalog.ArchAarch64 && f.ctx.Host.PageSize == legacyIPAGranulePageSize {
			b.Prop("ipa-granule-size", "0x1000")
		}
	}

	b.End()
}

func (f *facts) tcgAccelArgs(b *qemucli.Builder) {
	sys := f.cfg.System

	b.Option("accel")
	b.Append("tcg")

	if sys.ForceMulticore {
		b.Field("thread=multi")
	}

	tbSize := sys.JITCacheSize
	if tbSize <= 0 {
		tbSize = sys.MemorySize / 4
	}

	if tbSize > 0 {
		b.Prop("tb-size", utils.IntToStr(tbSize))
	}

	// Without a JIT entitlement the code buffer must be mapped twice.
	if !f.ctx.Host.HasJITEntitlement {
		b.Field("split-wx=on")
	}

	b.End()
}

// hasCustomFirmware reports drives that replace the bundled UEFI image.
func (f *facts) hasCustomFirmware() bool {
	for _, d := range f.cfg.Drives {
		switch d.ImageType {
		case config.ImageTypeDisk, config.ImageTypeCD:
			if d.Interface == config.DriveInterfacePFlash {
				return true
			}
		case config.ImageTypeBIOS, config.ImageTypeKernel:
			return true
		}
	}

	return false
}

func (f *facts) architectureArgs(b *qemucli.Builder) {
	if f.arch.IsX86() {
		// Suspend to RAM is broken with both i440fx and q35.
		b.Add(qemucli.MustNewKeyValueArg("global", []qemucli.KeyValueArgItem{{Key: "PIIX4_PM.disable_s3", Value: "1"}}))
		b.Add(qemucli.MustNewKeyValueArg("global", []qemucli.KeyValueArgItem{{Key: "ICH9-LPC.disable_s3", Value: "1"}}))
	}

	if f.cfg.QEMU.HasUEFIBoot && !f.hasCustomFirmware() {
		code := f.ctx.Paths.UEFIFirmware(f.arch)
		if f.exists(code) {
			vars := f.cfg.QEMU.EFIVarsPath
			if vars == "" {
				vars = f.ctx.Paths.DefaultEFIVars()
			}

			b.Option("drive")
			b.Field("if=pflash")
			b.Field("format=raw")
			b.Field("unit=0")
			b.PathProp("file", code)
			b.Field("readonly=on")
			f.fileLockingHint(b)
			b.End()

			b.Option("drive")
			b.Field("if=pflash")
			b.Field("format=raw")
			b.Field("unit=1")
			b.PathProp("file", vars)
			f.fileLockingHint(b)
			b.End()
		}
	}

	if f.cfg.System.MemorySize > 0 {
		b.Add(qemucli.MustNewUintArg("m", f.cfg.System.MemorySize))
	}
}
