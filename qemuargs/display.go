package qemuargs

import (
	"strings"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/AlexSSD7/qargs/utils"
)

// defaultHostMemMiB is the host memory window of blob resources when the
// display has no VRAM size set.
const defaultHostMemMiB = 256

func isGLDevice(hw catalog.DisplayDevice) bool {
	s := string(hw)
	return strings.HasSuffix(s, "-gl") || strings.Contains(s, "-gl-")
}

// withoutGL maps a GL device to its plain counterpart, e.g.
// virtio-gpu-gl-pci to virtio-gpu-pci.
func withoutGL(hw catalog.DisplayDevice) catalog.DisplayDevice {
	s := string(hw)
	s = strings.TrimSuffix(s, "-gl")
	s = strings.ReplaceAll(s, "-gl-", "-")

	return catalog.DisplayDevice(s)
}

// displaySkipped reports devices that exist in a catalog but do not work on
// the architecture.
func displaySkipped(arch catalog.Architecture, hw catalog.DisplayDevice) bool {
	switch arch {
	case catalog.ArchS390X:
		return hw == "VGA" || strings.HasSuffix(string(hw), "-vga")
	case catalog.ArchAarch64:
		return hw == "ati-vga"
	default:
		return false
	}
}

func (f *facts) displayArgs(b *qemucli.Builder) {
	displays := f.cfg.Displays

	if len(displays) == 0 {
		b.Add(qemucli.MustNewFlagArg("nographic"))
		return
	}

	// SPARC framebuffers are selected with -vga and only one is supported.
	if f.arch.IsSparc() {
		d := displays[0]

		b.Option("vga")
		b.Append(string(d.Hardware))
		if d.VGARAMMiB > 0 {
			b.Prop("vgamem_mb", utils.IntToStr(d.VGARAMMiB))
		}
		b.End()

		return
	}

	for _, d := range displays {
		hw := d.Hardware
		if f.ctx.RemoteDisplay {
			hw = withoutGL(hw)
		}

		if displaySkipped(f.arch, hw) {
			continue
		}

		b.Option("device")
		b.Append(string(hw))

		if d.VGARAMMiB > 0 {
			b.Prop("vgamem_mb", utils.IntToStr(d.VGARAMMiB))
		}

		if d.Is3DAcceleration && f.ctx.Host.Supports3D && isGLDevice(hw) {
			hostMem := d.VGARAMMiB
			if hostMem <= 0 {
				hostMem = defaultHostMemMiB
			}

			b.Field("blob=true")
			b.Prop("hostmem", utils.IntToStr(hostMem)+"M")
		}

		b.End()
	}
}
