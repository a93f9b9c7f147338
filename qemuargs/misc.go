package qemuargs

import (
	"strings"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/AlexSSD7/qargs/utils"
)

func (f *facts) resourceArgs(b *qemucli.Builder) {
	if f.ctx.Paths.ResourceDir != "" {
		b.Add(qemucli.MustNewPathArg("L", f.ctx.Paths.ResourceDir))
	}

	// Start paused. The supervisor resumes the guest over QMP.
	b.Add(qemucli.MustNewFlagArg("S"))
}

func (f *facts) spiceArgs(b *qemucli.Builder) {
	b.Option("spice")
	b.Field("unix=on")
	b.PathProp("addr", f.ctx.Paths.SpiceSocket(f.cfg.Information.UUID))
	b.Field("disable-ticketing=on")
	b.Field("image-compression=off")
	b.Field("playback-compression=off")
	b.Field("streaming-video=off")
	b.Prop("gl", utils.OnOff(f.gl))
	b.End()

	b.Arg("chardev", "spiceport,id=org.qemu.monitor.qmp,name=org.qemu.monitor.qmp.0")
	b.Arg("mon", "chardev=org.qemu.monitor.qmp,mode=control")

	// SPARC machines cannot drop their default display.
	if !f.arch.IsSparc() {
		b.Add(qemucli.MustNewFlagArg("nodefaults"))
		b.Add(qemucli.MustNewStringArg("vga", "none"))
	}
}

func (f *facts) miscArgs(b *qemucli.Builder) {
	q := f.cfg.QEMU

	name := strings.TrimSpace(utils.SanitizeName(f.cfg.Information.Name))
	if name != "" {
		b.Add(qemucli.MustNewStringArg("name", name))
	}

	if q.SnapshotName != "" {
		b.Arg("loadvm", q.SnapshotName)
	} else if q.IsDisposable {
		b.Add(qemucli.MustNewFlagArg("snapshot"))
	}

	b.Add(qemucli.MustNewStringArg("uuid", f.cfg.Information.UUID.String()))

	if q.HasRTCLocalTime {
		b.Add(qemucli.MustNewKeyValueArg("rtc", []qemucli.KeyValueArgItem{{Key: "base", Value: "localtime"}}))
	}

	if q.HasRNGDevice {
		b.Arg("device", "virtio-rng"+f.deviceSuffix())
	}

	if q.HasBalloonDevice {
		b.Arg("device", "virtio-balloon"+f.deviceSuffix())
	}

	if q.HasTPMDevice {
		f.tpmArgs(b)
	}
}

func (f *facts) tpmArgs(b *qemucli.Builder) {
	device, ok := tpmDevice(f.machine)
	if !ok {
		return
	}

	b.Option("chardev")
	b.Field("socket")
	b.Prop("id", "chrtpm")
	b.PathProp("path", f.ctx.Paths.TPMSocket(f.cfg.Information.UUID))
	b.End()

	b.Add(qemucli.MustNewKeyValueArg("tpmdev", []qemucli.KeyValueArgItem{
		{Key: "emulator"},
		{Key: "id", Value: "tpm0"},
		{Key: "chardev", Value: "chrtpm"},
	}))

	b.Add(qemucli.MustNewKeyValueArg("device", []qemucli.KeyValueArgItem{
		{Key: device},
		{Key: "tpmdev", Value: "tpm0"},
	}))
}

func tpmDevice(m catalog.Machine) (string, bool) {
	switch {
	case m.IsQ35():
		return "tpm-crb", true
	case m.IsPC():
		return "tpm-tis", true
	case m.IsVirt():
		return "tpm-tis-device", true
	case m.IsPSeries():
		return "tpm-spapr", true
	default:
		return "", false
	}
}

func (f *facts) userArgs(b *qemucli.Builder) {
	b.Raw(f.userArgv...)
}
