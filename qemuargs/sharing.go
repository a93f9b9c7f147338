package qemuargs

import (
	"github.com/AlexSSD7/qargs/config"
	"github.com/AlexSSD7/qargs/qemucli"
)

const (
	shareTag       = "share"
	legacyShareTag = "hostshare"
)

func (f *facts) agentSupported() bool {
	return f.arch.HasAgentSupport() && f.machine.HasAgentSupport()
}

func (f *facts) vdagentNeeded() bool {
	if f.cfg.Sharing.HasClipboardSharing {
		return true
	}

	for _, d := range f.cfg.Displays {
		if d.IsDynamicResolution {
			return true
		}
	}

	return false
}

func (f *facts) sharingArgs(b *qemucli.Builder) {
	s := f.cfg.Sharing

	agent := f.agentSupported()
	vdagent := agent && f.vdagentNeeded()
	webdav := agent && s.DirectoryShareMode == config.ShareModeWebDAV && f.arch.HasSharingSupport()

	if agent {
		b.Arg("device", "virtio-serial"+f.deviceSuffix())

		b.Arg("device", "virtserialport,chardev=org.qemu.guest_agent,name=org.qemu.guest_agent.0")
		b.Arg("chardev", "spiceport,id=org.qemu.guest_agent,name=org.qemu.guest_agent.0")
	}

	if vdagent {
		b.Arg("device", "virtserialport,chardev=vdagent,name=com.redhat.spice.0")
		b.Arg("chardev", "spicevmc,id=vdagent,debug=0,name=vdagent")
	}

	if webdav {
		b.Arg("device", "virtserialport,chardev=charchannel1,id=channel1,name=org.spice-space.webdav.0")
		b.Arg("chardev", "spiceport,name=org.spice-space.webdav.0,id=charchannel1")
	}

	if s.DirectoryShareMode == config.ShareModeVirtFS && s.DirectorySharePath != "" && f.arch.HasSharingSupport() {
		f.virtfsArgs(b)
	}
}

func (f *facts) virtfsArgs(b *qemucli.Builder) {
	s := f.cfg.Sharing

	b.Option("fsdev")
	b.Append("local")
	b.Field("id=virtfs0")
	b.PathProp("path", s.DirectorySharePath)
	b.Field("security_model=mapped-xattr")
	if s.IsDirectoryShareReadOnly {
		b.Field("readonly=on")
	}
	b.End()

	tag := shareTag
	if f.arch.UsesLegacyShareTag() {
		tag = legacyShareTag
	}

	b.Arg("device", "virtio-9p"+f.deviceSuffix()+",fsdev=virtfs0,mount_tag="+tag)
}
