package qemuargs

import (
	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/config"
	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/AlexSSD7/qargs/utils"
)

// usbRedirPerController is the number of redirected devices sharing one
// controller.
const usbRedirPerController = 3

func (f *facts) usbArgs(b *qemucli.Builder) {
	if !f.usb {
		return
	}

	if f.machine.IsVirt() {
		b.Arg("device", "nec-usb-xhci,id=usb-bus")
	} else {
		b.Add(qemucli.MustNewFlagArg("usb"))
	}

	if !f.ps2 {
		b.Arg("device", "usb-tablet,bus=usb-bus.0")
		b.Arg("device", "usb-mouse,bus=usb-bus.0")
		b.Arg("device", "usb-kbd,bus=usb-bus.0")
	}

	if f.ctx.USBRedirection && f.cfg.Input.HasUSBSharing {
		f.usbRedirectionArgs(b)
	}
}

func (f *facts) usbRedirectionArgs(b *qemucli.Builder) {
	maxDevices := f.cfg.Input.MaximumUSBShare
	if maxDevices <= 0 {
		return
	}

	controllers := (maxDevices + usbRedirPerController - 1) / usbRedirPerController

	for i := 0; i < controllers; i++ {
		id := "usb-controller-" + utils.IntToStr(i)

		if f.cfg.Input.USBBusSupport == config.USBBus3_0 {
			controller := "qemu-xhci"
			if isPCIPC(f.machine) {
				controller = "nec-usb-xhci"
			}

			b.Arg("device", controller+",id="+id)
			continue
		}

		b.Arg("device", "ich9-usb-ehci1,id="+id)
		for j, port := range []string{"0", "2", "4"} {
			b.Arg("device", "ich9-usb-uhci"+utils.IntToStr(j+1)+",masterbus="+id+".0,firstport="+port+",multifunction=on")
		}
	}

	for i := 0; i < maxDevices; i++ {
		n := utils.IntToStr(i)
		bus := "usb-controller-" + utils.IntToStr(i/usbRedirPerController) + ".0"

		b.Arg("chardev", "spicevmc,name=usbredir,id=usbredirchardev"+n)
		b.Arg("device", "usb-redir,chardev=usbredirchardev"+n+",id=usbredirdev"+n+",bus="+bus)
	}
}

// otherInputArgs adds virtio input devices to graphical machines that have
// neither USB nor a PS/2 controller.
func (f *facts) otherInputArgs(b *qemucli.Builder) {
	if f.usb || f.machine.HasPS2Controller() || len(f.cfg.Displays) == 0 {
		return
	}

	// These boards come with their own keyboard and mouse and have no PCI.
	if f.arch.IsSparc() || f.arch == catalog.ArchM68K {
		return
	}

	b.Arg("device", "virtio-keyboard"+f.deviceSuffix())
	b.Arg("device", "virtio-tablet"+f.deviceSuffix())
}
