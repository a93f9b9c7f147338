package qemuargs

import (
	"strconv"

	"github.com/AlexSSD7/qargs/config"
	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/AlexSSD7/qargs/utils"
)

const (
	defaultBridgeInterface = "en0"
	legacyNICModel         = "lance"
)

var vmnetModes = map[config.NetworkMode]string{
	config.NetworkModeShared:  "vmnet-shared",
	config.NetworkModeHost:    "vmnet-host",
	config.NetworkModeBridged: "vmnet-bridged",
}

func (f *facts) networkArgs(b *qemucli.Builder) {
	if len(f.cfg.Networks) == 0 {
		b.Add(qemucli.MustNewStringArg("nic", "none"))
		return
	}

	for i, n := range f.cfg.Networks {
		id := "net" + utils.IntToStr(i)

		f.nicArg(b, n, id)

		b.Option("netdev")
		if mode, ok := vmnetModes[n.Mode]; ok && f.ctx.Host.OS == "darwin" {
			f.vmnetProperties(b, n, mode, id)
		} else {
			userNetProperties(b, n, id)
		}
		b.End()
	}
}

func (f *facts) nicArg(b *qemucli.Builder, n config.Network, id string) {
	if f.arch.UsesLegacyNIC() {
		model := string(n.Hardware)
		if f.arch.IsSparc() {
			model = legacyNICModel
		}

		b.Option("net")
		b.Append("nic")
		b.Prop("model", model)
		b.Prop("macaddr", n.MACAddress)
		b.Prop("netdev", id)
		b.End()

		return
	}

	b.Option("device")
	b.Append(string(n.Hardware))
	b.Prop("mac", n.MACAddress)
	b.Prop("netdev", id)
	b.End()
}

func (f *facts) vmnetProperties(b *qemucli.Builder, n config.Network, mode string, id string) {
	b.Append(mode)
	b.Prop("id", id)

	if n.Mode == config.NetworkModeBridged {
		ifname := n.BridgeInterface
		if ifname == "" {
			ifname = defaultBridgeInterface
		}

		b.Prop("ifname", ifname)
	} else {
		vmnetSubnet(b, n)
	}

	if n.IsIsolateFromHost {
		b.Field("isolated=on")
	}
}

// vmnetSubnet uses the explicit DHCP range when both ends are set and falls
// back to the range derived from the guest address.
func vmnetSubnet(b *qemucli.Builder, n config.Network) {
	if n.GuestAddress == "" {
		return
	}

	s, ok := ComputeSubnet(n.GuestAddress)
	if !ok {
		return
	}

	if n.DHCPStartAddress != "" && n.DHCPEndAddress != "" {
		s.First = n.DHCPStartAddress
		s.Last = n.DHCPEndAddress
	}

	b.Prop("start-address", s.First)
	b.Prop("end-address", s.Last)
	b.Prop("subnet-mask", s.Mask)
}

func userNetProperties(b *qemucli.Builder, n config.Network, id string) {
	b.Append("user")
	b.Prop("id", id)

	if n.IsIsolateFromHost {
		b.Field("restrict=on")
	}

	optional := []struct{ key, value string }{
		{"net", n.GuestAddress},
		{"host", n.HostAddress},
		{"ipv6-net", n.GuestAddressIPv6},
		{"ipv6-host", n.HostAddressIPv6},
		{"dhcpstart", n.DHCPStartAddress},
		{"dns", n.DNSServerAddress},
		{"ipv6-dns", n.DNSServerAddressIPv6},
		{"dnssearch", n.DNSSearchDomain},
		{"domainname", n.DHCPDomain},
	}

	for _, o := range optional {
		if o.value != "" {
			b.Prop(o.key, qemucli.EscapePath(o.value))
		}
	}

	for _, fw := range n.PortForwards {
		b.Prop("hostfwd", hostForward(fw))
	}
}

func hostForward(fw config.PortForward) string {
	proto := fw.Protocol
	if proto == "" {
		proto = config.ProtocolTCP
	}

	return string(proto) + ":" + fw.HostAddress + ":" + strconv.FormatUint(uint64(fw.HostPort), 10) +
		"-" + fw.GuestAddress + ":" + strconv.FormatUint(uint64(fw.GuestPort), 10)
}
