package qemuargs

import (
	"encoding/binary"
	"net"
	"strconv"
	"strings"
)

const defaultSubnetBits = 24

// Subnet is the DHCP range handed to vmnet.
type Subnet struct {
	First string
	Last  string
	Mask  string
}

// ComputeSubnet turns "address[/mask]" into the usable host range of the
// network. The mask may be a dotted quad or a prefix length below 32.
func ComputeSubnet(s string) (Subnet, bool) {
	addrStr, maskStr, hasMask := strings.Cut(strings.TrimSpace(s), "/")

	ip := net.ParseIP(addrStr).To4()
	if ip == nil {
		return Subnet{}, false
	}

	mask := net.CIDRMask(defaultSubnetBits, 32)
	if hasMask {
		var ok bool
		mask, ok = parseMask(maskStr)
		if !ok {
			return Subnet{}, false
		}
	}

	addr := binary.BigEndian.Uint32(ip)
	m := binary.BigEndian.Uint32(mask)

	network := addr & m
	broadcast := addr | ^m

	return Subnet{
		First: uint32ToIP(network + 1),
		Last:  uint32ToIP(broadcast - 1),
		Mask:  net.IP(mask).String(),
	}, true
}

func parseMask(s string) (net.IPMask, bool) {
	if strings.Contains(s, ".") {
		ip := net.ParseIP(s).To4()
		if ip == nil {
			return nil, false
		}

		// Non-contiguous masks report a zero size. A host mask leaves no
		// range to hand out.
		mask := net.IPMask(ip)
		if ones, bits := mask.Size(); bits == 0 || ones == 32 {
			return nil, false
		}

		return mask, true
	}

	bits, err := strconv.Atoi(s)
	if err != nil || bits < 0 || bits > 31 {
		return nil, false
	}

	return net.CIDRMask(bits, 32), true
}

func uint32ToIP(v uint32) string {
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, v)

	return ip.String()
}
