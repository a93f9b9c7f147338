package catalog

import "strings"

// IsPC reports i440fx, q35 and ISA-only PC machines.
func (m Machine) IsPC() bool {
	s := string(m)
	return strings.HasPrefix(s, "pc") || strings.HasPrefix(s, "q35") || s == "isapc"
}

func (m Machine) IsQ35() bool {
	s := string(m)
	return strings.HasPrefix(s, "q35") || strings.HasPrefix(s, "pc-q35")
}

func (m Machine) IsVirt() bool {
	s := string(m)
	return s == "virt" || strings.HasPrefix(s, "virt-")
}

func (m Machine) IsPSeries() bool {
	return strings.HasPrefix(string(m), "pseries")
}

func (m Machine) IsMac99() bool {
	return m == "mac99"
}

func (m Machine) IsQ800() bool {
	return m == "q800"
}

// UsesSingleUnitIDE reports machines with an AHCI controller, where every
// port is its own bus with a single unit.
func (m Machine) UsesSingleUnitIDE() bool {
	return m.IsQ35()
}

// HasPS2Controller reports machines with a built-in i8042.
func (m Machine) HasPS2Controller() bool {
	return m.IsPC()
}

func (m Machine) HasAgentSupport() bool {
	return m != "isapc"
}

func (m Machine) HasUSBSupport() bool {
	return m != "isapc" && !m.IsQ800()
}
