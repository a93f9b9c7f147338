package catalog

type Architecture string

const (
	ArchAlpha    Architecture = "alpha"
	ArchAarch64  Architecture = "aarch64"
	ArchARM      Architecture = "arm"
	ArchAVR      Architecture = "avr"
	ArchI386     Architecture = "i386"
	ArchM68K     Architecture = "m68k"
	ArchMIPS     Architecture = "mips"
	ArchMIPSEL   Architecture = "mipsel"
	ArchMIPS64   Architecture = "mips64"
	ArchMIPS64EL Architecture = "mips64el"
	ArchPPC      Architecture = "ppc"
	ArchPPC64    Architecture = "ppc64"
	ArchRISCV32  Architecture = "riscv32"
	ArchRISCV64  Architecture = "riscv64"
	ArchS390X    Architecture = "s390x"
	ArchSPARC    Architecture = "sparc"
	ArchSPARC64  Architecture = "sparc64"
	ArchX86_64   Architecture = "x86_64"
	ArchXtensa   Architecture = "xtensa"
	ArchXtensaEB Architecture = "xtensaeb"
)

func (a Architecture) QEMUSystemBinary() string {
	return "qemu-system-" + string(a)
}

func (a Architecture) IsX86() bool {
	return a == ArchX86_64 || a == ArchI386
}

func (a Architecture) IsSparc() bool {
	return a == ArchSPARC || a == ArchSPARC64
}

func (a Architecture) IsPPC() bool {
	return a == ArchPPC || a == ArchPPC64
}

func (a Architecture) IsRISCV() bool {
	return a == ArchRISCV32 || a == ArchRISCV64
}

// UsesCCW reports whether devices attach to the channel subsystem instead
// of PCI.
func (a Architecture) UsesCCW() bool {
	return a == ArchS390X
}

// IsSingleThreadOnly reports architectures whose machines only boot with a
// single vCPU.
func (a Architecture) IsSingleThreadOnly() bool {
	return a.IsSparc()
}

// IsWeak reports whether the architecture can be emulated with multiple
// threads on an arm64 host.
func (a Architecture) IsWeak() bool {
	switch a {
	case ArchAlpha, ArchARM, ArchAarch64, ArchAVR, ArchMIPS, ArchMIPS64, ArchMIPSEL, ArchMIPS64EL,
		ArchPPC, ArchPPC64, ArchRISCV32, ArchRISCV64, ArchXtensa, ArchXtensaEB:
		return true
	default:
		return false
	}
}

// UsesLegacyNIC reports whether network cards are created with the unified
// -net nic syntax.
func (a Architecture) UsesLegacyNIC() bool {
	return a.IsSparc() || a == ArchM68K
}

// UsesLegacyShareTag reports whether shared folders are exposed with the
// legacy mount tag.
func (a Architecture) UsesLegacyShareTag() bool {
	return a.IsPPC() || a == ArchM68K
}

func (a Architecture) HasAgentSupport() bool {
	return !a.IsSparc() && a != ArchM68K
}

func (a Architecture) HasSharingSupport() bool {
	return !a.IsSparc()
}

func (a Architecture) HasUSBSupport() bool {
	return !a.IsSparc() && a != ArchS390X && a != ArchM68K
}
