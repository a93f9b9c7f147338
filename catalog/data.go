package catalog

var x86CPUs = []CPU{
	CPUDefault, "host", "max", "qemu64", "qemu32", "kvm64", "486", "pentium", "Conroe", "Penryn",
	"Nehalem", "Westmere", "SandyBridge", "IvyBridge", "Haswell", "Haswell-v4", "Broadwell",
	"Broadwell-v4", "Skylake-Client", "Skylake-Client-v4", "Skylake-Server", "Cascadelake-Server",
	"Icelake-Server", "Opteron_G5", "EPYC", "EPYC-Rome", "EPYC-Milan",
}

var x86CPUFlags = []CPUFlag{
	"3dnow", "aes", "avx", "avx2", "hypervisor", "invtsc", "pcid", "pdpe1gb", "rdrand", "sse4.2",
	"ssse3", "svm", "vmx", "x2apic", "xsave",
}

var x86Machines = []Machine{"q35", "pc", "pc-q35-7.2", "pc-i440fx-7.2", "isapc", "microvm"}

var x86MachineNames = map[Machine]string{
	"q35":   "Standard PC (Q35 + ICH9, 2009)",
	"pc":    "Standard PC (i440FX + PIIX, 1996)",
	"isapc": "ISA-only PC",
}

var x86Displays = []DisplayDevice{
	"virtio-vga", "virtio-vga-gl", "virtio-gpu-pci", "virtio-gpu-gl-pci", "VGA", "cirrus-vga",
	"vmware-svga", "qxl-vga", "ati-vga", "bochs-display", "ramfb",
}

var gpuDisplayNames = map[DisplayDevice]string{
	"virtio-vga":        "Virtio VGA",
	"virtio-vga-gl":     "Virtio VGA (GPU Supported)",
	"virtio-gpu-pci":    "Virtio GPU",
	"virtio-gpu-gl-pci": "Virtio GPU (GPU Supported)",
	"virtio-ramfb":      "Virtio RAM framebuffer",
	"virtio-ramfb-gl":   "Virtio RAM framebuffer (GPU Supported)",
}

var x86Networks = []NetworkDevice{
	"virtio-net-pci", "e1000", "e1000e", "rtl8139", "vmxnet3", "ne2k_pci", "pcnet", "i82559er",
}

var x86Sound = []SoundDevice{
	"intel-hda", "ich9-intel-hda", "AC97", "ES1370", "sb16", "cs4231a", "gus", "adlib", "pcspk",
	"usb-audio", "virtio-sound-pci",
}

var x86Serials = []SerialDevice{"isa-serial", "pci-serial", "virtio-serial-pci", "usb-serial"}

var mipsFamily = Catalog{
	CPUs:           newSet(CPUDefault, []CPU{CPUDefault, "24Kf", "34Kf", "74Kf", "5KEf", "MIPS64R2-generic"}, nil),
	CPUFlags:       newSet[CPUFlag]("", nil, nil),
	Machines:       newSet[Machine]("malta", []Machine{"malta", "mipssim"}, nil),
	DisplayDevices: newSet[DisplayDevice]("VGA", []DisplayDevice{"VGA", "cirrus-vga"}, nil),
	NetworkDevices: newSet[NetworkDevice]("pcnet", []NetworkDevice{"pcnet", "e1000", "rtl8139"}, nil),
	SoundDevices:   newSet[SoundDevice]("AC97", []SoundDevice{"AC97", "ES1370"}, nil),
	SerialDevices:  newSet[SerialDevice]("pci-serial", []SerialDevice{"pci-serial"}, nil),
}

func withArch(arch Architecture, c Catalog) *Catalog {
	c.Architecture = arch
	return &c
}

var registry = map[Architecture]*Catalog{
	ArchX86_64: {
		Architecture:   ArchX86_64,
		CPUs:           newSet(CPUDefault, x86CPUs, nil),
		CPUFlags:       newSet[CPUFlag]("", x86CPUFlags, nil),
		Machines:       newSet[Machine]("q35", x86Machines, x86MachineNames),
		DisplayDevices: newSet[DisplayDevice]("virtio-vga", x86Displays, gpuDisplayNames),
		NetworkDevices: newSet[NetworkDevice]("virtio-net-pci", x86Networks, nil),
		SoundDevices:   newSet[SoundDevice]("intel-hda", x86Sound, nil),
		SerialDevices:  newSet[SerialDevice]("isa-serial", x86Serials, nil),
	},
	ArchI386: {
		Architecture:   ArchI386,
		CPUs:           newSet(CPUDefault, x86CPUs, nil),
		CPUFlags:       newSet[CPUFlag]("", x86CPUFlags, nil),
		Machines:       newSet[Machine]("pc", x86Machines, x86MachineNames),
		DisplayDevices: newSet[DisplayDevice]("VGA", x86Displays, gpuDisplayNames),
		NetworkDevices: newSet[NetworkDevice]("rtl8139", x86Networks, nil),
		SoundDevices:   newSet[SoundDevice]("AC97", x86Sound, nil),
		SerialDevices:  newSet[SerialDevice]("isa-serial", x86Serials, nil),
	},
	ArchAarch64: {
		Architecture: ArchAarch64,
		CPUs: newSet(CPUDefault, []CPU{
			CPUDefault, "host", "max", "cortex-a53", "cortex-a57", "cortex-a72", "cortex-a76",
			"neoverse-n1", "neoverse-v1", "a64fx",
		}, nil),
		CPUFlags: newSet[CPUFlag]("", []CPUFlag{"aes", "pmull", "sha1", "sha2", "sve", "pauth", "mte"}, nil),
		Machines: newSet[Machine]("virt", []Machine{"virt", "virt-7.2", "raspi3b", "raspi3ap", "sbsa-ref", "xlnx-zcu102"}, map[Machine]string{
			"virt": "QEMU generic virtual platform",
		}),
		DisplayDevices: newSet[DisplayDevice]("virtio-ramfb", []DisplayDevice{
			"virtio-ramfb", "virtio-ramfb-gl", "virtio-gpu-pci", "virtio-gpu-gl-pci", "ramfb",
			"bochs-display", "VGA", "cirrus-vga", "ati-vga",
		}, gpuDisplayNames),
		NetworkDevices: newSet[NetworkDevice]("virtio-net-pci", []NetworkDevice{"virtio-net-pci", "e1000", "e1000e", "rtl8139", "usb-net"}, nil),
		SoundDevices:   newSet[SoundDevice]("intel-hda", []SoundDevice{"intel-hda", "ich9-intel-hda", "virtio-sound-pci", "usb-audio"}, nil),
		SerialDevices:  newSet[SerialDevice]("pci-serial", []SerialDevice{"pci-serial", "virtio-serial-pci", "usb-serial"}, nil),
	},
	ArchARM: {
		Architecture:   ArchARM,
		CPUs:           newSet(CPUDefault, []CPU{CPUDefault, "max", "cortex-a7", "cortex-a8", "cortex-a9", "cortex-a15", "arm1176"}, nil),
		CPUFlags:       newSet[CPUFlag]("", nil, nil),
		Machines:       newSet[Machine]("virt", []Machine{"virt", "raspi2b", "vexpress-a15", "versatilepb"}, nil),
		DisplayDevices: newSet[DisplayDevice]("virtio-gpu-pci", []DisplayDevice{"virtio-gpu-pci", "ramfb", "VGA"}, gpuDisplayNames),
		NetworkDevices: newSet[NetworkDevice]("virtio-net-pci", []NetworkDevice{"virtio-net-pci", "e1000", "lan9118", "smc91c111"}, nil),
		SoundDevices:   newSet[SoundDevice]("intel-hda", []SoundDevice{"intel-hda", "AC97"}, nil),
		SerialDevices:  newSet[SerialDevice]("pci-serial", []SerialDevice{"pci-serial"}, nil),
	},
	ArchPPC: {
		Architecture:   ArchPPC,
		CPUs:           newSet(CPUDefault, []CPU{CPUDefault, "g3", "g4", "7400", "7447a", "7450", "e500"}, nil),
		CPUFlags:       newSet[CPUFlag]("", nil, nil),
		Machines:       newSet[Machine]("mac99", []Machine{"mac99", "g3beige", "ppce500", "pegasos2", "40p", "bamboo"}, nil),
		DisplayDevices: newSet[DisplayDevice]("VGA", []DisplayDevice{"VGA", "bochs-display", "sm501", "ati-vga"}, nil),
		NetworkDevices: newSet[NetworkDevice]("sungem", []NetworkDevice{"sungem", "rtl8139", "e1000", "virtio-net-pci", "ne2k_pci", "pcnet"}, nil),
		SoundDevices:   newSet[SoundDevice]("screamer", []SoundDevice{"screamer", "AC97", "ES1370", "intel-hda"}, nil),
		SerialDevices:  newSet[SerialDevice]("pci-serial", []SerialDevice{"pci-serial"}, nil),
	},
	ArchPPC64: {
		Architecture:   ArchPPC64,
		CPUs:           newSet(CPUDefault, []CPU{CPUDefault, "power8", "power9", "power10", "970"}, nil),
		CPUFlags:       newSet[CPUFlag]("", nil, nil),
		Machines:       newSet[Machine]("pseries", []Machine{"pseries", "pseries-7.2", "powernv9", "mac99"}, nil),
		DisplayDevices: newSet[DisplayDevice]("VGA", []DisplayDevice{"VGA", "bochs-display", "virtio-gpu-pci"}, nil),
		NetworkDevices: newSet[NetworkDevice]("spapr-vlan", []NetworkDevice{"spapr-vlan", "virtio-net-pci", "e1000"}, nil),
		SoundDevices:   newSet[SoundDevice]("intel-hda", []SoundDevice{"intel-hda", "AC97", "usb-audio"}, nil),
		SerialDevices:  newSet[SerialDevice]("spapr-vty", []SerialDevice{"spapr-vty", "pci-serial"}, nil),
	},
	ArchRISCV64: {
		Architecture:   ArchRISCV64,
		CPUs:           newSet(CPUDefault, []CPU{CPUDefault, "rv64", "max", "sifive-u54", "sifive-e51"}, nil),
		CPUFlags:       newSet[CPUFlag]("", []CPUFlag{"v", "h", "zba", "zbb"}, nil),
		Machines:       newSet[Machine]("virt", []Machine{"virt", "sifive_u", "spike", "microchip-icicle-kit"}, nil),
		DisplayDevices: newSet[DisplayDevice]("virtio-gpu-pci", []DisplayDevice{"virtio-gpu-pci", "virtio-gpu-gl-pci", "virtio-ramfb", "ramfb", "bochs-display"}, gpuDisplayNames),
		NetworkDevices: newSet[NetworkDevice]("virtio-net-pci", []NetworkDevice{"virtio-net-pci", "e1000"}, nil),
		SoundDevices:   newSet[SoundDevice]("intel-hda", []SoundDevice{"intel-hda"}, nil),
		SerialDevices:  newSet[SerialDevice]("pci-serial", []SerialDevice{"pci-serial"}, nil),
	},
	ArchRISCV32: {
		Architecture:   ArchRISCV32,
		CPUs:           newSet(CPUDefault, []CPU{CPUDefault, "rv32", "sifive-e31", "sifive-u34"}, nil),
		CPUFlags:       newSet[CPUFlag]("", nil, nil),
		Machines:       newSet[Machine]("virt", []Machine{"virt", "sifive_e", "spike", "opentitan"}, nil),
		DisplayDevices: newSet[DisplayDevice]("virtio-gpu-pci", []DisplayDevice{"virtio-gpu-pci", "ramfb"}, gpuDisplayNames),
		NetworkDevices: newSet[NetworkDevice]("virtio-net-pci", []NetworkDevice{"virtio-net-pci"}, nil),
		SoundDevices:   newSet[SoundDevice]("", nil, nil),
		SerialDevices:  newSet[SerialDevice]("pci-serial", []SerialDevice{"pci-serial"}, nil),
	},
	ArchSPARC: {
		Architecture:   ArchSPARC,
		CPUs:           newSet(CPUDefault, []CPU{CPUDefault, "Fujitsu MB86904", "TI SuperSparc II"}, nil),
		CPUFlags:       newSet[CPUFlag]("", nil, nil),
		Machines:       newSet[Machine]("SS-5", []Machine{"SS-5", "SS-20", "LX", "voyager"}, nil),
		DisplayDevices: newSet[DisplayDevice]("tcx", []DisplayDevice{"tcx", "cg3"}, nil),
		NetworkDevices: newSet[NetworkDevice]("lance", []NetworkDevice{"lance"}, nil),
		SoundDevices:   newSet[SoundDevice]("", nil, nil),
		SerialDevices:  newSet[SerialDevice]("", nil, nil),
	},
	ArchSPARC64: {
		Architecture:   ArchSPARC64,
		CPUs:           newSet(CPUDefault, []CPU{CPUDefault, "TI UltraSparc IIi", "Sun UltraSparc IV"}, nil),
		CPUFlags:       newSet[CPUFlag]("", nil, nil),
		Machines:       newSet[Machine]("sun4u", []Machine{"sun4u", "niagara"}, nil),
		DisplayDevices: newSet[DisplayDevice]("VGA", []DisplayDevice{"VGA"}, nil),
		NetworkDevices: newSet[NetworkDevice]("sunhme", []NetworkDevice{"sunhme", "ne2k_pci", "virtio-net-pci"}, nil),
		SoundDevices:   newSet[SoundDevice]("", nil, nil),
		SerialDevices:  newSet[SerialDevice]("", nil, nil),
	},
	ArchS390X: {
		Architecture:   ArchS390X,
		CPUs:           newSet(CPUDefault, []CPU{CPUDefault, "host", "max", "qemu", "z14", "z15", "z16"}, nil),
		CPUFlags:       newSet[CPUFlag]("", nil, nil),
		Machines:       newSet[Machine]("s390-ccw-virtio", []Machine{"s390-ccw-virtio"}, nil),
		DisplayDevices: newSet[DisplayDevice]("virtio-gpu-ccw", []DisplayDevice{"virtio-gpu-ccw", "virtio-vga", "VGA"}, nil),
		NetworkDevices: newSet[NetworkDevice]("virtio-net-ccw", []NetworkDevice{"virtio-net-ccw"}, nil),
		SoundDevices:   newSet[SoundDevice]("", nil, nil),
		SerialDevices:  newSet[SerialDevice]("sclpconsole", []SerialDevice{"sclpconsole", "sclplmconsole", "virtio-serial-ccw"}, nil),
	},
	ArchM68K: {
		Architecture:   ArchM68K,
		CPUs:           newSet(CPUDefault, []CPU{CPUDefault, "m68040", "m68030", "cfv4e"}, nil),
		CPUFlags:       newSet[CPUFlag]("", nil, nil),
		Machines:       newSet[Machine]("q800", []Machine{"q800", "virt", "mcf5208evb", "an5206"}, nil),
		DisplayDevices: newSet[DisplayDevice]("nubus-macfb", []DisplayDevice{"nubus-macfb", "virtio-gpu-device"}, nil),
		NetworkDevices: newSet[NetworkDevice]("dp83932", []NetworkDevice{"dp83932"}, nil),
		SoundDevices:   newSet[SoundDevice]("asc", []SoundDevice{"asc"}, nil),
		SerialDevices:  newSet[SerialDevice]("", nil, nil),
	},
	ArchMIPS:     withArch(ArchMIPS, mipsFamily),
	ArchMIPSEL:   withArch(ArchMIPSEL, mipsFamily),
	ArchMIPS64:   withArch(ArchMIPS64, mipsFamily),
	ArchMIPS64EL: withArch(ArchMIPS64EL, mipsFamily),
	ArchAlpha: {
		Architecture:   ArchAlpha,
		CPUs:           newSet(CPUDefault, []CPU{CPUDefault, "ev67", "ev68", "21264a"}, nil),
		CPUFlags:       newSet[CPUFlag]("", nil, nil),
		Machines:       newSet[Machine]("clipper", []Machine{"clipper"}, nil),
		DisplayDevices: newSet[DisplayDevice]("VGA", []DisplayDevice{"VGA", "cirrus-vga"}, nil),
		NetworkDevices: newSet[NetworkDevice]("e1000", []NetworkDevice{"e1000", "rtl8139", "ne2k_pci"}, nil),
		SoundDevices:   newSet[SoundDevice]("AC97", []SoundDevice{"AC97", "ES1370"}, nil),
		SerialDevices:  newSet[SerialDevice]("", nil, nil),
	},
}
