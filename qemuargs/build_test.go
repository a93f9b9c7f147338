package qemuargs_test

import (
	"testing"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/config"
	"github.com/AlexSSD7/qargs/host"
	"github.com/AlexSSD7/qargs/qemuargs"
	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeterministic(t *testing.T) {
	cfg := testConfig()
	cfg.Drives = []config.Drive{{ImageType: config.ImageTypeDisk, Interface: config.DriveInterfaceVirtIO, ID: "A", ImagePath: "/vm/a.qcow2"}}
	cfg.Networks = []config.Network{{Hardware: "virtio-net-pci", Mode: config.NetworkModeEmulated, MACAddress: "52:54:00:12:34:56"}}

	first := qemuargs.Build(cfg, testContext())
	second := qemuargs.Build(cfg, testContext())

	assert.Equal(t, "qemu-system-x86_64", first.Binary)
	assert.Equal(t, first.Args, second.Args)
	assert.Equal(t, first.Tokens, second.Tokens)
}

func TestBuildTokenLog(t *testing.T) {
	cfg := testConfig()
	cfg.QEMU.AdditionalArguments = []string{`-device "virtio-rng-pci"`}

	res := qemuargs.Build(cfg, testContext())

	assert.Equal(t, res.Args, qemucli.Reduce(res.Tokens))

	var boundaries int
	for _, tok := range res.Tokens {
		if tok.Kind == qemucli.TokenBoundary {
			boundaries++
		}
	}
	assert.Equal(t, len(res.Args), boundaries)
	assert.Equal(t, qemucli.TokenBoundary, res.Tokens[len(res.Tokens)-1].Kind)
}

func TestBuildOrder(t *testing.T) {
	cfg := testConfig()
	cfg.Drives = []config.Drive{{ImageType: config.ImageTypeDisk, Interface: config.DriveInterfaceVirtIO, ID: "A", ImagePath: "/vm/a.qcow2"}}

	args := qemuargs.Build(cfg, testContext()).Args

	order := []string{"-L", "-S", "-spice", "-nic", "-nographic", "-smp", "-machine", "-accel", "-m", "-audiodev", "-usb", "-drive", "-name", "-uuid"}
	prev := -1
	for _, opt := range order {
		i := indexOf(args, opt)
		require.NotEqual(t, -1, i, opt)
		assert.Greater(t, i, prev, opt)
		prev = i
	}
}

func TestBuildEmptyCollections(t *testing.T) {
	args := qemuargs.Build(testConfig(), testContext()).Args

	assert.Contains(t, args, "-nographic")
	assert.Equal(t, []string{"none"}, values(args, "-nic"))
	assert.Equal(t, []string{"none,id=audio0"}, values(args, "-audiodev"))
	assert.Empty(t, values(args, "-netdev"))
}

func TestBuildUserArgumentsLast(t *testing.T) {
	cfg := testConfig()
	cfg.QEMU.AdditionalArguments = []string{`-foo "a b" -bar`, "-d int"}

	args := qemuargs.Build(cfg, testContext()).Args

	require.GreaterOrEqual(t, len(args), 5)
	assert.Equal(t, []string{"-foo", "a b", "-bar", "-d", "int"}, args[len(args)-5:])
}

func TestBuildResourceAndSpice(t *testing.T) {
	args := qemuargs.Build(testConfig(), testContext()).Args

	assert.Equal(t, []string{"-L", "/usr/share/qemu", "-S"}, args[:3])
	assert.Equal(t, []string{
		"unix=on,addr=/run/qargs/" + testUUID.String() + ".spice,disable-ticketing=on,image-compression=off,playback-compression=off,streaming-video=off,gl=off",
	}, values(args, "-spice"))
	assert.Contains(t, args, "-nodefaults")
	assert.Equal(t, []string{"none"}, values(args, "-vga"))
}

func TestBuildCPU(t *testing.T) {
	tests := []struct {
		name     string
		arch     catalog.Architecture
		machine  catalog.Machine
		host     host.Info
		hvPref   bool
		cpu      []string
		accel    string
	}{
		{
			name:    "aarch64 emulated on x86 host",
			arch:    catalog.ArchAarch64,
			machine: "virt",
			host:    host.Info{OS: "linux", Arch: catalog.ArchX86_64, HasHypervisor: true, PhysicalCores: 4, LogicalCores: 8, HasJITEntitlement: true},
			hvPref:  true,
			cpu:     []string{"cortex-a72"},
			accel:   "tcg,tb-size=512",
		},
		{
			name:    "aarch64 without acceleration on arm host",
			arch:    catalog.ArchAarch64,
			machine: "virt",
			host:    host.Info{OS: "darwin", OSVersion: "14.0", Arch: catalog.ArchAarch64, CPUFamily: host.FamilyApple, HasHypervisor: true, PhysicalCores: 8, LogicalCores: 8, HasJITEntitlement: true},
			cpu:     []string{"cortex-a72"},
			accel:   "tcg,tb-size=512",
		},
		{
			name:    "x86 accelerated",
			arch:    catalog.ArchX86_64,
			machine: "q35",
			host:    host.Info{OS: "linux", Arch: catalog.ArchX86_64, CPUFamily: host.FamilySkylake, HasHypervisor: true, PhysicalCores: 4, LogicalCores: 8},
			hvPref:  true,
			cpu:     []string{"Skylake-Client-v4"},
			accel:   "kvm",
		},
		{
			name:    "x86 emulated keeps QEMU default",
			arch:    catalog.ArchX86_64,
			machine: "q35",
			host:    host.Info{OS: "linux", Arch: catalog.ArchX86_64, PhysicalCores: 4, LogicalCores: 8},
			cpu:     nil,
			accel:   "tcg,tb-size=512,split-wx=on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.System.Architecture = tt.arch
			cfg.System.Target = tt.machine
			cfg.QEMU.HasHypervisor = tt.hvPref

			ctx := testContext()
			ctx.Host = tt.host

			args := qemuargs.Build(cfg, ctx).Args
			assert.Equal(t, tt.cpu, values(args, "-cpu"))
			assert.Equal(t, []string{tt.accel}, values(args, "-accel"))
		})
	}
}

func TestBuildCPUCustomModel(t *testing.T) {
	cfg := testConfig()
	cfg.System.CPU = "Haswell"
	cfg.System.CPUFlagsAdd = []catalog.CPUFlag{"avx2"}
	cfg.System.CPUFlagsRemove = []catalog.CPUFlag{"hle", "rtm"}

	args := qemuargs.Build(cfg, testContext()).Args
	assert.Equal(t, []string{"Haswell,+avx2,-hle,-rtm"}, values(args, "-cpu"))
}

func TestBuildTopology(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		physical int
		logical  int
		want     string
	}{
		{"explicit count", 2, 4, 8, "cpus=2,sockets=1,cores=2,threads=1"},
		{"host with SMT", 0, 4, 8, "cpus=8,sockets=1,cores=4,threads=2"},
		{"hybrid host", 0, 6, 8, "cpus=6,sockets=1,cores=6,threads=1"},
		{"unknown host", 0, 0, 0, "cpus=1,sockets=1,cores=1,threads=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.System.CPUCount = tt.count

			ctx := testContext()
			ctx.Host.PhysicalCores = tt.physical
			ctx.Host.LogicalCores = tt.logical

			assert.Equal(t, []string{tt.want}, values(qemuargs.Build(cfg, ctx).Args, "-smp"))
		})
	}
}

func TestBuildMachineProperties(t *testing.T) {
	tests := []struct {
		name     string
		override string
		ps2      bool
		want     string
	}{
		{"defaults", "", false, "q35,vmport=off,i8042=off"},
		{"override respected", "vmport=on", false, "q35,vmport=on,i8042=off"},
		{"ps2 kept", "", true, "q35,vmport=off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.QEMU.MachinePropertyOverride = tt.override
			cfg.QEMU.HasPS2Controller = tt.ps2

			assert.Equal(t, []string{tt.want}, values(qemuargs.Build(cfg, testContext()).Args, "-machine"))
		})
	}
}

func TestBuildUEFIFirmware(t *testing.T) {
	cfg := testConfig()
	cfg.QEMU.HasUEFIBoot = true

	ctx := testContext()
	assert.Empty(t, values(qemuargs.Build(cfg, ctx).Args, "-drive"))

	touch(t, ctx.FS, "/usr/share/qemu/edk2-x86_64-code.fd")

	assert.Equal(t, []string{
		"if=pflash,format=raw,unit=0,file=/usr/share/qemu/edk2-x86_64-code.fd,readonly=on",
		"if=pflash,format=raw,unit=1,file=/cache/efi_vars.fd",
	}, values(qemuargs.Build(cfg, ctx).Args, "-drive"))
}

func TestBuildMisc(t *testing.T) {
	cfg := testConfig()
	cfg.Information.Name = "Win11 (ARM)"
	cfg.QEMU.IsDisposable = true
	cfg.QEMU.HasRTCLocalTime = true
	cfg.QEMU.HasRNGDevice = true
	cfg.QEMU.HasTPMDevice = true

	args := qemuargs.Build(cfg, testContext()).Args

	assert.Equal(t, []string{"Win11 ARM"}, values(args, "-name"))
	assert.Contains(t, args, "-snapshot")
	assert.Equal(t, []string{testUUID.String()}, values(args, "-uuid"))
	assert.Equal(t, []string{"base=localtime"}, values(args, "-rtc"))
	assert.Contains(t, values(args, "-device"), "virtio-rng-pci")
	assert.Equal(t, []string{"emulator,id=tpm0,chardev=chrtpm"}, values(args, "-tpmdev"))
	assert.Contains(t, values(args, "-device"), "tpm-crb,tpmdev=tpm0")

	cfg.QEMU.SnapshotName = "clean"
	args = qemuargs.Build(cfg, testContext()).Args
	assert.Equal(t, []string{"clean"}, values(args, "-loadvm"))
	assert.NotContains(t, args, "-snapshot")
}

func TestBuildSound(t *testing.T) {
	cfg := testConfig()
	cfg.System.Target = "pc"
	cfg.Sound = []config.Sound{{Hardware: "intel-hda"}, {Hardware: "pcspk"}}

	args := qemuargs.Build(cfg, testContext()).Args

	assert.Equal(t, []string{"spice,id=audio0"}, values(args, "-audiodev"))
	devices := values(args, "-device")
	assert.Contains(t, devices, "intel-hda,audiodev=audio0")
	assert.Contains(t, devices, "hda-duplex,audiodev=audio0")
	assert.NotContains(t, devices, "pcspk,audiodev=audio0")
	assert.Equal(t, []string{"pc,vmport=off,i8042=off,pcspk-audiodev=audio0"}, values(args, "-machine"))
}

func TestBuildDisplays(t *testing.T) {
	cfg := testConfig()
	cfg.Displays = []config.Display{{Hardware: "virtio-vga-gl", VGARAMMiB: 64, Is3DAcceleration: true}}

	ctx := testContext()
	ctx.Host.Supports3D = true

	args := qemuargs.Build(cfg, ctx).Args
	assert.Contains(t, values(args, "-device"), "virtio-vga-gl,vgamem_mb=64,blob=true,hostmem=64M")
	assert.Contains(t, values(args, "-spice")[0], "gl=on")

	ctx.RemoteDisplay = true
	args = qemuargs.Build(cfg, ctx).Args
	assert.Contains(t, values(args, "-device"), "virtio-vga,vgamem_mb=64")
	assert.Contains(t, values(args, "-spice")[0], "gl=off")
	assert.NotContains(t, args, "-nographic")
}

func TestBuildSerial(t *testing.T) {
	cfg := testConfig()
	cfg.Serials = []config.Serial{
		{Mode: config.SerialModeTCPServer, Target: config.SerialTargetAuto},
		{Mode: config.SerialModeBuiltin, Target: config.SerialTargetGDB},
		{Mode: config.SerialModeTCPClient, Target: config.SerialTargetManual, Hardware: "isa-serial", TCPPort: 4444},
	}

	args := qemuargs.Build(cfg, testContext()).Args

	assert.Equal(t, []string{
		"socket,id=term0,port=1234,host=127.0.0.1,server=on,wait=off",
		"spiceport,id=term1,name=com.qargs.terminal.1",
		"socket,id=term2,port=4444,host=127.0.0.1,server=off",
		"spiceport,id=org.qemu.guest_agent,name=org.qemu.guest_agent.0",
	}, values(args, "-chardev")[1:])
	assert.Equal(t, []string{"chardev:term0"}, values(args, "-serial"))
	assert.Equal(t, []string{"chardev:term1"}, values(args, "-gdb"))
	assert.Contains(t, values(args, "-device"), "isa-serial,chardev=term2")
}

func TestBuildSparcDisplay(t *testing.T) {
	cfg := testConfig()
	cfg.System.Architecture = catalog.ArchSPARC
	cfg.System.Target = "SS-5"
	cfg.Displays = []config.Display{
		{Hardware: "cg3", VGARAMMiB: 16},
		{Hardware: "tcx"},
	}

	args := qemuargs.Build(cfg, testContext()).Args
	assert.Equal(t, []string{"cg3,vgamem_mb=16"}, values(args, "-vga"))
	assert.NotContains(t, values(args, "-device"), "tcx")
	assert.NotContains(t, args, "-nographic")

	cfg.Displays = []config.Display{{Hardware: "tcx"}}
	assert.Equal(t, []string{"tcx"}, values(qemuargs.Build(cfg, testContext()).Args, "-vga"))
}
