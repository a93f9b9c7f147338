package qemuargs_test

import (
	"testing"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/qemuargs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTPMDevice(t *testing.T) {
	tests := []struct {
		arch    catalog.Architecture
		machine catalog.Machine
		device  string
	}{
		{catalog.ArchX86_64, "pc", "tpm-tis,tpmdev=tpm0"},
		{catalog.ArchX86_64, "pc-i440fx-8.0", "tpm-tis,tpmdev=tpm0"},
		{catalog.ArchX86_64, "q35", "tpm-crb,tpmdev=tpm0"},
		{catalog.ArchX86_64, "pc-q35-8.0", "tpm-crb,tpmdev=tpm0"},
		{catalog.ArchAarch64, "virt", "tpm-tis-device,tpmdev=tpm0"},
		{catalog.ArchPPC64, "pseries", "tpm-spapr,tpmdev=tpm0"},
		{catalog.ArchSPARC, "SS-5", ""},
	}

	for _, test := range tests {
		t.Run(string(test.machine), func(t *testing.T) {
			cfg := testConfig()
			cfg.System.Architecture = test.arch
			cfg.System.Target = test.machine
			cfg.QEMU.HasTPMDevice = true

			args := qemuargs.Build(cfg, testContext()).Args

			if test.device == "" {
				assert.Empty(t, values(args, "-tpmdev"))
				return
			}

			assert.Equal(t, []string{"emulator,id=tpm0,chardev=chrtpm"}, values(args, "-tpmdev"))
			assert.Contains(t, values(args, "-device"), test.device)
		})
	}
}

func TestBuildTPMEmulator(t *testing.T) {
	cfg := testConfig()
	ctx := testContext()

	_, ok := qemuargs.BuildTPMEmulator(cfg, ctx)
	assert.False(t, ok)

	cfg.QEMU.HasTPMDevice = true
	res, ok := qemuargs.BuildTPMEmulator(cfg, ctx)
	require.True(t, ok)

	sock := "/run/qargs/" + testUUID.String() + ".tpm"
	assert.Equal(t, "swtpm", res.Binary)
	assert.Equal(t, []string{
		"socket",
		"--ctrl", "type=unixio,path=" + sock + ",terminate",
		"--tpmstate", "backend-uri=file:///cache/tpm2.data",
		"--tpm2",
	}, res.Args)
	assert.Equal(t, "/cache/tpm2.data", qemuargs.TPMStatePath(cfg, ctx))

	// The socket served by the emulator is the one the machine connects to.
	assert.Contains(t, values(qemuargs.Build(cfg, ctx).Args, "-chardev"), "socket,id=chrtpm,path="+sock)

	cfg.QEMU.TPMDataPath = "/vm/tpm.bin"
	res, ok = qemuargs.BuildTPMEmulator(cfg, ctx)
	require.True(t, ok)
	assert.Equal(t, "backend-uri=file:///vm/tpm.bin", res.Args[4])
	assert.Equal(t, "/vm/tpm.bin", qemuargs.TPMStatePath(cfg, ctx))

	cfg.System.Architecture = catalog.ArchSPARC
	cfg.System.Target = "SS-5"
	_, ok = qemuargs.BuildTPMEmulator(cfg, ctx)
	assert.False(t, ok)
}
