package catalog_test

import (
	"testing"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForKnownArchitectures(t *testing.T) {
	for _, arch := range catalog.Architectures() {
		t.Run(string(arch), func(t *testing.T) {
			c := catalog.For(arch)
			require.Equal(t, arch, c.Architecture)

			assert.Equal(t, catalog.CPUDefault, c.CPUs.Default())
			assert.True(t, c.CPUs.Contains(catalog.CPUDefault))
			assert.True(t, c.Machines.Contains(c.Machines.Default()), "default machine must be a member")
			assert.True(t, c.DisplayDevices.Contains(c.DisplayDevices.Default()))
			assert.True(t, c.NetworkDevices.Contains(c.NetworkDevices.Default()))
		})
	}
}

func TestForUnknownArchitecture(t *testing.T) {
	c := catalog.For("z80")

	assert.Equal(t, catalog.Architecture("z80"), c.Architecture)
	assert.Zero(t, c.CPUs.Len())
	assert.Empty(t, c.Machines.All())
	assert.False(t, c.DisplayDevices.Contains("VGA"))
}

func TestArchitecturesSorted(t *testing.T) {
	archs := catalog.Architectures()
	require.NotEmpty(t, archs)

	for i := 1; i < len(archs); i++ {
		assert.True(t, archs[i-1] < archs[i], "%v before %v", archs[i-1], archs[i])
	}
}

func TestSetPrettyAndIsolation(t *testing.T) {
	c := catalog.For(catalog.ArchX86_64)

	assert.Equal(t, "Standard PC (Q35 + ICH9, 2009)", c.Machines.Pretty("q35"))
	assert.Equal(t, "microvm", c.Machines.Pretty("microvm"))

	all := c.Machines.All()
	all[0] = "changed"
	assert.Equal(t, catalog.Machine("q35"), c.Machines.All()[0])
}

func TestMachinePredicates(t *testing.T) {
	tests := []struct {
		machine    catalog.Machine
		pc         bool
		q35        bool
		virt       bool
		singleUnit bool
	}{
		{machine: "pc", pc: true},
		{machine: "pc-i440fx-7.2", pc: true},
		{machine: "q35", pc: true, q35: true, singleUnit: true},
		{machine: "pc-q35-7.2", pc: true, q35: true, singleUnit: true},
		{machine: "isapc", pc: true},
		{machine: "virt", virt: true},
		{machine: "virt-7.2", virt: true},
		{machine: "mac99"},
	}

	for _, tt := range tests {
		t.Run(string(tt.machine), func(t *testing.T) {
			assert.Equal(t, tt.pc, tt.machine.IsPC())
			assert.Equal(t, tt.q35, tt.machine.IsQ35())
			assert.Equal(t, tt.virt, tt.machine.IsVirt())
			assert.Equal(t, tt.singleUnit, tt.machine.UsesSingleUnitIDE())
		})
	}
}

func TestArchitecturePredicates(t *testing.T) {
	assert.True(t, catalog.ArchSPARC64.IsSingleThreadOnly())
	assert.True(t, catalog.ArchM68K.UsesLegacyNIC())
	assert.True(t, catalog.ArchPPC64.UsesLegacyShareTag())
	assert.False(t, catalog.ArchX86_64.IsWeak())
	assert.True(t, catalog.ArchRISCV64.IsWeak())
	assert.Equal(t, "qemu-system-aarch64", catalog.ArchAarch64.QEMUSystemBinary())
}
