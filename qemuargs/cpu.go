package qemuargs

import (
	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/host"
	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/AlexSSD7/qargs/utils"
)

// acceleratedCPUs maps the host family to the model used for the default
// CPU under hardware acceleration.
var acceleratedCPUs = map[host.Family]catalog.CPU{
	host.FamilyApple:     "host",
	host.FamilyHaswell:   "Haswell-v4",
	host.FamilyBroadwell: "Broadwell-v4",
	host.FamilySkylake:   "Skylake-Client-v4",
	host.FamilyIcelake:   "Icelake-Server",
	host.FamilyZen:       "EPYC",
}

// emulatedCPUs are needed because these targets reject "-cpu default".
var emulatedCPUs = map[catalog.Architecture]catalog.CPU{
	catalog.ArchAarch64: "cortex-a72",
	catalog.ArchARM:     "cortex-a15",
}

// defaultCPU resolves the default sentinel. ok is false when QEMU's own
// default should be used.
func (f *facts) defaultCPU() (catalog.CPU, bool) {
	var cpu catalog.CPU
	if f.accel {
		cpu = acceleratedCPUs[f.ctx.Host.CPUFamily]
	} else {
		cpu = emulatedCPUs[f.arch]
	}

	return cpu, cpu != ""
}

func (f *facts) cpuArgs(b *qemucli.Builder) {
	sys := f.cfg.System

	if sys.CPU == "" || sys.CPU == catalog.CPUDefault {
		if cpu, ok := f.defaultCPU(); ok {
			b.Arg("cpu", string(cpu))
		}
	} else {
		b.Option("cpu")
		b.Append(string(sys.CPU))
		for _, flag := range sys.CPUFlagsAdd {
			b.Field("+" + string(flag))
		}
		for _, flag := range sys.CPUFlagsRemove {
			b.Field("-" + string(flag))
		}
		b.End()
	}

	cores, threads := f.topology()

	b.Option("smp")
	b.Prop("cpus", utils.IntToStr(threads))
	b.Field("sockets=1")
	b.Prop("cores", utils.IntToStr(cores))
	b.Prop("threads", utils.IntToStr(threads/cores))
	b.End()
}

// topology returns the core and thread totals of the single socket.
func (f *facts) topology() (int, int) {
	if n := f.cfg.System.CPUCount; n > 0 {
		return n, n
	}

	cores, threads := f.hostTopology()
	if cores <= 0 {
		return 1, 1
	}

	// Hybrid hosts report logical counts that are no multiple of physical
	// ones. QEMU requires cpus == cores * threads.
	if threads < cores || threads%cores != 0 {
		threads = cores
	}

	return cores, threads
}

func (f *facts) hostTopology() (int, int) {
	h := f.ctx.Host

	if f.arch.IsSingleThreadOnly() {
		return 1, 1
	}

	switch h.Arch {
	case catalog.ArchAarch64:
		// Only weak architectures are fast enough to emulate in parallel
		// on arm64 hosts.
		if !f.arch.IsWeak() {
			return 1, 1
		}

		if h.PerformanceCores > 0 {
			return h.PerformanceCores, h.PerformanceThreads
		}

		return h.PhysicalCores, h.LogicalCores
	case catalog.ArchX86_64:
		return h.PhysicalCores, h.LogicalCores
	default:
		return 1, 1
	}
}
