package qemuargs

import (
	"github.com/AlexSSD7/qargs/config"
	"github.com/AlexSSD7/qargs/qemucli"
)

const swtpmBinary = "swtpm"

// TPMStatePath is the swtpm state file of cfg.
func TPMStatePath(cfg *config.Config, ctx BuildContext) string {
	if cfg.QEMU.TPMDataPath != "" {
		return cfg.QEMU.TPMDataPath
	}

	return ctx.Paths.DefaultTPMState()
}

// BuildTPMEmulator returns the swtpm invocation that serves the TPM socket
// referenced by Build. ok is false when the machine gets no TPM device.
func BuildTPMEmulator(cfg *config.Config, ctx BuildContext) (Result, bool) {
	if !cfg.QEMU.HasTPMDevice {
		return Result{}, false
	}

	if _, ok := tpmDevice(cfg.System.Target); !ok {
		return Result{}, false
	}

	b := qemucli.NewBuilder()
	b.Raw(
		"socket",
		"--ctrl", "type=unixio,path="+ctx.Paths.TPMSocket(cfg.Information.UUID)+",terminate",
		"--tpmstate", "backend-uri=file://"+TPMStatePath(cfg, ctx),
		"--tpm2",
	)

	tokens := b.Tokens()

	return Result{
		Binary: swtpmBinary,
		Args:   qemucli.Reduce(tokens),
		Tokens: tokens,
	}, true
}
