package qemuargs

import (
	"strings"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/qemucli"
)

const (
	audioID             = "audio0"
	defaultAudioBackend = "spice"
)

// isInternalSound reports sound hardware that is part of the board. It is
// wired through machine properties instead of -device.
func isInternalSound(m catalog.Machine, hw catalog.SoundDevice) bool {
	switch hw {
	case "pcspk":
		return isPCIPC(m)
	case "screamer":
		return m.IsMac99()
	case "asc":
		return m.IsQ800()
	default:
		return false
	}
}

func (f *facts) audioBackend() string {
	// screamer only plays at 44100 Hz, which only CoreAudio resamples.
	if f.ctx.Host.OS == "darwin" && f.hasSound("screamer") {
		return "coreaudio"
	}

	if f.ctx.AudioBackend != "" {
		return f.ctx.AudioBackend
	}

	return defaultAudioBackend
}

func (f *facts) soundArgs(b *qemucli.Builder) {
	if len(f.cfg.Sound) == 0 {
		b.Arg("audiodev", "none,id="+audioID)
		return
	}

	b.Option("audiodev")
	b.Append(f.audioBackend())
	b.Prop("id", audioID)
	b.End()

	for _, s := range f.cfg.Sound {
		if isInternalSound(f.machine, s.Hardware) {
			continue
		}

		b.Option("device")
		b.Append(string(s.Hardware))
		b.Prop("audiodev", audioID)
		b.End()

		if strings.Contains(string(s.Hardware), "hda") {
			b.Arg("device", "hda-duplex,audiodev="+audioID)
		}
	}
}
