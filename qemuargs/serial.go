package qemuargs

import (
	"github.com/AlexSSD7/qargs/config"
	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/AlexSSD7/qargs/utils"
)

const (
	defaultSerialTCPPort    = 1234
	defaultSerialTCPAddress = "127.0.0.1"
)

func (f *facts) serialArgs(b *qemucli.Builder) {
	for i, s := range f.cfg.Serials {
		id := "term" + utils.IntToStr(i)

		mode := s.Mode
		if mode == config.SerialModePTY && !f.ctx.Host.SupportsPTY {
			mode = config.SerialModeBuiltin
		}

		port := s.TCPPort
		if port <= 0 {
			port = defaultSerialTCPPort
		}

		b.Option("chardev")
		switch mode {
		case config.SerialModeTCPClient:
			addr := s.TCPHostAddress
			if addr == "" {
				addr = defaultSerialTCPAddress
			}

			b.Field("socket")
			b.Prop("id", id)
			b.Prop("port", utils.IntToStr(port))
			b.Prop("host", addr)
			b.Field("server=off")
		case config.SerialModeTCPServer:
			addr := defaultSerialTCPAddress
			if s.IsRemoteConnectionAllowed {
				addr = "0.0.0.0"
			}

			b.Field("socket")
			b.Prop("id", id)
			b.Prop("port", utils.IntToStr(port))
			b.Prop("host", addr)
			b.Field("server=on")
			b.Prop("wait", utils.OnOff(s.IsWaitForConnection))
		case config.SerialModePTY:
			b.Field("pty")
			b.Prop("id", id)
		default:
			b.Field("spiceport")
			b.Prop("id", id)
			b.Prop("name", "com.qargs.terminal."+utils.IntToStr(i))
		}
		b.End()

		switch s.Target {
		case config.SerialTargetManual:
			if s.Hardware != "" {
				b.Option("device")
				b.Append(string(s.Hardware))
				b.Prop("chardev", id)
				b.End()
				continue
			}

			b.Arg("serial", "chardev:"+id)
		case config.SerialTargetGDB:
			b.Arg("gdb", "chardev:"+id)
		case config.SerialTargetMonitor:
			b.Arg("mon", "chardev="+id+",mode=readline")
		default:
			b.Arg("serial", "chardev:"+id)
		}
	}
}
