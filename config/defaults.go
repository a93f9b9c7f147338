package config

import (
	"fmt"
	"strings"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/utils"
	"github.com/google/uuid"
)

// identityNamespace seeds identifiers derived for descriptions that do not
// carry their own.
var identityNamespace = uuid.MustParse("0b5d8d26-5c52-4c45-a3b2-8f3f4a1f6c07")

// ApplyDefaults fills every unset field. Derived identifiers are stable for
// a given description, so loading the same file twice yields the same
// config.
func (cfg *Config) ApplyDefaults() {
	if cfg.System.Architecture == "" {
		cfg.System.Architecture = catalog.ArchX86_64
	}

	c := catalog.For(cfg.System.Architecture)

	if cfg.System.Target == "" {
		cfg.System.Target = c.Machines.Default()
	}

	if cfg.System.CPU == "" {
		cfg.System.CPU = catalog.CPUDefault
	}

	if cfg.Information.UUID == uuid.Nil {
		cfg.Information.UUID = uuid.NewSHA1(identityNamespace, []byte(cfg.Information.Name))
	}

	if cfg.Input.USBBusSupport == "" {
		cfg.Input.USBBusSupport = USBBus2_0
	}

	if cfg.Sharing.DirectoryShareMode == "" {
		cfg.Sharing.DirectoryShareMode = ShareModeNone
	}

	for i := range cfg.Displays {
		if cfg.Displays[i].Hardware == "" {
			cfg.Displays[i].Hardware = c.DisplayDevices.Default()
		}
	}

	for i := range cfg.Drives {
		d := &cfg.Drives[i]

		if d.ImageType == "" {
			d.ImageType = ImageTypeDisk
		}

		if d.Interface == "" {
			d.Interface = DefaultDriveInterface(cfg.System.Architecture, cfg.System.Target)
		}

		if d.ID == "" {
			d.ID = cfg.derivedID("drive", i)
		}
	}

	for i := range cfg.Networks {
		n := &cfg.Networks[i]

		if n.Hardware == "" {
			n.Hardware = c.NetworkDevices.Default()
		}

		if n.Mode == "" {
			n.Mode = NetworkModeEmulated
		}

		if n.MACAddress == "" {
			n.MACAddress = cfg.derivedMAC(i)
		}

		for j := range n.PortForwards {
			if n.PortForwards[j].Protocol == "" {
				n.PortForwards[j].Protocol = ProtocolTCP
			}
		}
	}

	for i := range cfg.Serials {
		s := &cfg.Serials[i]

		if s.Mode == "" {
			s.Mode = SerialModeBuiltin
		}

		if s.Target == "" {
			s.Target = SerialTargetAuto
		}

		if s.Hardware == "" {
			s.Hardware = c.SerialDevices.Default()
		}
	}
}

func (cfg *Config) derivedID(kind string, i int) string {
	id := uuid.NewSHA1(cfg.Information.UUID, []byte(kind+utils.IntToStr(i)))
	return strings.ToUpper(id.String())
}

// derivedMAC returns an address in QEMU's 52:54:00 block.
func (cfg *Config) derivedMAC(i int) string {
	id := uuid.NewSHA1(cfg.Information.UUID, []byte("net"+utils.IntToStr(i)))
	return fmt.Sprintf("52:54:00:%02x:%02x:%02x", id[0], id[1], id[2])
}

// DefaultDriveInterface picks the interface new disks get on a machine.
func DefaultDriveInterface(arch catalog.Architecture, target catalog.Machine) DriveInterface {
	switch {
	case arch.IsSparc(), arch == catalog.ArchM68K:
		return DriveInterfaceSCSI
	case arch.IsPPC() && !target.IsPSeries():
		return DriveInterfaceIDE
	case target == "isapc":
		return DriveInterfaceIDE
	default:
		return DriveInterfaceVirtIO
	}
}
