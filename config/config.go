// Qargs - A compiler from virtual machine descriptions to QEMU invocations.
// Copyright (c) 2023 The Qargs Authors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"github.com/AlexSSD7/qargs/catalog"
	"github.com/google/uuid"
)

// Config is a complete machine description. The compiler only reads it.
type Config struct {
	Information Information `mapstructure:"information"`
	System      System      `mapstructure:"system"`
	QEMU        QEMU        `mapstructure:"qemu"`
	Input       Input       `mapstructure:"input"`
	Sharing     Sharing     `mapstructure:"sharing"`

	Displays []Display `mapstructure:"displays"`
	Drives   []Drive   `mapstructure:"drives"`
	Networks []Network `mapstructure:"networks"`
	Serials  []Serial  `mapstructure:"serials"`
	Sound    []Sound   `mapstructure:"sound"`
}

type Information struct {
	Name string    `mapstructure:"name"`
	UUID uuid.UUID `mapstructure:"uuid"`
}

type System struct {
	Architecture   catalog.Architecture `mapstructure:"architecture"`
	Target         catalog.Machine      `mapstructure:"target"`
	CPU            catalog.CPU          `mapstructure:"cpu"`
	CPUFlagsAdd    []catalog.CPUFlag    `mapstructure:"cpu_flags_add"`
	CPUFlagsRemove []catalog.CPUFlag    `mapstructure:"cpu_flags_remove"`

	// CPUCount of zero derives the topology from the host.
	CPUCount       int  `mapstructure:"cpu_count"`
	ForceMulticore bool `mapstructure:"force_multicore"`

	// MemorySize and JITCacheSize are in MiB. A zero JITCacheSize means a
	// quarter of MemorySize.
	MemorySize   int `mapstructure:"memory_size"`
	JITCacheSize int `mapstructure:"jit_cache_size"`
}

type QEMU struct {
	HasUEFIBoot      bool `mapstructure:"has_uefi_boot"`
	HasRNGDevice     bool `mapstructure:"has_rng_device"`
	HasBalloonDevice bool `mapstructure:"has_balloon_device"`
	HasTPMDevice     bool `mapstructure:"has_tpm_device"`
	HasHypervisor    bool `mapstructure:"has_hypervisor"`
	HasTSO           bool `mapstructure:"has_tso"`
	HasRTCLocalTime  bool `mapstructure:"has_rtc_local_time"`
	HasPS2Controller bool `mapstructure:"has_ps2_controller"`

	MachinePropertyOverride string   `mapstructure:"machine_property_override"`
	AdditionalArguments     []string `mapstructure:"additional_arguments"`

	SnapshotName string `mapstructure:"snapshot_name"`
	IsDisposable bool   `mapstructure:"is_disposable"`

	EFIVarsPath string `mapstructure:"efi_vars_path"`
	TPMDataPath string `mapstructure:"tpm_data_path"`
}

type Input struct {
	USBBusSupport   USBBus `mapstructure:"usb_bus_support"`
	HasUSBSharing   bool   `mapstructure:"has_usb_sharing"`
	MaximumUSBShare int    `mapstructure:"maximum_usb_share"`
}

type Sharing struct {
	DirectoryShareMode       ShareMode `mapstructure:"directory_share_mode"`
	DirectorySharePath       string    `mapstructure:"directory_share_path"`
	IsDirectoryShareReadOnly bool      `mapstructure:"is_directory_share_read_only"`
	HasClipboardSharing      bool      `mapstructure:"has_clipboard_sharing"`
}

type Display struct {
	Hardware            catalog.DisplayDevice `mapstructure:"hardware"`
	VGARAMMiB           int                   `mapstructure:"vga_ram_mib"`
	IsDynamicResolution bool                  `mapstructure:"is_dynamic_resolution"`
	Is3DAcceleration    bool                  `mapstructure:"is_3d_acceleration"`
}

type Drive struct {
	ImageType  ImageType      `mapstructure:"image_type"`
	Interface  DriveInterface `mapstructure:"interface"`
	ID         string         `mapstructure:"id"`
	ImagePath  string         `mapstructure:"image_path"`
	IsReadOnly bool           `mapstructure:"is_read_only"`

	// IsExternal marks removable media.
	IsExternal bool `mapstructure:"is_external"`

	// Serial defaults to the drive ID.
	Serial string `mapstructure:"serial"`
}

// IsRemovable reports optical and external media.
func (d Drive) IsRemovable() bool {
	return d.ImageType == ImageTypeCD || d.IsExternal
}

type PortForward struct {
	Protocol     Protocol `mapstructure:"protocol"`
	HostAddress  string   `mapstructure:"host_address"`
	HostPort     uint16   `mapstructure:"host_port"`
	GuestAddress string   `mapstructure:"guest_address"`
	GuestPort    uint16   `mapstructure:"guest_port"`
}

type Network struct {
	Hardware          catalog.NetworkDevice `mapstructure:"hardware"`
	Mode              NetworkMode           `mapstructure:"mode"`
	MACAddress        string                `mapstructure:"mac_address"`
	IsIsolateFromHost bool                  `mapstructure:"is_isolate_from_host"`
	BridgeInterface   string                `mapstructure:"bridge_interface"`

	GuestAddress     string `mapstructure:"guest_address"`
	GuestAddressIPv6 string `mapstructure:"guest_address_ipv6"`
	HostAddress      string `mapstructure:"host_address"`
	HostAddressIPv6  string `mapstructure:"host_address_ipv6"`

	DHCPStartAddress string `mapstructure:"dhcp_start_address"`
	DHCPEndAddress   string `mapstructure:"dhcp_end_address"`
	DHCPDomain       string `mapstructure:"dhcp_domain"`

	DNSServerAddress     string `mapstructure:"dns_server_address"`
	DNSServerAddressIPv6 string `mapstructure:"dns_server_address_ipv6"`
	DNSSearchDomain      string `mapstructure:"dns_search_domain"`

	PortForwards []PortForward `mapstructure:"port_forwards"`
}

type Serial struct {
	Mode     SerialMode           `mapstructure:"mode"`
	Target   SerialTarget         `mapstructure:"target"`
	Hardware catalog.SerialDevice `mapstructure:"hardware"`

	TCPHostAddress            string `mapstructure:"tcp_host_address"`
	TCPPort                   int    `mapstructure:"tcp_port"`
	IsWaitForConnection       bool   `mapstructure:"is_wait_for_connection"`
	IsRemoteConnectionAllowed bool   `mapstructure:"is_remote_connection_allowed"`
}

type Sound struct {
	Hardware catalog.SoundDevice `mapstructure:"hardware"`
}
