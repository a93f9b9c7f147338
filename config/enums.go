package config

type ImageType string

const (
	ImageTypeNone   ImageType = "none"
	ImageTypeDisk   ImageType = "disk"
	ImageTypeCD     ImageType = "cd"
	ImageTypeBIOS   ImageType = "bios"
	ImageTypeKernel ImageType = "kernel"
	ImageTypeInitrd ImageType = "initrd"
	ImageTypeDTB    ImageType = "dtb"
)

type DriveInterface string

const (
	DriveInterfaceNone   DriveInterface = "none"
	DriveInterfaceIDE    DriveInterface = "ide"
	DriveInterfaceSCSI   DriveInterface = "scsi"
	DriveInterfaceSD     DriveInterface = "sd"
	DriveInterfaceMTD    DriveInterface = "mtd"
	DriveInterfaceFloppy DriveInterface = "floppy"
	DriveInterfacePFlash DriveInterface = "pflash"
	DriveInterfaceVirtIO DriveInterface = "virtio"
	DriveInterfaceNVMe   DriveInterface = "nvme"
	DriveInterfaceUSB    DriveInterface = "usb"
)

type NetworkMode string

const (
	NetworkModeEmulated NetworkMode = "emulated"
	NetworkModeShared   NetworkMode = "shared"
	NetworkModeHost     NetworkMode = "host"
	NetworkModeBridged  NetworkMode = "bridged"
)

type Protocol string

const (
	ProtocolTCP Protocol = "tcp"
	ProtocolUDP Protocol = "udp"
)

type SerialMode string

const (
	SerialModeBuiltin   SerialMode = "builtin"
	SerialModeTCPClient SerialMode = "tcpclient"
	SerialModeTCPServer SerialMode = "tcpserver"
	SerialModePTY       SerialMode = "ptty"
)

type SerialTarget string

const (
	SerialTargetAuto    SerialTarget = "auto"
	SerialTargetManual  SerialTarget = "manual"
	SerialTargetGDB     SerialTarget = "gdb"
	SerialTargetMonitor SerialTarget = "monitor"
)

type USBBus string

const (
	USBBusDisabled USBBus = "disabled"
	USBBus2_0      USBBus = "2.0"
	USBBus3_0      USBBus = "3.0"
)

type ShareMode string

const (
	ShareModeNone   ShareMode = "none"
	ShareModeWebDAV ShareMode = "webdav"
	ShareModeVirtFS ShareMode = "virtfs"
)
