package qemucli_test

import (
	"testing"

	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeArgs(t *testing.T) {
	args, err := qemucli.EncodeArgs([]qemucli.Arg{
		qemucli.MustNewFlagArg("S"),
		qemucli.MustNewUintArg("m", uint16(2048)),
		qemucli.MustNewKeyValueArg("rtc", []qemucli.KeyValueArgItem{{Key: "base", Value: "localtime"}}),
		qemucli.MustNewKeyValueArg("device", []qemucli.KeyValueArgItem{{Key: "virtio-rng-pci"}}),
		qemucli.MustNewPathArg("L", "/opt/qemu,share"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"-S",
		"-m", "2048",
		"-rtc", "base=localtime",
		"-device", "virtio-rng-pci",
		"-L", "/opt/qemu,,share",
	}, args)
}

func TestArgValidation(t *testing.T) {
	_, err := qemucli.NewStringArg("hda", "disk.img")
	assert.Error(t, err)

	_, err = qemucli.NewStringArg("m", "512")
	assert.Error(t, err, "type mismatch")

	_, err = qemucli.NewStringArg("name", "a,b")
	assert.Error(t, err)

	_, err = qemucli.NewStringArg("name", "a,,b")
	assert.NoError(t, err)

	_, err = qemucli.NewKeyValueArg("device", nil)
	assert.Error(t, err)

	_, err = qemucli.NewKeyValueArg("device", []qemucli.KeyValueArgItem{{Key: "a=b"}})
	assert.Error(t, err)

	assert.Panics(t, func() { qemucli.MustNewUintArg("m", -1) })
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "qemu-system-x86_64 -name 'my vm'", qemucli.CommandLine("qemu-system-x86_64", []string{"-name", "my vm"}))
}
